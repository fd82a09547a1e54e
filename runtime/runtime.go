package runtime

import (
	"context"
	"os"
	"sort"

	"go.uber.org/zap"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/config"
	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/extlib"
	"github.com/wippyai/value-runtime/handle"
	"github.com/wippyai/value-runtime/prim"
	"github.com/wippyai/value-runtime/strbuf"
	"github.com/wippyai/value-runtime/value"
)

// Runtime owns the allocator, the action registry and the handle table that
// primitives run against.
type Runtime struct {
	alloc   valueruntime.Allocator
	logger  *zap.Logger
	actions *action.Registry
	handles *handle.Table
	libs    map[string]*handle.Ref
}

var _ action.Env = (*Runtime)(nil)

// New creates a runtime. ctx is used only to load configured libraries.
func New(ctx context.Context, opts ...Option) (*Runtime, error) {
	o := options{
		alloc:  valueruntime.Heap,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = prim.Table()
	}

	regOpts := []action.Option{
		action.WithAllocator(o.alloc),
		action.WithLogger(o.logger),
	}
	if o.maxName > 0 {
		regOpts = append(regOpts, action.WithMaxNameLen(o.maxName))
	}
	if o.strict {
		regOpts = append(regOpts, action.WithStrictIndex())
	}
	actions, err := action.NewRegistry(o.table, regOpts...)
	if err != nil {
		return nil, err
	}

	r := &Runtime{
		alloc:   o.alloc,
		logger:  o.logger,
		actions: actions,
		handles: handle.NewTable(o.logger),
		libs:    make(map[string]*handle.Ref),
	}

	for _, lib := range o.libraries {
		if err := r.loadLibrary(ctx, lib); err != nil {
			r.Close()
			return nil, err
		}
	}

	r.logger.Debug("runtime ready",
		zap.Int("actions", actions.Len()),
		zap.Int("libraries", len(r.libs)))
	return r, nil
}

func (r *Runtime) loadLibrary(ctx context.Context, lib config.Library) error {
	wasm, err := os.ReadFile(lib.Path)
	if err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "read library "+lib.Name)
	}
	return r.OpenLibrary(ctx, lib.Name, wasm, lib.MemoryLimitPages)
}

// OpenLibrary loads a WebAssembly module and registers it under name.
func (r *Runtime) OpenLibrary(ctx context.Context, name string, wasm []byte, memoryLimitPages uint32) error {
	if _, ok := r.libs[name]; ok {
		return errors.InvalidInput(errors.PhaseLoad, "library "+name+" already open")
	}
	lib, err := extlib.OpenWithConfig(ctx, name, wasm, &extlib.Config{
		MemoryLimitPages: memoryLimitPages,
		Logger:           r.logger,
	})
	if err != nil {
		return err
	}
	ref, err := r.handles.Open(lib)
	if err != nil {
		lib.Close()
		return err
	}
	r.libs[name] = ref
	return nil
}

// Library returns a temporary handle value referring to the named library.
func (r *Runtime) Library(name string) (*value.Slot, error) {
	ref, ok := r.libs[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseLoad, "library", name)
	}
	dup, err := ref.Duplicate()
	if err != nil {
		return nil, err
	}
	return value.NewTemp(value.Handle, dup), nil
}

// Libraries returns the names of the open libraries in sorted order.
func (r *Runtime) Libraries() []string {
	names := make([]string, 0, len(r.libs))
	for name := range r.libs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Runtime) Allocator() valueruntime.Allocator { return r.alloc }
func (r *Runtime) Actions() *action.Registry         { return r.actions }
func (r *Runtime) Handles() *handle.Table            { return r.handles }
func (r *Runtime) Logger() *zap.Logger               { return r.logger }

// Call invokes the action called name.
func (r *Runtime) Call(name string, args ...*value.Slot) (*value.Slot, error) {
	a, err := r.actions.FindByName(name)
	if err != nil {
		release(args)
		return nil, err
	}
	return r.Invoke(a, args...)
}

// Invoke calls a with args and destroys the temporary arguments the
// primitive left behind.
func (r *Runtime) Invoke(a action.Action, args ...*value.Slot) (*value.Slot, error) {
	res, err := a.Call(r, args)
	release(args)
	if err != nil {
		r.logger.Debug("action failed",
			zap.String("action", a.Name()),
			zap.Error(err))
		return nil, err
	}
	return res, nil
}

func release(args []*value.Slot) {
	for _, arg := range args {
		if arg != nil && arg.Temporary {
			value.Destroy(arg)
		}
	}
}

// String returns a temporary string value holding s.
func (r *Runtime) String(s string) (*value.Slot, error) {
	b, err := strbuf.FromString(r.alloc, s)
	if err != nil {
		return nil, err
	}
	return value.NewTemp(value.String, b), nil
}

// Declare creates a variable initialized from src. A temporary src is moved.
func (r *Runtime) Declare(src *value.Slot) (*value.Slot, error) {
	v := value.NewVar()
	if err := value.Create(v, src); err != nil {
		return nil, err
	}
	return v, nil
}

// Close releases the libraries and closes every resource still referenced
// through the handle table.
func (r *Runtime) Close() error {
	for name, ref := range r.libs {
		ref.Release()
		delete(r.libs, name)
	}
	return r.handles.Close()
}
