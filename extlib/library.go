package extlib

import (
	"context"
	"sort"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/handle"
)

// Config holds configuration for library loading
type Config struct {
	// MemoryLimitPages caps linear memory in 64KiB pages. Zero keeps the
	// wazero default.
	MemoryLimitPages uint32
	Logger           *zap.Logger
}

// Library is a loaded WebAssembly module.
type Library struct {
	runtime wazero.Runtime
	module  api.Module
	logger  *zap.Logger
	name    string
	mu      sync.Mutex
	closed  bool
}

var _ handle.Resource = (*Library)(nil)

// Open compiles and instantiates wasm under name.
func Open(ctx context.Context, name string, wasm []byte) (*Library, error) {
	return OpenWithConfig(ctx, name, wasm, nil)
}

// OpenWithConfig is Open with custom configuration.
func OpenWithConfig(ctx context.Context, name string, wasm []byte, cfg *Config) (*Library, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	logger := zap.NewNop()
	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
	}

	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Load("compile library "+name, err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Load("instantiate library "+name, err)
	}

	logger.Debug("library loaded",
		zap.String("name", name),
		zap.Int("exports", len(compiled.ExportedFunctions())))

	return &Library{
		runtime: rt,
		module:  mod,
		logger:  logger,
		name:    name,
	}, nil
}

// Name returns the library name.
func (l *Library) Name() string {
	return l.name
}

// Kind implements handle.Kinder.
func (l *Library) Kind() string {
	return "library"
}

// Exports lists the exported function names in sorted order.
func (l *Library) Exports() []string {
	defs := l.module.ExportedFunctionDefinitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes an exported function with raw wasm values.
func (l *Library) Call(ctx context.Context, fn string, args ...uint64) ([]uint64, error) {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return nil, errors.Closed(errors.PhaseLoad, "library "+l.name)
	}

	f := l.module.ExportedFunction(fn)
	if f == nil {
		return nil, errors.NotFound(errors.PhaseLoad, "function", fn)
	}
	if want := len(f.Definition().ParamTypes()); want != len(args) {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidInput).
			Op(fn).
			Detail("expected %d arguments, got %d", want, len(args)).
			Build()
	}
	return f.Call(ctx, args...)
}

// Close releases the module and its runtime. Closing twice is a no-op.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true

	ctx := context.Background()
	if err := l.module.Close(ctx); err != nil {
		l.runtime.Close(ctx)
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "close library "+l.name)
	}
	l.logger.Debug("library closed", zap.String("name", l.name))
	return l.runtime.Close(ctx)
}
