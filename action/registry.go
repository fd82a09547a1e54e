package action

import (
	"reflect"
	"slices"
	"sort"
	"sync"

	"go.uber.org/zap"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/errors"
)

// DefaultMaxNameLen bounds the names FindByName accepts.
const DefaultMaxNameLen = 64

// Registry is an immutable action table with a lazily built reverse index.
type Registry struct {
	alloc    valueruntime.Allocator
	logger   *zap.Logger
	indexErr error
	entries  []Entry
	byProc   []procEntry
	maxName  int
	strict   bool
	once     sync.Once
}

type procEntry struct {
	ptr uintptr
	ord int
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxNameLen sets the longest name FindByName accepts.
func WithMaxNameLen(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxName = n
		}
	}
}

// WithAllocator sets the allocator the reverse index is accounted against.
func WithAllocator(a valueruntime.Allocator) Option {
	return func(r *Registry) {
		if a != nil {
			r.alloc = a
		}
	}
}

// WithLogger sets the registry logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithStrictIndex makes Resolve report index failures and unknown
// procedures as errors instead of answering with the illegal action.
func WithStrictIndex() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

// NewRegistry builds a registry over table, which must be sorted strictly
// ascending by name. The table is copied.
func NewRegistry(table []Entry, opts ...Option) (*Registry, error) {
	for i, e := range table {
		switch {
		case e.Name == "":
			return nil, errors.InvalidInput(errors.PhaseAction, "empty action name")
		case e.Proc == nil:
			return nil, errors.InvalidInput(errors.PhaseAction, "action "+e.Name+" has no procedure")
		case e.Name == IllegalName:
			return nil, errors.InvalidInput(errors.PhaseAction, IllegalName+" is reserved")
		case i > 0 && table[i-1].Name >= e.Name:
			return nil, errors.InvalidInput(errors.PhaseAction,
				"table not sorted at "+table[i-1].Name+", "+e.Name)
		}
	}

	r := &Registry{
		alloc:   valueruntime.Heap,
		logger:  Logger(),
		maxName: DefaultMaxNameLen,
		entries: make([]Entry, 0, len(table)+1),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.entries = append(r.entries, illegalEntry)
	r.entries = append(r.entries, table...)
	return r, nil
}

// Len returns the number of actions including the illegal action.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Illegal returns the action at ordinal 0.
func (r *Registry) Illegal() Action {
	return Action{reg: r}
}

// Entries returns the table in ordinal order. The slice must not be modified.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// FindByName looks up an action by its exact name.
func (r *Registry) FindByName(name string) (Action, error) {
	if len(name) > r.maxName {
		return Action{}, errors.Range(errors.PhaseAction, "find", name, "action name too long")
	}
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return Action{}, errors.Range(errors.PhaseAction, "find", name, "action name is not ASCII")
		}
	}
	if name == IllegalName {
		return r.Illegal(), nil
	}

	table := r.entries[1:]
	i := sort.Search(len(table), func(i int) bool { return table[i].Name >= name })
	if i == len(table) || table[i].Name != name {
		return Action{}, errors.Range(errors.PhaseAction, "find", name, "no action named "+name)
	}
	return Action{reg: r, ord: i + 1}, nil
}

// ToOrdinal returns the table position of a.
func (r *Registry) ToOrdinal(a Action) int {
	if a.reg != r {
		return 0
	}
	return a.ord
}

// FromOrdinal returns the action at table position i.
func (r *Registry) FromOrdinal(i int) (Action, error) {
	if i < 0 || i >= len(r.entries) {
		return Action{}, errors.Range(errors.PhaseAction, "from ordinal", i, "ordinal outside action table")
	}
	return Action{reg: r, ord: i}, nil
}

func procPointer(p Proc) uintptr {
	if p == nil {
		return 0
	}
	return reflect.ValueOf(p).Pointer()
}

// buildIndex sorts the table by procedure identity and collapses runs of the
// same procedure to their lowest ordinal, which is the alphabetically first
// name because the table is sorted by name.
func (r *Registry) buildIndex() {
	n := len(r.entries) - 1
	if err := r.alloc.Alloc(n); err != nil {
		r.indexErr = errors.Wrap(errors.PhaseAction, errors.KindMemoryExhausted, err, "build procedure index")
		r.logger.Error("action procedure index unavailable, resolving to "+IllegalName,
			zap.Int("entries", n),
			zap.Error(err))
		return
	}

	idx := make([]procEntry, n)
	for i, e := range r.entries[1:] {
		idx[i] = procEntry{ptr: procPointer(e.Proc), ord: i + 1}
	}
	slices.SortFunc(idx, func(a, b procEntry) int {
		switch {
		case a.ptr < b.ptr:
			return -1
		case a.ptr > b.ptr:
			return 1
		}
		return a.ord - b.ord
	})
	idx = slices.CompactFunc(idx, func(a, b procEntry) bool { return a.ptr == b.ptr })
	r.alloc.Free(n - len(idx))

	r.byProc = idx
	r.logger.Debug("action procedure index built",
		zap.Int("entries", n),
		zap.Int("procedures", len(idx)))
}

func (r *Registry) lookupProc(proc Proc) (Entry, error) {
	r.once.Do(r.buildIndex)
	if r.indexErr != nil {
		return r.entries[0], r.indexErr
	}

	ptr := procPointer(proc)
	i := sort.Search(len(r.byProc), func(i int) bool { return r.byProc[i].ptr >= ptr })
	if i == len(r.byProc) || r.byProc[i].ptr != ptr {
		return r.entries[0], errors.Range(errors.PhaseAction, "resolve", nil, "unknown procedure")
	}
	return r.entries[r.byProc[i].ord], nil
}

// ResolveByPointer returns the canonical entry for proc. Unknown procedures
// and an unavailable index yield the illegal action's entry.
func (r *Registry) ResolveByPointer(proc Proc) Entry {
	e, _ := r.lookupProc(proc)
	return e
}

// ResolveByPointerStrict is ResolveByPointer reporting failures as errors.
func (r *Registry) ResolveByPointerStrict(proc Proc) (Entry, error) {
	return r.lookupProc(proc)
}

// Resolve maps proc to its canonical entry following the registry's index
// policy.
func (r *Registry) Resolve(proc Proc) (Entry, error) {
	if r.strict {
		return r.lookupProc(proc)
	}
	return r.ResolveByPointer(proc), nil
}

// Canonical returns the action whose entry is canonical for the procedure
// of a. For an action sharing its procedure with other names this is the
// alphabetically first of them.
func (r *Registry) Canonical(a Action) Action {
	e := r.ResolveByPointer(a.Entry().Proc)
	if e.Name == IllegalName {
		return r.Illegal()
	}
	found, err := r.FindByName(e.Name)
	if err != nil {
		return r.Illegal()
	}
	return found
}

// IndexErr returns the error that prevented building the procedure index.
func (r *Registry) IndexErr() error {
	r.once.Do(r.buildIndex)
	return r.indexErr
}
