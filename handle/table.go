package handle

import (
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/value-runtime/errors"
)

// Table tracks the live counted handles of one runtime.
type Table struct {
	logger    *zap.Logger
	entries   []*Ref
	freeList  []ID
	observers []Observer
	mu        sync.Mutex
	obsMu     sync.RWMutex
	closed    bool
}

// NewTable creates an empty table. A nil logger selects the package logger.
func NewTable(l *zap.Logger) *Table {
	if l == nil {
		l = Logger()
	}
	return &Table{
		logger:   l,
		entries:  make([]*Ref, 0, 16),
		freeList: make([]ID, 0, 8),
	}
}

// Open registers res and returns a handle with usage count 1.
func (t *Table) Open(res Resource) (*Ref, error) {
	if res == nil {
		return nil, errors.InvalidInput(errors.PhaseHandle, "nil resource")
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, errors.Closed(errors.PhaseHandle, "handle table")
	}
	ref := &Ref{res: res, table: t, usage: 1}
	if n := len(t.freeList); n > 0 {
		ref.id = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[ref.id-1] = ref
	} else {
		t.entries = append(t.entries, ref)
		ref.id = ID(len(t.entries))
	}
	t.mu.Unlock()

	t.logger.Debug("handle opened",
		zap.Uint32("id", uint32(ref.id)),
		zap.String("kind", kindOf(res)))
	t.notify(Event{Type: EventOpened, ID: ref.id, Usage: 1, Resource: res})
	return ref, nil
}

// Get retrieves a live handle by identifier.
func (t *Table) Get(id ID) (*Ref, bool) {
	if id == 0 {
		return nil, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(id) > len(t.entries) {
		return nil, false
	}
	ref := t.entries[id-1]
	return ref, ref != nil
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries) - len(t.freeList)
}

// Each iterates over live handles until fn returns false.
func (t *Table) Each(fn func(*Ref) bool) {
	t.mu.Lock()
	live := make([]*Ref, 0, len(t.entries))
	for _, ref := range t.entries {
		if ref != nil {
			live = append(live, ref)
		}
	}
	t.mu.Unlock()

	for _, ref := range live {
		if !fn(ref) {
			return
		}
	}
}

func (t *Table) retain(r *Ref) {
	t.mu.Lock()
	if r.closed {
		t.mu.Unlock()
		return
	}
	r.usage++
	usage := r.usage
	t.mu.Unlock()

	t.notify(Event{Type: EventRetained, ID: r.id, Usage: usage, Resource: r.res})
}

func (t *Table) release(r *Ref) {
	t.mu.Lock()
	if r.usage == 0 {
		t.mu.Unlock()
		return
	}
	r.usage--
	usage := r.usage
	last := usage == 0 && !r.closed
	if last {
		t.unlink(r)
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventReleased, ID: r.id, Usage: usage, Resource: r.res})
	if last {
		t.closeResource(r)
	}
}

// unlink removes r from the table. Callers hold t.mu.
func (t *Table) unlink(r *Ref) {
	r.closed = true
	if t.closed || int(r.id) > len(t.entries) || t.entries[r.id-1] != r {
		return
	}
	t.entries[r.id-1] = nil
	t.freeList = append(t.freeList, r.id)
}

func (t *Table) closeResource(r *Ref) error {
	err := r.res.Close()
	if err != nil {
		t.logger.Warn("close handle resource",
			zap.Uint32("id", uint32(r.id)),
			zap.String("kind", kindOf(r.res)),
			zap.Error(err))
	} else {
		t.logger.Debug("handle closed",
			zap.Uint32("id", uint32(r.id)),
			zap.String("kind", kindOf(r.res)))
	}
	t.notify(Event{Type: EventClosed, ID: r.id, Resource: r.res, Err: err})
	return err
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnHandleEvent(e)
	}
}

// Close closes every resource that is still referenced and stops accepting
// new handles. References held after Close stay valid as values but no
// longer reach an open resource.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	var live []*Ref
	for _, ref := range t.entries {
		if ref != nil && !ref.closed {
			ref.closed = true
			live = append(live, ref)
		}
	}
	t.closed = true
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	if len(live) > 0 {
		t.logger.Info("closing live handles", zap.Int("count", len(live)))
	}
	var err error
	for _, ref := range live {
		err = multierr.Append(err, t.closeResource(ref))
	}
	return err
}
