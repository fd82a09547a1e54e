package handle

import (
	"errors"
	"sync"
	"testing"

	rterrors "github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/value"
)

type window struct {
	closed int
	err    error
}

func (w *window) Close() error {
	w.closed++
	return w.err
}

func (w *window) Kind() string { return "window" }

type recorder struct {
	mu     sync.Mutex
	events []EventType
}

func (r *recorder) OnHandleEvent(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e.Type)
	r.mu.Unlock()
}

func TestTable_OpenRelease(t *testing.T) {
	table := NewTable(nil)
	w := &window{}

	ref, err := table.Open(w)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if ref.ID() == 0 || ref.Usage() != 1 || !ref.Counted() {
		t.Fatalf("unexpected ref id=%d usage=%d", ref.ID(), ref.Usage())
	}
	if got, ok := table.Get(ref.ID()); !ok || got != ref {
		t.Fatal("Get should return the opened ref")
	}

	dup, err := ref.Duplicate()
	if err != nil {
		t.Fatal(err)
	}
	if dup != ref || ref.Usage() != 2 {
		t.Fatalf("Duplicate should share the ref, usage=%d", ref.Usage())
	}

	ref.Release()
	if w.closed != 0 {
		t.Fatal("resource closed while still referenced")
	}
	ref.Release()
	if w.closed != 1 {
		t.Fatalf("resource closed %d times, want 1", w.closed)
	}
	if table.Len() != 0 {
		t.Fatalf("Len = %d, want 0", table.Len())
	}
	if _, ok := table.Get(ref.ID()); ok {
		t.Fatal("closed handle should not be found")
	}

	ref.Release()
	if w.closed != 1 {
		t.Fatal("extra release must not close again")
	}
}

func TestTable_SlotReuse(t *testing.T) {
	table := NewTable(nil)
	a, _ := table.Open(&window{})
	b, _ := table.Open(&window{})
	a.Release()

	c, _ := table.Open(&window{})
	if c.ID() != a.ID() {
		t.Errorf("expected freed id %d to be reused, got %d", a.ID(), c.ID())
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}

	count := 0
	table.Each(func(r *Ref) bool {
		count++
		return r != b
	})
	if count == 0 {
		t.Fatal("Each visited nothing")
	}
}

func TestTable_Observers(t *testing.T) {
	table := NewTable(nil)
	rec := &recorder{}
	table.Subscribe(rec)

	ref, _ := table.Open(&window{})
	ref.Duplicate()
	ref.Release()
	ref.Release()

	want := []EventType{EventOpened, EventRetained, EventReleased, EventReleased, EventClosed}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, rec.events[i], want[i])
		}
	}

	table.Unsubscribe(rec)
	table.Open(&window{})
	if len(rec.events) != len(want) {
		t.Fatal("unsubscribed observer still notified")
	}
}

func TestTable_Close(t *testing.T) {
	table := NewTable(nil)
	w1, w2 := &window{}, &window{err: errors.New("busy")}
	r1, _ := table.Open(w1)
	table.Open(w2)
	r1.Duplicate()

	err := table.Close()
	if err == nil || err.Error() != "busy" {
		t.Fatalf("Close error = %v, want busy", err)
	}
	if w1.closed != 1 || w2.closed != 1 {
		t.Fatalf("closed counts %d/%d, want 1/1", w1.closed, w2.closed)
	}

	r1.Release()
	r1.Release()
	if w1.closed != 1 {
		t.Fatal("release after table close must not close again")
	}

	if _, err := table.Open(&window{}); !errors.Is(err, &rterrors.Error{Kind: rterrors.KindClosed}) {
		t.Fatalf("Open after Close: got %v", err)
	}
	if err := table.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestStaticAndEmpty(t *testing.T) {
	w := &window{}
	s := Static(w)
	if s.Counted() || s.Usage() != 0 {
		t.Fatal("static handle must not be counted")
	}
	dup, _ := s.Duplicate()
	dup.Release()
	s.Release()
	if w.closed != 0 {
		t.Fatal("static resource must never be closed by releases")
	}

	Empty.Release()
	if Empty.Resource() != nil || Empty.String() != "handle(empty)" {
		t.Fatal("unexpected Empty sentinel")
	}
}

func TestRef_WithOwnershipProtocol(t *testing.T) {
	table := NewTable(nil)
	w := &window{}
	ref, _ := table.Open(w)

	a := value.NewVar()
	if err := value.Create(a, value.NewTemp(value.Handle, ref)); err != nil {
		t.Fatal(err)
	}
	if ref.Usage() != 1 {
		t.Fatalf("moving a temporary must not count, usage=%d", ref.Usage())
	}

	b := value.NewVar()
	if err := value.Create(b, a); err != nil {
		t.Fatal(err)
	}
	if ref.Usage() != 2 || !value.Equals(a, b) {
		t.Fatalf("copy should share identity, usage=%d", ref.Usage())
	}

	other, _ := table.Open(&window{})
	c := value.New(value.Handle, other)
	if value.Equals(a, c) {
		t.Fatal("different handles must not be equal")
	}

	value.Destroy(a)
	value.Destroy(b)
	if w.closed != 1 {
		t.Fatalf("closed %d times, want 1", w.closed)
	}
}

func TestTable_OpenNil(t *testing.T) {
	if _, err := NewTable(nil).Open(nil); err == nil {
		t.Fatal("expected error for nil resource")
	}
}

func TestTable_Concurrent(t *testing.T) {
	table := NewTable(nil)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := table.Open(&window{})
			if err != nil {
				return
			}
			r.Duplicate()
			r.Release()
			r.Release()
		}()
	}
	wg.Wait()
	if table.Len() != 0 {
		t.Fatalf("Len = %d, want 0", table.Len())
	}
}
