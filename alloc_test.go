package valueruntime

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	rterrors "github.com/wippyai/value-runtime/errors"
)

func TestHeap_NeverFails(t *testing.T) {
	if err := Heap.Alloc(1 << 30); err != nil {
		t.Fatalf("Heap.Alloc failed: %v", err)
	}
	Heap.Free(1 << 30)
}

func TestLimitedAllocator(t *testing.T) {
	a := NewLimitedAllocator(10)

	if err := a.Alloc(6); err != nil {
		t.Fatalf("Alloc(6) failed: %v", err)
	}
	if err := a.Alloc(5); !errors.Is(err, rterrors.ErrMemoryExhausted) {
		t.Fatalf("Alloc(5) over budget: got %v, want memory exhausted", err)
	}
	if a.InUse() != 6 {
		t.Fatalf("InUse = %d, want 6", a.InUse())
	}
	if err := a.Alloc(4); err != nil {
		t.Fatalf("Alloc(4) failed: %v", err)
	}
	a.Free(10)
	if a.InUse() != 0 {
		t.Fatalf("InUse = %d, want 0", a.InUse())
	}
	if a.Peak() != 10 {
		t.Errorf("Peak = %d, want 10", a.Peak())
	}
	if a.Allocs() != 2 {
		t.Errorf("Allocs = %d, want 2", a.Allocs())
	}
}

func TestLimitedAllocator_SetLimit(t *testing.T) {
	a := NewLimitedAllocator(0)
	if err := a.Alloc(1); err == nil {
		t.Fatal("expected failure with zero budget")
	}
	a.SetLimit(1)
	if err := a.Alloc(1); err != nil {
		t.Fatalf("Alloc after SetLimit failed: %v", err)
	}
	if err := a.Alloc(-1); err == nil {
		t.Fatal("expected negative allocation to fail")
	}
}

func TestLimitedAllocator_OverFree(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	a := NewLimitedAllocator(10)
	if err := a.Alloc(3); err != nil {
		t.Fatalf("Alloc(3) failed: %v", err)
	}
	a.Free(3)
	if a.OverFreed() != 0 || logs.Len() != 0 {
		t.Fatalf("balanced free reported: over=%d logs=%d", a.OverFreed(), logs.Len())
	}

	if err := a.Alloc(2); err != nil {
		t.Fatalf("Alloc(2) failed: %v", err)
	}
	a.Free(5)
	if a.InUse() != 0 {
		t.Errorf("InUse = %d, want 0", a.InUse())
	}
	if a.OverFreed() != 3 {
		t.Errorf("OverFreed = %d, want 3", a.OverFreed())
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d warnings, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["excess"]; got != int64(3) {
		t.Errorf("excess field = %v, want 3", got)
	}
}
