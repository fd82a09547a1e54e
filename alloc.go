package valueruntime

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/value-runtime/errors"
)

// Allocator accounts element storage for runtime values.
type Allocator interface {
	// Alloc reserves n elements. It fails with a MemoryExhausted error when
	// the reservation cannot be satisfied.
	Alloc(n int) error
	// Free returns n previously reserved elements.
	Free(n int)
}

// Heap is the default allocator. It never fails.
var Heap Allocator = heap{}

type heap struct{}

func (heap) Alloc(int) error { return nil }
func (heap) Free(int)        {}

// LimitedAllocator enforces an upper bound on reserved elements and keeps
// usage statistics.
type LimitedAllocator struct {
	limit  int
	inUse  int
	peak   int
	allocs int
	over   int
	mu     sync.Mutex
}

// NewLimitedAllocator creates an allocator that refuses reservations beyond
// limit elements in use.
func NewLimitedAllocator(limit int) *LimitedAllocator {
	return &LimitedAllocator{limit: limit}
}

// Alloc reserves n elements.
func (a *LimitedAllocator) Alloc(n int) error {
	if n < 0 {
		return errors.InvalidInput(errors.PhaseBuffer, "negative allocation")
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.inUse+n > a.limit {
		return errors.MemoryExhausted(errors.PhaseBuffer, n)
	}
	a.inUse += n
	a.allocs++
	if a.inUse > a.peak {
		a.peak = a.inUse
	}
	return nil
}

// Free returns n elements. Returning more than is in use means a value was
// released twice or never reserved: the excess is logged and counted in
// OverFreed, and InUse drops to zero.
func (a *LimitedAllocator) Free(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n > a.inUse {
		excess := n - a.inUse
		a.over += excess
		Logger().Warn("allocator freed more than in use",
			zap.Int("freed", n),
			zap.Int("in_use", a.inUse),
			zap.Int("excess", excess))
		a.inUse = 0
		return
	}
	a.inUse -= n
}

// SetLimit changes the element budget. Elements already in use are kept.
func (a *LimitedAllocator) SetLimit(limit int) {
	a.mu.Lock()
	a.limit = limit
	a.mu.Unlock()
}

// InUse returns the number of reserved elements.
func (a *LimitedAllocator) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Peak returns the highest number of elements reserved at once.
func (a *LimitedAllocator) Peak() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.peak
}

// Allocs returns the number of successful reservations.
func (a *LimitedAllocator) Allocs() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// OverFreed returns the total number of elements freed beyond what was in
// use. A non-zero value points at an accounting bug in a caller.
func (a *LimitedAllocator) OverFreed() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.over
}
