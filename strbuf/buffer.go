package strbuf

import (
	"math"
	"slices"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/value"
)

// MaxSize is the largest element count a buffer may hold.
const MaxSize = math.MaxInt32

// Buffer is an owned string value.
type Buffer struct {
	alloc valueruntime.Allocator
	elems []rune
}

var _ value.Owned = (*Buffer)(nil)

// New allocates a buffer of n zero elements.
func New(a valueruntime.Allocator, n int) (*Buffer, error) {
	if a == nil {
		a = valueruntime.Heap
	}
	if n < 0 || n > MaxSize {
		return nil, errors.MemoryExhausted(errors.PhaseBuffer, n)
	}
	if err := a.Alloc(n); err != nil {
		return nil, exhausted(n, err)
	}
	return &Buffer{alloc: a, elems: make([]rune, n)}, nil
}

// FromString allocates a buffer holding the characters of s.
func FromString(a valueruntime.Allocator, s string) (*Buffer, error) {
	return FromRunes(a, []rune(s))
}

// FromRunes allocates a buffer holding a copy of r.
func FromRunes(a valueruntime.Allocator, r []rune) (*Buffer, error) {
	b, err := New(a, len(r))
	if err != nil {
		return nil, err
	}
	copy(b.elems, r)
	return b, nil
}

func exhausted(n int, cause error) error {
	return errors.New(errors.PhaseBuffer, errors.KindMemoryExhausted).
		Detail("cannot allocate %d elements", n).
		Value(n).
		Cause(cause).
		Build()
}

// Size returns the number of elements.
func (b *Buffer) Size() int {
	return len(b.elems)
}

// Runes returns the element storage. The slice must not be modified.
func (b *Buffer) Runes() []rune {
	return b.elems
}

// Allocator returns the allocator the buffer reserves storage from.
func (b *Buffer) Allocator() valueruntime.Allocator {
	if b.alloc == nil {
		return valueruntime.Heap
	}
	return b.alloc
}

func (b *Buffer) String() string {
	return string(b.elems)
}

// Idx returns the element at 1-based position i.
func (b *Buffer) Idx(i int) (rune, error) {
	if i < 1 || i > len(b.elems) {
		return 0, errors.Range(errors.PhaseBuffer, "idx", i, "index outside string")
	}
	return b.elems[i-1], nil
}

// SameStorage reports whether b and o share element storage.
func (b *Buffer) SameStorage(o *Buffer) bool {
	if len(b.elems) == 0 || len(o.elems) == 0 {
		return b == o
	}
	return &b.elems[0] == &o.elems[0]
}

// resize reallocates storage to n elements, keeping the common prefix. On
// failure b is unchanged.
func (b *Buffer) resize(n int) error {
	if n == len(b.elems) {
		return nil
	}
	if n > MaxSize {
		return errors.MemoryExhausted(errors.PhaseBuffer, n)
	}
	a := b.Allocator()
	if err := a.Alloc(n); err != nil {
		return exhausted(n, err)
	}
	elems := make([]rune, n)
	copy(elems, b.elems)
	a.Free(len(b.elems))
	b.elems = elems
	return nil
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() (*Buffer, error) {
	return FromRunes(b.Allocator(), b.elems)
}

// Duplicate implements value.Owned.
func (b *Buffer) Duplicate() (value.Owned, error) {
	c, err := b.Clone()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release returns the storage to the allocator. Releasing twice is harmless.
func (b *Buffer) Release() {
	b.Allocator().Free(len(b.elems))
	b.elems = nil
}

// Equal implements value.Owned with element-wise comparison.
func (b *Buffer) Equal(o value.Owned) bool {
	other, ok := o.(*Buffer)
	return ok && slices.Equal(b.elems, other.elems)
}

// Compare orders buffers lexicographically by element value. A strict prefix
// sorts before the longer buffer.
func Compare(a, b *Buffer) int {
	return slices.Compare(a.elems, b.elems)
}

// keep returns s, or a clone of it when s may not be reused.
func keep(s *Buffer, reuse bool) (*Buffer, error) {
	if reuse {
		return s, nil
	}
	return s.Clone()
}

// consume releases s when the caller handed over ownership.
func consume(s *Buffer, reuse bool) {
	if reuse {
		s.Release()
	}
}

func sizeOverflow(a, b int) bool {
	return a > MaxSize-b
}
