package strbuf

import (
	"github.com/wippyai/value-runtime/errors"
)

// Concat returns a followed by b. With reuse, a is extended in place.
func Concat(a, b *Buffer, reuse bool) (*Buffer, error) {
	if reuse {
		if err := a.Append(b); err != nil {
			a.Release()
			return nil, err
		}
		return a, nil
	}

	if sizeOverflow(len(a.elems), len(b.elems)) {
		return nil, errors.MemoryExhausted(errors.PhaseBuffer, len(a.elems)+len(b.elems))
	}
	res, err := New(a.alloc, len(a.elems)+len(b.elems))
	if err != nil {
		return nil, err
	}
	n := copy(res.elems, a.elems)
	copy(res.elems[n:], b.elems)
	return res, nil
}

// Append extends b in place with the elements of extension. On failure b is
// unchanged. Appending a buffer to itself is allowed.
func (b *Buffer) Append(extension *Buffer) error {
	if len(extension.elems) == 0 {
		return nil
	}
	if sizeOverflow(len(b.elems), len(extension.elems)) {
		return errors.MemoryExhausted(errors.PhaseBuffer, len(b.elems)+len(extension.elems))
	}
	src := extension.elems
	old := len(b.elems)
	if err := b.resize(old + len(src)); err != nil {
		return err
	}
	copy(b.elems[old:], src)
	return nil
}

// Mult returns s repeated n times.
func Mult(s *Buffer, n int) (*Buffer, error) {
	if n < 0 {
		return nil, errors.Range(errors.PhaseBuffer, "mult", n, "negative factor")
	}
	size := len(s.elems)
	if n == 0 || size == 0 {
		return New(s.alloc, 0)
	}
	if n > MaxSize/size {
		return nil, errors.MemoryExhausted(errors.PhaseBuffer, MaxSize)
	}
	res, err := New(s.alloc, n*size)
	if err != nil {
		return nil, err
	}
	if size == 1 {
		ch := s.elems[0]
		for i := range res.elems {
			res.elems[i] = ch
		}
		return res, nil
	}
	for pos := 0; pos < len(res.elems); pos += size {
		copy(res.elems[pos:], s.elems)
	}
	return res, nil
}
