package strbuf

import "math"

// rangeBounds converts a 1-based inclusive range into clamped 0-based
// half-open bounds. An empty selection returns lo == hi.
func rangeBounds(size, start, stop int) (lo, hi int) {
	if start < 1 {
		start = 1
	}
	if stop > size {
		stop = size
	}
	if start > stop {
		return 0, 0
	}
	return start - 1, stop
}

func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// extract returns elements [lo, hi) of s. With reuse the storage of s is
// shifted and shrunk in place.
func extract(s *Buffer, lo, hi int, reuse bool) (*Buffer, error) {
	if !reuse {
		return FromRunes(s.alloc, s.elems[lo:hi])
	}
	if lo == 0 && hi == len(s.elems) {
		return s, nil
	}
	copy(s.elems, s.elems[lo:hi])
	if err := s.resize(hi - lo); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// Head returns the first stop elements of s.
func Head(s *Buffer, stop int, reuse bool) (*Buffer, error) {
	lo, hi := rangeBounds(len(s.elems), 1, stop)
	return extract(s, lo, hi, reuse)
}

// Tail returns the elements of s from position start on.
func Tail(s *Buffer, start int, reuse bool) (*Buffer, error) {
	lo, hi := rangeBounds(len(s.elems), start, len(s.elems))
	return extract(s, lo, hi, reuse)
}

// Range returns the elements of s from position start to position stop.
func Range(s *Buffer, start, stop int, reuse bool) (*Buffer, error) {
	lo, hi := rangeBounds(len(s.elems), start, stop)
	return extract(s, lo, hi, reuse)
}

// Substr returns length elements of s beginning at position start.
func Substr(s *Buffer, start, length int, reuse bool) (*Buffer, error) {
	if length <= 0 {
		return extract(s, 0, 0, reuse)
	}
	lo, hi := rangeBounds(len(s.elems), start, satAdd(start, length-1))
	return extract(s, lo, hi, reuse)
}

func isSpace(r rune) bool {
	return r <= ' '
}

// Trim removes leading and trailing elements up to and including space.
func Trim(s *Buffer, reuse bool) (*Buffer, error) {
	lo, hi := 0, len(s.elems)
	for lo < hi && isSpace(s.elems[lo]) {
		lo++
	}
	for hi > lo && isSpace(s.elems[hi-1]) {
		hi--
	}
	return extract(s, lo, hi, reuse)
}

// LTrim removes leading elements up to and including space.
func LTrim(s *Buffer, reuse bool) (*Buffer, error) {
	lo := 0
	for lo < len(s.elems) && isSpace(s.elems[lo]) {
		lo++
	}
	return extract(s, lo, len(s.elems), reuse)
}

// RTrim removes trailing elements up to and including space.
func RTrim(s *Buffer, reuse bool) (*Buffer, error) {
	hi := len(s.elems)
	for hi > 0 && isSpace(s.elems[hi-1]) {
		hi--
	}
	return extract(s, 0, hi, reuse)
}
