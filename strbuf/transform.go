package strbuf

import (
	"unicode"
)

func mapElems(s *Buffer, reuse bool, fn func(rune) rune) (*Buffer, error) {
	if reuse {
		for i, r := range s.elems {
			s.elems[i] = fn(r)
		}
		return s, nil
	}
	res, err := New(s.alloc, len(s.elems))
	if err != nil {
		return nil, err
	}
	for i, r := range s.elems {
		res.elems[i] = fn(r)
	}
	return res, nil
}

// Lower maps every element to lower case.
func Lower(s *Buffer, reuse bool) (*Buffer, error) {
	return mapElems(s, reuse, unicode.ToLower)
}

// Upper maps every element to upper case.
func Upper(s *Buffer, reuse bool) (*Buffer, error) {
	return mapElems(s, reuse, unicode.ToUpper)
}

// LPad right-aligns s in a field of width elements, filling with spaces.
// A width not exceeding the size returns the content unchanged.
func LPad(s *Buffer, width int, reuse bool) (*Buffer, error) {
	return lpad(s, width, ' ', false, reuse)
}

// LPad0 pads s on the left with zeros. A leading minus sign stays in front
// of the zeros.
func LPad0(s *Buffer, width int, reuse bool) (*Buffer, error) {
	return lpad(s, width, '0', true, reuse)
}

func lpad(s *Buffer, width int, fill rune, keepSign bool, reuse bool) (*Buffer, error) {
	size := len(s.elems)
	if width <= size {
		return keep(s, reuse)
	}

	res := s
	if reuse {
		if err := s.resize(width); err != nil {
			s.Release()
			return nil, err
		}
		copy(res.elems[width-size:], res.elems[:size])
	} else {
		var err error
		if res, err = New(s.alloc, width); err != nil {
			return nil, err
		}
		copy(res.elems[width-size:], s.elems)
	}

	start := 0
	if keepSign && size > 0 && res.elems[width-size] == '-' {
		res.elems[0] = '-'
		start = 1
	}
	for i := start; i < width-size+start; i++ {
		res.elems[i] = fill
	}
	return res, nil
}

// RPad left-aligns s in a field of width elements, filling with spaces.
func RPad(s *Buffer, width int, reuse bool) (*Buffer, error) {
	size := len(s.elems)
	if width <= size {
		return keep(s, reuse)
	}

	res := s
	if reuse {
		if err := s.resize(width); err != nil {
			s.Release()
			return nil, err
		}
	} else {
		var err error
		if res, err = New(s.alloc, width); err != nil {
			return nil, err
		}
		copy(res.elems, s.elems)
	}
	for i := size; i < width; i++ {
		res.elems[i] = ' '
	}
	return res, nil
}
