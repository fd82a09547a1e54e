package strbuf

import (
	"github.com/wippyai/value-runtime/errors"
)

// Repl replaces every non-overlapping occurrence of search in main with
// replacement, scanning left to right. An empty search pattern never matches
// and returns main unchanged.
func Repl(main, search, replacement *Buffer, reuse bool) (*Buffer, error) {
	m, p, r := main.elems, search.elems, replacement.elems
	if len(p) == 0 || len(p) > len(m) {
		return keep(main, reuse)
	}

	guess := len(m)
	if len(r) > len(p) {
		guess = (len(m) / len(p)) * len(r)
		if guess < len(m) {
			guess = len(m)
		}
	}
	if guess > MaxSize {
		guess = MaxSize
	}

	out, err := New(main.alloc, guess)
	if err != nil {
		consume(main, reuse)
		return nil, err
	}

	n := 0
	put := func(src []rune) error {
		if n+len(src) > len(out.elems) {
			if sizeOverflow(n, len(src)) {
				return errors.MemoryExhausted(errors.PhaseBuffer, n+len(src))
			}
			grow := max(n+len(src), min(2*len(out.elems), MaxSize))
			if err := out.resize(grow); err != nil {
				return err
			}
		}
		n += copy(out.elems[n:], src)
		return nil
	}

	copied := 0
	for i := indexFrom(m, p, 0); i >= 0; i = indexFrom(m, p, i) {
		if err := put(m[copied:i]); err != nil {
			return nil, fail(out, main, reuse, err)
		}
		if err := put(r); err != nil {
			return nil, fail(out, main, reuse, err)
		}
		i += len(p)
		copied = i
	}
	if err := put(m[copied:]); err != nil {
		return nil, fail(out, main, reuse, err)
	}

	if err := out.resize(n); err != nil {
		return nil, fail(out, main, reuse, err)
	}
	consume(main, reuse)
	return out, nil
}

func fail(out, main *Buffer, reuse bool, err error) error {
	out.Release()
	consume(main, reuse)
	return err
}
