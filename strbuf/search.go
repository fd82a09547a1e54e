package strbuf

import (
	"slices"
)

// indexFrom finds the first window of m starting at or after i that equals
// p. The first element of p is located with a single-element scan before the
// window is compared.
func indexFrom(m, p []rune, i int) int {
	last := len(m) - len(p)
	first := p[0]
	for i <= last {
		j := slices.Index(m[i:last+1], first)
		if j < 0 {
			return -1
		}
		i += j
		if slices.Equal(m[i+1:i+len(p)], p[1:]) {
			return i
		}
		i++
	}
	return -1
}

// lastIndexFrom finds the last window of m starting at or before i that
// equals p.
func lastIndexFrom(m, p []rune, i int) int {
	first := p[0]
	for i >= 0 {
		i = lastIndexRune(m[:i+1], first)
		if i < 0 {
			return -1
		}
		if slices.Equal(m[i+1:i+len(p)], p[1:]) {
			return i
		}
		i--
	}
	return -1
}

func lastIndexRune(s []rune, r rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == r {
			return i
		}
	}
	return -1
}

// Pos returns the position of the first occurrence of search in main, or 0.
func Pos(main, search *Buffer) int {
	return IPos(main, search, 1)
}

// IPos returns the position of the first occurrence of search in main that
// starts at or after from, or 0.
func IPos(main, search *Buffer, from int) int {
	m, p := main.elems, search.elems
	if len(p) == 0 || len(p) > len(m) || from < 1 || from > len(m)-len(p)+1 {
		return 0
	}
	return indexFrom(m, p, from-1) + 1
}

// RPos returns the position of the last occurrence of search in main, or 0.
func RPos(main, search *Buffer) int {
	return RIPos(main, search, len(main.elems))
}

// RIPos returns the position of the last occurrence of search in main that
// starts at or before from, or 0.
func RIPos(main, search *Buffer, from int) int {
	m, p := main.elems, search.elems
	if len(p) == 0 || len(p) > len(m) || from < 1 {
		return 0
	}
	start := min(from, len(m)-len(p)+1)
	return lastIndexFrom(m, p, start-1) + 1
}

// ChPos returns the position of the first element equal to ch, or 0.
func ChPos(main *Buffer, ch rune) int {
	return slices.Index(main.elems, ch) + 1
}

// RChPos returns the position of the last element equal to ch, or 0.
func RChPos(main *Buffer, ch rune) int {
	return lastIndexRune(main.elems, ch) + 1
}
