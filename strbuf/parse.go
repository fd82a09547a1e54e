package strbuf

import (
	"strconv"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/errors"
)

var namedEscapes = map[rune]rune{
	'a':  '\a',
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'v':  '\v',
	'f':  '\f',
	'r':  '\r',
	'"':  '"',
	'\\': '\\',
}

// ParseLit decodes a literal produced by Lit.
func ParseLit(a valueruntime.Allocator, text string) (*Buffer, error) {
	return parseQuoted(a, text, "parse lit", func(src []rune, i int) (rune, int, error) {
		c := src[i]
		if r, ok := namedEscapes[c]; ok {
			return r, i + 1, nil
		}
		if c == 'e' {
			return 27, i + 1, nil
		}
		end := i
		for end < len(src) && src[end] != ';' {
			end++
		}
		if end == len(src) || end == i {
			return 0, 0, errors.InvalidData(errors.PhaseBuffer, "parse lit", "unterminated numeric escape")
		}
		v, err := strconv.ParseInt(string(src[i:end]), 10, 32)
		if err != nil {
			return 0, 0, errors.InvalidData(errors.PhaseBuffer, "parse lit", "bad numeric escape "+string(src[i:end]))
		}
		return rune(v), end + 1, nil
	})
}

// ParseCLit decodes a C string literal produced by CLit.
func ParseCLit(a valueruntime.Allocator, text string) (*Buffer, error) {
	return parseQuoted(a, text, "parse clit", func(src []rune, i int) (rune, int, error) {
		c := src[i]
		if r, ok := namedEscapes[c]; ok {
			return r, i + 1, nil
		}
		var base, digits int
		switch {
		case c >= '0' && c <= '7':
			base, digits = 8, 3
		case c == 'u':
			base, digits = 16, 4
			i++
		case c == 'U':
			base, digits = 16, 8
			i++
		default:
			return 0, 0, errors.InvalidData(errors.PhaseBuffer, "parse clit", "unknown escape \\"+string(c))
		}
		if i+digits > len(src) {
			return 0, 0, errors.InvalidData(errors.PhaseBuffer, "parse clit", "truncated escape")
		}
		v, err := strconv.ParseUint(string(src[i:i+digits]), base, 32)
		if err != nil {
			return 0, 0, errors.InvalidData(errors.PhaseBuffer, "parse clit", "bad escape digits "+string(src[i:i+digits]))
		}
		return rune(uint32(v)), i + digits, nil
	})
}

type escapeFunc func(src []rune, i int) (r rune, next int, err error)

func parseQuoted(a valueruntime.Allocator, text, op string, unescape escapeFunc) (*Buffer, error) {
	src := []rune(text)
	if len(src) < 2 || src[0] != '"' || src[len(src)-1] != '"' {
		return nil, errors.InvalidData(errors.PhaseBuffer, op, "literal must be enclosed in double quotes")
	}
	src = src[1 : len(src)-1]

	out := make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		switch c := src[i]; c {
		case '"':
			return nil, errors.InvalidData(errors.PhaseBuffer, op, "unescaped quote")
		case '\\':
			if i+1 == len(src) {
				return nil, errors.InvalidData(errors.PhaseBuffer, op, "trailing backslash")
			}
			r, next, err := unescape(src, i+1)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
			i = next
		default:
			out = append(out, c)
			i++
		}
	}
	return FromRunes(a, out)
}
