package strbuf

import (
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/value-runtime/errors"
)

const (
	// litMaxEscape is the longest expansion Lit produces for one element:
	// backslash, sign, ten digits and the terminating semicolon.
	litMaxEscape = 13
	// clitMaxEscape is the longest expansion CLit produces: \UXXXXXXXX.
	clitMaxEscape = 10
)

// litEscapes holds the rendering of every element below 160 for Lit. An
// empty entry means the element is written unchanged.
var litEscapes = func() (t [160]string) {
	for c := range t {
		if c < ' ' || c >= 127 {
			t[c] = "\\" + strconv.Itoa(c) + ";"
		}
	}
	t['\a'] = `\a`
	t['\b'] = `\b`
	t['\t'] = `\t`
	t['\n'] = `\n`
	t['\v'] = `\v`
	t['\f'] = `\f`
	t['\r'] = `\r`
	t[27] = `\e`
	t['"'] = `\"`
	t['\\'] = `\\`
	return t
}()

// clitEscapes holds the rendering of every element below 256 for CLit.
var clitEscapes = func() (t [256]string) {
	const octal = "01234567"
	for c := range t {
		if c < ' ' || c >= 127 {
			t[c] = string([]byte{'\\', octal[c>>6], octal[c>>3&7], octal[c&7]})
		}
	}
	t['\a'] = `\a`
	t['\b'] = `\b`
	t['\t'] = `\t`
	t['\n'] = `\n`
	t['\v'] = `\v`
	t['\f'] = `\f`
	t['\r'] = `\r`
	t['"'] = `\"`
	t['\\'] = `\\`
	return t
}()

func litEscape(r rune) string {
	if r >= 0 && int(r) < len(litEscapes) {
		return litEscapes[r]
	}
	if !utf8.ValidRune(r) {
		return "\\" + strconv.Itoa(int(r)) + ";"
	}
	return ""
}

func clitEscape(r rune) string {
	switch {
	case r >= 0 && int(r) < len(clitEscapes):
		return clitEscapes[r]
	case r >= 0 && r <= 0xFFFF:
		return `\u` + hex(uint32(r), 4)
	default:
		return `\U` + hex(uint32(r), 8)
	}
}

func hex(v uint32, digits int) string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf)
}

// Lit renders s as a quoted literal in interpreter syntax. Control elements
// use named escapes where one exists and \NNN; otherwise.
func Lit(s *Buffer) (*Buffer, error) {
	return render(s, litMaxEscape, litEscape)
}

// CLit renders s as a quoted C string literal. Non-printable elements below
// 256 use three-digit octal escapes; larger elements use \u or \U.
func CLit(s *Buffer) (*Buffer, error) {
	return render(s, clitMaxEscape, clitEscape)
}

func render(s *Buffer, k int, escape func(rune) string) (*Buffer, error) {
	if len(s.elems) > (MaxSize-2)/k {
		return nil, errors.MemoryExhausted(errors.PhaseBuffer, MaxSize)
	}
	out, err := New(s.alloc, k*len(s.elems)+2)
	if err != nil {
		return nil, err
	}

	n := 0
	out.elems[n] = '"'
	n++
	for _, r := range s.elems {
		if esc := escape(r); esc != "" {
			for i := 0; i < len(esc); i++ {
				out.elems[n] = rune(esc[i])
				n++
			}
		} else {
			out.elems[n] = r
			n++
		}
	}
	out.elems[n] = '"'
	n++

	if err := out.resize(n); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}
