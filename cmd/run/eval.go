package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/value-runtime/runtime"
	"github.com/wippyai/value-runtime/strbuf"
	"github.com/wippyai/value-runtime/value"
)

// eval runs a call of the form NAME arg... and renders its result.
//
// Arguments are string literals in "..." with the escapes STR_LIT produces,
// characters in '...', integers, true and false, and @name for a library
// handle.
func eval(rt *runtime.Runtime, line string) (string, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty call")
	}

	args := make([]*value.Slot, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		arg, err := parseArg(rt, tok)
		if err != nil {
			for _, a := range args {
				value.Destroy(a)
			}
			return "", err
		}
		args = append(args, arg)
	}

	res, err := rt.Call(tokens[0], args...)
	if err != nil {
		return "", err
	}
	defer value.Destroy(res)
	return render(res)
}

func render(res *value.Slot) (string, error) {
	if res == nil {
		return "ok", nil
	}
	if res.Kind() == value.String {
		lit, err := strbuf.Lit(res.Payload().(*strbuf.Buffer))
		if err != nil {
			return "", err
		}
		defer lit.Release()
		return lit.String(), nil
	}
	return res.String(), nil
}

// tokenize splits line on blanks, keeping quoted literals whole.
func tokenize(line string) ([]string, error) {
	var tokens []string
	src := []rune(line)
	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '"' || c == '\'':
			end := i + 1
			for end < len(src) && src[end] != c {
				if src[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(src) {
				return nil, fmt.Errorf("unterminated literal at column %d", i+1)
			}
			tokens = append(tokens, string(src[i:end+1]))
			i = end + 1
		default:
			end := i
			for end < len(src) && src[end] != ' ' && src[end] != '\t' {
				end++
			}
			tokens = append(tokens, string(src[i:end]))
			i = end
		}
	}
	return tokens, nil
}

func parseArg(rt *runtime.Runtime, tok string) (*value.Slot, error) {
	switch {
	case strings.HasPrefix(tok, `"`):
		b, err := strbuf.ParseLit(rt.Allocator(), tok)
		if err != nil {
			return nil, err
		}
		return value.NewTemp(value.String, b), nil

	case strings.HasPrefix(tok, "'"):
		b, err := strbuf.ParseLit(rt.Allocator(), `"`+tok[1:len(tok)-1]+`"`)
		if err != nil {
			return nil, err
		}
		defer b.Release()
		if b.Size() != 1 {
			return nil, fmt.Errorf("character literal %s must hold one character", tok)
		}
		return value.CharOf(b.Runes()[0]), nil

	case strings.HasPrefix(tok, "@"):
		return rt.Library(tok[1:])

	case tok == "true" || tok == "false":
		return value.BoolOf(tok == "true"), nil
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse argument %s", tok)
	}
	return value.IntOf(n), nil
}
