package prim

import (
	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/strbuf"
	"github.com/wippyai/value-runtime/value"
)

// anyKind accepts an operand of any kind.
const anyKind value.Kind = 0xFF

func expect(op string, args []*value.Slot, kinds ...value.Kind) error {
	if len(args) != len(kinds) {
		return errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Op(op).
			Detail("takes %d arguments, got %d", len(kinds), len(args)).
			Build()
	}
	for i, k := range kinds {
		if err := expectArg(op, args, i, k); err != nil {
			return err
		}
	}
	return nil
}

func expectArg(op string, args []*value.Slot, i int, k value.Kind) error {
	if args[i] == nil {
		return errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Op(op).
			Detail("argument %d is missing", i+1).
			Build()
	}
	if k == anyKind || args[i].Kind() == k {
		return nil
	}
	return errors.New(errors.PhaseCall, errors.KindTypeMismatch).
		Op(op).
		Got(args[i].Kind().String()).
		Want(k.String()).
		Detail("argument %d", i+1).
		Build()
}

func str(s *value.Slot) *strbuf.Buffer {
	return s.Payload().(*strbuf.Buffer)
}

// takeStr returns the buffer of args[i]. A temporary operand that appears
// only once in args is taken out of its slot and reported as reusable.
func takeStr(args []*value.Slot, i int) (*strbuf.Buffer, bool) {
	s := args[i]
	if !s.Temporary {
		return str(s), false
	}
	for j, other := range args {
		if j != i && other == s {
			return str(s), false
		}
	}
	return value.Take(s).(*strbuf.Buffer), true
}

func integer(s *value.Slot) int {
	v, _ := s.Int()
	return int(v)
}

func char(s *value.Slot) rune {
	v, _ := s.Char()
	return v
}

func strResult(b *strbuf.Buffer, err error) (*value.Slot, error) {
	if err != nil {
		return nil, err
	}
	return value.NewTemp(value.String, b), nil
}

func boolOf(v bool) (*value.Slot, error) {
	return value.BoolOf(v), nil
}

func intOf(v int) (*value.Slot, error) {
	return value.IntOf(int64(v)), nil
}
