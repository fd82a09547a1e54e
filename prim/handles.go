package prim

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/extlib"
	"github.com/wippyai/value-runtime/handle"
	"github.com/wippyai/value-runtime/value"
)

func ref(s *value.Slot) *handle.Ref {
	return s.Payload().(*handle.Ref)
}

// hdlCmp orders handles by table identifier; static handles sort first.
func hdlCmp(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("HDL_CMP", args, value.Handle, value.Handle); err != nil {
		return nil, err
	}
	a, b := ref(args[0]).ID(), ref(args[1]).ID()
	switch {
	case a < b:
		return intOf(-1)
	case a > b:
		return intOf(1)
	}
	return intOf(0)
}

// libCall invokes an exported function of a library handle with integer
// arguments and returns its first result.
func libCall(env action.Env, args []*value.Slot) (*value.Slot, error) {
	const op = "LIB_CALL"
	if len(args) < 2 {
		return nil, errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Op(op).
			Detail("takes a library, a function name and integers, got %d arguments", len(args)).
			Build()
	}
	if err := expectArg(op, args, 0, value.Handle); err != nil {
		return nil, err
	}
	if err := expectArg(op, args, 1, value.String); err != nil {
		return nil, err
	}
	params := make([]uint64, 0, len(args)-2)
	for i := 2; i < len(args); i++ {
		if err := expectArg(op, args, i, value.Int); err != nil {
			return nil, err
		}
		v, _ := args[i].Int()
		params = append(params, uint64(v))
	}

	lib, ok := ref(args[0]).Resource().(*extlib.Library)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseCall, op, ref(args[0]).String(), "handle(library)")
	}

	fn := str(args[1]).String()
	env.Logger().Debug("library call",
		zap.String("library", lib.Name()),
		zap.String("function", fn),
		zap.Int("params", len(params)))

	results, err := lib.Call(context.Background(), fn, params...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return value.IntOf(int64(results[0])), nil
}
