package prim

import (
	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/value"
)

// create initializes a fresh destination from a source of any owned kind.
func create(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("create", args, anyKind, anyKind); err != nil {
		return nil, err
	}
	return nil, value.Create(args[0], args[1])
}

func destroy(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("destroy", args, anyKind); err != nil {
		return nil, err
	}
	value.Destroy(args[0])
	return nil, nil
}

// scalarCopy assigns between slots whose payload is copied by value.
func scalarCopy(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("copy", args, anyKind, anyKind); err != nil {
		return nil, err
	}
	dest, src := args[0], args[1]
	switch src.Kind() {
	case value.Int, value.Float, value.Bool, value.Char, value.Action:
	default:
		return nil, errors.TypeMismatch(errors.PhaseCall, "copy", src.Kind().String(), "scalar")
	}
	if !dest.IsEmpty() && dest.Kind() != src.Kind() {
		return nil, errors.TypeMismatch(errors.PhaseCall, "copy", dest.Kind().String(), src.Kind().String())
	}
	return nil, value.Assign(dest, src)
}

func copyOp(op string, kind value.Kind, args []*value.Slot) (*value.Slot, error) {
	if err := expect(op, args, anyKind, kind); err != nil {
		return nil, err
	}
	if !args[0].IsEmpty() {
		if err := expectArg(op, args, 0, kind); err != nil {
			return nil, err
		}
	}
	return nil, value.Assign(args[0], args[1])
}

func strCpy(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return copyOp("STR_CPY", value.String, args)
}

func hdlCpy(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return copyOp("HDL_CPY", value.Handle, args)
}
