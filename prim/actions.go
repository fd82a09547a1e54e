package prim

import (
	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/strbuf"
	"github.com/wippyai/value-runtime/value"
)

func act(s *value.Slot) action.Action {
	return s.Payload().(action.Action)
}

func actEq(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("ACT_EQ", args, value.Action, value.Action); err != nil {
		return nil, err
	}
	return boolOf(act(args[0]) == act(args[1]))
}

func actGen(env action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("ACT_GEN", args, value.String); err != nil {
		return nil, err
	}
	a, err := env.Actions().FindByName(str(args[0]).String())
	if err != nil {
		return nil, err
	}
	return value.NewTemp(value.Action, a), nil
}

func actICast(env action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("ACT_ICAST", args, value.Int); err != nil {
		return nil, err
	}
	a, err := env.Actions().FromOrdinal(integer(args[0]))
	if err != nil {
		return nil, err
	}
	return value.NewTemp(value.Action, a), nil
}

func actOrd(env action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("ACT_ORD", args, value.Action); err != nil {
		return nil, err
	}
	return intOf(env.Actions().ToOrdinal(act(args[0])))
}

// actStr names an action by its procedure, so aliases report the first name
// bound to the same procedure.
func actStr(env action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("ACT_STR", args, value.Action); err != nil {
		return nil, err
	}
	e, err := env.Actions().Resolve(act(args[0]).Entry().Proc)
	if err != nil {
		return nil, err
	}
	return strResult(strbuf.FromString(env.Allocator(), e.Name))
}
