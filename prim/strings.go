package prim

import (
	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/strbuf"
	"github.com/wippyai/value-runtime/value"
)

func strAppend(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_APPEND", args, value.String, value.String); err != nil {
		return nil, err
	}
	return nil, str(args[0]).Append(str(args[1]))
}

func strCat(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_CAT", args, value.String, value.String); err != nil {
		return nil, err
	}
	a, reuse := takeStr(args, 0)
	return strResult(strbuf.Concat(a, str(args[1]), reuse))
}

func strMult(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_MULT", args, value.String, value.Int); err != nil {
		return nil, err
	}
	return strResult(strbuf.Mult(str(args[0]), integer(args[1])))
}

func strSize(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_SIZE", args, value.String); err != nil {
		return nil, err
	}
	return intOf(str(args[0]).Size())
}

func strIdx(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_IDX", args, value.String, value.Int); err != nil {
		return nil, err
	}
	ch, err := str(args[0]).Idx(integer(args[1]))
	if err != nil {
		return nil, err
	}
	return value.CharOf(ch), nil
}

func strCmp(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_CMP", args, value.String, value.String); err != nil {
		return nil, err
	}
	return intOf(strbuf.Compare(str(args[0]), str(args[1])))
}

func strEq(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_EQ", args, value.String, value.String); err != nil {
		return nil, err
	}
	return boolOf(value.Equals(args[0], args[1]))
}

func strNe(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_NE", args, value.String, value.String); err != nil {
		return nil, err
	}
	return boolOf(!value.Equals(args[0], args[1]))
}

// Extraction takes one string and one or two integer bounds.

func strHead(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_HEAD", args, value.String, value.Int); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(strbuf.Head(s, integer(args[1]), reuse))
}

func strTail(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_TAIL", args, value.String, value.Int); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(strbuf.Tail(s, integer(args[1]), reuse))
}

func strRange(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_RANGE", args, value.String, value.Int, value.Int); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(strbuf.Range(s, integer(args[1]), integer(args[2]), reuse))
}

func strSubstr(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_SUBSTR", args, value.String, value.Int, value.Int); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(strbuf.Substr(s, integer(args[1]), integer(args[2]), reuse))
}

type unaryFunc func(s *strbuf.Buffer, reuse bool) (*strbuf.Buffer, error)

func unaryOp(op string, fn unaryFunc, args []*value.Slot) (*value.Slot, error) {
	if err := expect(op, args, value.String); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(fn(s, reuse))
}

type padFunc func(s *strbuf.Buffer, width int, reuse bool) (*strbuf.Buffer, error)

func padOp(op string, fn padFunc, args []*value.Slot) (*value.Slot, error) {
	if err := expect(op, args, value.String, value.Int); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(fn(s, integer(args[1]), reuse))
}

func renderOp(op string, fn func(*strbuf.Buffer) (*strbuf.Buffer, error), args []*value.Slot) (*value.Slot, error) {
	if err := expect(op, args, value.String); err != nil {
		return nil, err
	}
	return strResult(fn(str(args[0])))
}

// Each primitive is its own function: the registry names an action by the
// identity of its procedure.

func strLow(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return unaryOp("STR_LOW", strbuf.Lower, args)
}

func strUp(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return unaryOp("STR_UP", strbuf.Upper, args)
}

func strTrim(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return unaryOp("STR_TRIM", strbuf.Trim, args)
}

func strLTrim(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return unaryOp("STR_LTRIM", strbuf.LTrim, args)
}

func strRTrim(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return unaryOp("STR_RTRIM", strbuf.RTrim, args)
}

func strLPad(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return padOp("STR_LPAD", strbuf.LPad, args)
}

func strLPad0(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return padOp("STR_LPAD0", strbuf.LPad0, args)
}

func strRPad(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return padOp("STR_RPAD", strbuf.RPad, args)
}

func strLit(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return renderOp("STR_LIT", strbuf.Lit, args)
}

func strCLit(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	return renderOp("STR_CLIT", strbuf.CLit, args)
}

func strPos(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_POS", args, value.String, value.String); err != nil {
		return nil, err
	}
	return intOf(strbuf.Pos(str(args[0]), str(args[1])))
}

func strRPos(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_RPOS", args, value.String, value.String); err != nil {
		return nil, err
	}
	return intOf(strbuf.RPos(str(args[0]), str(args[1])))
}

func strIPos(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_IPOS", args, value.String, value.String, value.Int); err != nil {
		return nil, err
	}
	return intOf(strbuf.IPos(str(args[0]), str(args[1]), integer(args[2])))
}

func strRIPos(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_RIPOS", args, value.String, value.String, value.Int); err != nil {
		return nil, err
	}
	return intOf(strbuf.RIPos(str(args[0]), str(args[1]), integer(args[2])))
}

func strChPos(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_CHPOS", args, value.String, value.Char); err != nil {
		return nil, err
	}
	return intOf(strbuf.ChPos(str(args[0]), char(args[1])))
}

func strRChPos(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_RCHPOS", args, value.String, value.Char); err != nil {
		return nil, err
	}
	return intOf(strbuf.RChPos(str(args[0]), char(args[1])))
}

func strRepl(_ action.Env, args []*value.Slot) (*value.Slot, error) {
	if err := expect("STR_REPL", args, value.String, value.String, value.String); err != nil {
		return nil, err
	}
	s, reuse := takeStr(args, 0)
	return strResult(strbuf.Repl(s, str(args[1]), str(args[2]), reuse))
}
