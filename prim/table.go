package prim

import (
	"github.com/wippyai/value-runtime/action"
)

// Table returns the primitive actions sorted by name.
func Table() []action.Entry {
	return []action.Entry{
		{Name: "ACT_CPY", Proc: scalarCopy},
		{Name: "ACT_EQ", Proc: actEq},
		{Name: "ACT_GEN", Proc: actGen},
		{Name: "ACT_ICAST", Proc: actICast},
		{Name: "ACT_ORD", Proc: actOrd},
		{Name: "ACT_STR", Proc: actStr},
		{Name: "BLN_CPY", Proc: scalarCopy},
		{Name: "CHR_CPY", Proc: scalarCopy},
		{Name: "HDL_CMP", Proc: hdlCmp},
		{Name: "HDL_CPY", Proc: hdlCpy},
		{Name: "HDL_CREATE", Proc: create},
		{Name: "HDL_DESTR", Proc: destroy},
		{Name: "INT_CPY", Proc: scalarCopy},
		{Name: "LIB_CALL", Proc: libCall},
		{Name: "STR_APPEND", Proc: strAppend},
		{Name: "STR_CAT", Proc: strCat},
		{Name: "STR_CHPOS", Proc: strChPos},
		{Name: "STR_CLIT", Proc: strCLit},
		{Name: "STR_CMP", Proc: strCmp},
		{Name: "STR_CPY", Proc: strCpy},
		{Name: "STR_CREATE", Proc: create},
		{Name: "STR_DESTR", Proc: destroy},
		{Name: "STR_EQ", Proc: strEq},
		{Name: "STR_HEAD", Proc: strHead},
		{Name: "STR_IDX", Proc: strIdx},
		{Name: "STR_IPOS", Proc: strIPos},
		{Name: "STR_LIT", Proc: strLit},
		{Name: "STR_LOW", Proc: strLow},
		{Name: "STR_LPAD", Proc: strLPad},
		{Name: "STR_LPAD0", Proc: strLPad0},
		{Name: "STR_LTRIM", Proc: strLTrim},
		{Name: "STR_MULT", Proc: strMult},
		{Name: "STR_NE", Proc: strNe},
		{Name: "STR_POS", Proc: strPos},
		{Name: "STR_RANGE", Proc: strRange},
		{Name: "STR_RCHPOS", Proc: strRChPos},
		{Name: "STR_REPL", Proc: strRepl},
		{Name: "STR_RIPOS", Proc: strRIPos},
		{Name: "STR_RPAD", Proc: strRPad},
		{Name: "STR_RPOS", Proc: strRPos},
		{Name: "STR_RTRIM", Proc: strRTrim},
		{Name: "STR_SIZE", Proc: strSize},
		{Name: "STR_SUBSTR", Proc: strSubstr},
		{Name: "STR_TAIL", Proc: strTail},
		{Name: "STR_TRIM", Proc: strTrim},
		{Name: "STR_UP", Proc: strUp},
	}
}
