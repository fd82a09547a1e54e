package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseCall,
				Kind:   KindTypeMismatch,
				Op:     "STR_CAT",
				Got:    "integer",
				Want:   "string",
				Detail: "argument 2",
			},
			contains: []string{"[call]", "type_mismatch", "STR_CAT", "got integer", "want string", "argument 2"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseBuffer,
				Kind:  KindRange,
			},
			contains: []string{"[buffer]", "range"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "compile module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "compile module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause through the chain")
	}
}

func TestError_Is(t *testing.T) {
	err := MemoryExhausted(PhaseBuffer, 16)

	if !err.Is(&Error{Phase: PhaseBuffer, Kind: KindMemoryExhausted}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseCreate, Kind: KindMemoryExhausted}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseBuffer, Kind: KindRange}) {
		t.Error("Is should not match different kind")
	}
	if !errors.Is(err, ErrMemoryExhausted) {
		t.Error("sentinel without phase should match on kind")
	}
	if errors.Is(err, ErrRange) {
		t.Error("range sentinel should not match memory error")
	}

	var wrapped error = Wrap(PhaseCall, KindInvalidData, err, "call failed")
	if !errors.Is(wrapped, ErrMemoryExhausted) {
		t.Error("sentinel should match through Wrap")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCall, KindTypeMismatch).
		Op("STR_POS").
		Got("char").
		Want("string").
		Value(42).
		Cause(cause).
		Detail("argument %d", 2).
		Build()

	if err.Phase != PhaseCall {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseCall)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if err.Op != "STR_POS" || err.Got != "char" || err.Want != "string" {
		t.Errorf("Op=%q Got=%q Want=%q", err.Op, err.Got, err.Want)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "argument 2" {
		t.Errorf("Detail = %q, want 'argument 2'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MemoryExhausted", func(t *testing.T) {
		err := MemoryExhausted(PhaseBuffer, 1024)
		if err.Kind != KindMemoryExhausted {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMemoryExhausted)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("Range", func(t *testing.T) {
		err := Range(PhaseBuffer, "mult", -3, "negative factor")
		if err.Kind != KindRange || err.Value != -3 || err.Op != "mult" {
			t.Errorf("unexpected %+v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseAction, "action", "NOPE")
		if err.Kind != KindNotFound || !strings.Contains(err.Error(), `"NOPE"`) {
			t.Errorf("unexpected %v", err)
		}
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed(PhaseHandle, "handle table")
		if err.Kind != KindClosed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindClosed)
		}
	})

	t.Run("Load", func(t *testing.T) {
		cause := errors.New("bad magic")
		err := Load("compile module", cause)
		if err.Phase != PhaseLoad || !errors.Is(err, cause) {
			t.Errorf("unexpected %v", err)
		}
	})
}
