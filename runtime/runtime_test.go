package runtime

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/config"
	rterrors "github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/strbuf"
	"github.com/wippyai/value-runtime/value"
)

func newRuntime(t *testing.T, opts ...Option) *Runtime {
	t.Helper()
	rt, err := New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	return rt
}

func mustString(t *testing.T, rt *Runtime, s string) *value.Slot {
	t.Helper()
	v, err := rt.String(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func text(s *value.Slot) string {
	return s.Payload().(*strbuf.Buffer).String()
}

func TestCall_Scenarios(t *testing.T) {
	alloc := valueruntime.NewLimitedAllocator(1 << 16)
	rt := newRuntime(t, WithAllocator(alloc))

	tests := []struct {
		name string
		call func() (*value.Slot, error)
		want string
	}{
		{"cat", func() (*value.Slot, error) {
			return rt.Call("STR_CAT", mustString(t, rt, "ab"), mustString(t, rt, "cd"))
		}, "abcd"},
		{"head", func() (*value.Slot, error) {
			return rt.Call("STR_HEAD", mustString(t, rt, "abcdef"), value.IntOf(3))
		}, "abc"},
		{"repl", func() (*value.Slot, error) {
			return rt.Call("STR_REPL", mustString(t, rt, "aXbXc"), mustString(t, rt, "X"), mustString(t, rt, "--"))
		}, "a--b--c"},
		{"mult", func() (*value.Slot, error) {
			return rt.Call("STR_MULT", mustString(t, rt, "ab"), value.IntOf(3))
		}, "ababab"},
		{"lit", func() (*value.Slot, error) {
			return rt.Call("STR_LIT", mustString(t, rt, "a\nb"))
		}, `"a\nb"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.call()
			if err != nil {
				t.Fatal(err)
			}
			if got := text(res); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			value.Destroy(res)
			if alloc.InUse() != 0 {
				t.Errorf("InUse = %d, temporaries leaked", alloc.InUse())
			}
		})
	}

	res, err := rt.Call("STR_POS", mustString(t, rt, "abcdef"), mustString(t, rt, "cde"))
	if n, _ := res.Int(); err != nil || n != 3 {
		t.Errorf("pos = %v, %v", res, err)
	}
}

func TestCall_UnknownAction(t *testing.T) {
	alloc := valueruntime.NewLimitedAllocator(100)
	rt := newRuntime(t, WithAllocator(alloc))

	arg := mustString(t, rt, "abc")
	if _, err := rt.Call("STR_NOPE", arg); !errors.Is(err, rterrors.ErrRange) {
		t.Errorf("unknown action = %v", err)
	}
	if !arg.IsEmpty() || alloc.InUse() != 0 {
		t.Error("temporary argument of a failed lookup should be destroyed")
	}
}

func TestDeclare_MovesTemporary(t *testing.T) {
	alloc := valueruntime.NewLimitedAllocator(100)
	rt := newRuntime(t, WithAllocator(alloc))

	tmp := mustString(t, rt, "hello")
	storage := tmp.Payload()
	before := alloc.Allocs()

	v, err := rt.Declare(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if alloc.Allocs() != before {
		t.Error("declaring from a temporary should not allocate")
	}
	if v.Payload() != storage || !tmp.IsEmpty() {
		t.Error("storage should move into the variable")
	}
	if v.Temporary || !v.Variable {
		t.Errorf("flags: temporary=%v variable=%v", v.Temporary, v.Variable)
	}

	w, err := rt.Declare(v)
	if err != nil {
		t.Fatal(err)
	}
	if alloc.Allocs() != before+1 || w.Payload() == v.Payload() {
		t.Error("declaring from a variable should copy")
	}

	value.Destroy(v)
	value.Destroy(w)
	if alloc.InUse() != 0 {
		t.Errorf("InUse = %d", alloc.InUse())
	}
}

func TestDeclare_MemoryExhausted(t *testing.T) {
	alloc := valueruntime.NewLimitedAllocator(8)
	rt := newRuntime(t, WithAllocator(alloc))

	v, err := rt.Declare(mustString(t, rt, "hello"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rt.Declare(v); !errors.Is(err, rterrors.ErrMemoryExhausted) {
		t.Errorf("copy over budget = %v", err)
	}
	if text(v) != "hello" || alloc.InUse() != 5 {
		t.Errorf("source changed: %q, InUse=%d", text(v), alloc.InUse())
	}
}

func TestActionNames(t *testing.T) {
	rt := newRuntime(t)

	gen, err := rt.Call("ACT_GEN", mustString(t, rt, "CHR_CPY"))
	if err != nil {
		t.Fatal(err)
	}
	name, err := rt.Call("ACT_STR", gen)
	if err != nil {
		t.Fatal(err)
	}
	if text(name) != "ACT_CPY" {
		t.Errorf("ACT_STR(CHR_CPY) = %s", text(name))
	}
}

func TestActionNames_IndexFailure(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{"lenient", nil, false},
		{"strict", []Option{WithStrictIndex()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := valueruntime.NewLimitedAllocator(20)
			rt := newRuntime(t, append(tt.opts, WithAllocator(alloc))...)

			gen, err := rt.Call("ACT_GEN", mustString(t, rt, "STR_CAT"))
			if err != nil {
				t.Fatal(err)
			}
			name, err := rt.Call("ACT_STR", gen)
			if tt.wantErr {
				if !errors.Is(err, rterrors.ErrMemoryExhausted) {
					t.Errorf("strict ACT_STR = %v", err)
				}
				return
			}
			if err != nil || text(name) != action.IllegalName {
				t.Errorf("lenient ACT_STR = %v, %v", name, err)
			}
			if rt.Actions().IndexErr() == nil {
				t.Error("IndexErr should report the failure")
			}
		})
	}
}

func TestWithMaxActionName(t *testing.T) {
	rt := newRuntime(t, WithMaxActionName(7))
	if _, err := rt.Call("STR_CAT", mustString(t, rt, "a"), mustString(t, rt, "b")); err != nil {
		t.Errorf("short name: %v", err)
	}
	if _, err := rt.Call("STR_SUBSTR", mustString(t, rt, "a"), value.IntOf(1), value.IntOf(1)); !errors.Is(err, rterrors.ErrRange) {
		t.Errorf("long name = %v", err)
	}
}

func TestWithTable(t *testing.T) {
	_, err := New(context.Background(), WithTable([]action.Entry{
		{Name: "B", Proc: func(action.Env, []*value.Slot) (*value.Slot, error) { return nil, nil }},
		{Name: "A", Proc: func(action.Env, []*value.Slot) (*value.Slot, error) { return nil, nil }},
	}))
	if err == nil {
		t.Fatal("unsorted table should be rejected")
	}
}

// addModule is a core module exporting add(i32, i32) -> i32.
var addModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	0x03, 0x02, 0x01, 0x00,
	0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00,
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b,
}

func TestFromConfig_Libraries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "math.wasm"), addModule, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.MemoryLimit = 1000
	cfg.Libraries = []config.Library{{Name: "math", Path: filepath.Join(dir, "math.wasm")}}

	rt, err := New(context.Background(), FromConfig(cfg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := rt.Allocator().(*valueruntime.LimitedAllocator); !ok {
		t.Error("memory_limit should install a limited allocator")
	}
	if names := rt.Libraries(); len(names) != 1 || names[0] != "math" {
		t.Fatalf("Libraries = %v", names)
	}

	lib, err := rt.Library("math")
	if err != nil {
		t.Fatal(err)
	}
	res, err := rt.Call("LIB_CALL", lib, mustString(t, rt, "add"), value.IntOf(20), value.IntOf(22))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := res.Int(); n != 42 {
		t.Errorf("add = %d", n)
	}

	if _, err := rt.Library("nope"); err == nil {
		t.Error("expected error for unknown library")
	}
	if err := rt.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if rt.Handles().Len() != 0 {
		t.Errorf("handles left open: %d", rt.Handles().Len())
	}
}

func TestFromConfig_MissingLibrary(t *testing.T) {
	cfg := config.Default()
	cfg.Libraries = []config.Library{{Name: "gone", Path: filepath.Join(t.TempDir(), "gone.wasm")}}
	if _, err := New(context.Background(), FromConfig(cfg)); err == nil {
		t.Fatal("expected error for missing library file")
	}
}
