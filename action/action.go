package action

import (
	"go.uber.org/zap"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/errors"
	"github.com/wippyai/value-runtime/handle"
	"github.com/wippyai/value-runtime/value"
)

// IllegalName is the name of the reserved action at ordinal 0.
const IllegalName = "ACT_ILLEGAL"

// Env is the runtime state a primitive procedure may use.
type Env interface {
	Allocator() valueruntime.Allocator
	Actions() *Registry
	Handles() *handle.Table
	Logger() *zap.Logger
}

// Proc is a primitive procedure. Results are fresh temporary slots.
//
// The registry identifies a procedure by its code address. Bind each action
// to a distinct top-level function: closures returned by one factory share
// code, and whether the compiler keeps them apart depends on inlining.
// Names bound to the same function are aliases of one procedure.
type Proc func(env Env, args []*value.Slot) (*value.Slot, error)

// Entry binds a name to a procedure.
type Entry struct {
	Name string
	Proc Proc
}

// Action is a runtime reference to a registry entry. The zero Action is the
// illegal action.
type Action struct {
	reg *Registry
	ord int
}

// Entry returns the table entry the action refers to.
func (a Action) Entry() Entry {
	if a.reg == nil {
		return illegalEntry
	}
	return a.reg.entries[a.ord]
}

// Name returns the action name.
func (a Action) Name() string {
	return a.Entry().Name
}

// IsIllegal reports whether a is the reserved illegal action.
func (a Action) IsIllegal() bool {
	return a.ord == 0
}

// Call invokes the action's procedure.
func (a Action) Call(env Env, args []*value.Slot) (*value.Slot, error) {
	return a.Entry().Proc(env, args)
}

func (a Action) String() string {
	return a.Name()
}

var illegalEntry = Entry{Name: IllegalName, Proc: illegal}

func illegal(Env, []*value.Slot) (*value.Slot, error) {
	return nil, errors.Range(errors.PhaseCall, IllegalName, nil, "illegal action")
}
