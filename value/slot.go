package value

import (
	"fmt"
)

// Slot is a tagged container for one runtime value.
type Slot struct {
	payload   any
	kind      Kind
	Temporary bool
	Variable  bool
}

// New returns a non-temporary slot holding payload.
func New(kind Kind, payload any) *Slot {
	return &Slot{kind: kind, payload: payload}
}

// NewTemp returns a temporary slot for a freshly produced payload. Callers
// must guarantee nothing else references payload.
func NewTemp(kind Kind, payload any) *Slot {
	return &Slot{kind: kind, payload: payload, Temporary: true}
}

// NewVar returns an empty variable slot, ready to be initialized by Create.
func NewVar() *Slot {
	return &Slot{Variable: true}
}

func IntOf(v int64) *Slot     { return NewTemp(Int, v) }
func FloatOf(v float64) *Slot { return NewTemp(Float, v) }
func BoolOf(v bool) *Slot     { return NewTemp(Bool, v) }
func CharOf(v rune) *Slot     { return NewTemp(Char, v) }

// Kind returns the slot discriminant.
func (s *Slot) Kind() Kind {
	return s.kind
}

// Payload returns the held value without transferring ownership.
func (s *Slot) Payload() any {
	return s.payload
}

// IsEmpty reports whether the slot holds no value.
func (s *Slot) IsEmpty() bool {
	return s.kind == Empty
}

// Int returns the integer payload.
func (s *Slot) Int() (int64, bool) {
	v, ok := s.payload.(int64)
	return v, ok && s.kind == Int
}

// Bool returns the boolean payload.
func (s *Slot) Bool() (bool, bool) {
	v, ok := s.payload.(bool)
	return v, ok && s.kind == Bool
}

// Char returns the character payload.
func (s *Slot) Char() (rune, bool) {
	v, ok := s.payload.(rune)
	return v, ok && s.kind == Char
}

// Float returns the float payload.
func (s *Slot) Float() (float64, bool) {
	v, ok := s.payload.(float64)
	return v, ok && s.kind == Float
}

// Take transfers the payload out of s and leaves it Empty. The caller becomes
// responsible for releasing an Owned payload.
func Take(s *Slot) any {
	p := s.payload
	s.clear()
	return p
}

func (s *Slot) clear() {
	s.payload = nil
	s.kind = Empty
	s.Temporary = false
}

func (s *Slot) String() string {
	switch s.kind {
	case Empty:
		return "<empty>"
	case Char:
		return fmt.Sprintf("%q", s.payload)
	case String:
		return fmt.Sprintf("%q", fmt.Sprint(s.payload))
	default:
		return fmt.Sprint(s.payload)
	}
}
