// Package value defines runtime value slots and the ownership protocol that
// governs them.
//
// A Slot holds one value plus two flags:
//
//	Temporary - the value is a disposable intermediate result; nothing else
//	            aliases its storage, so it may be moved instead of copied
//	Variable  - the slot is assignable
//
// Payloads that own storage implement Owned. The protocol functions dispatch
// on that interface:
//
//	Create(dest, src)  initialize dest from src (move if src is temporary)
//	Assign(dest, src)  release dest, then behave like Create
//	Destroy(s)         release what s owns
//	Equals(a, b)       content equality for buffers, identity for handles
//
// Scalar payloads (integers, floats, booleans, characters, actions) are
// copied by value and never need releasing.
//
// Failure semantics: when duplication fails the destination is left Empty,
// which is valid and safe to destroy, and the source is left untouched.
package value
