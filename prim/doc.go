// Package prim implements the primitive actions and their static table.
//
// Every primitive receives its operands as slots. A temporary string operand
// is taken out of its slot and handed to the buffer engine for reuse, so the
// result may share its storage. Whatever a primitive leaves in a temporary
// operand slot is destroyed by the caller after the call.
//
// Results are fresh temporary slots. Primitives that only mutate a
// destination (copy, create, destroy, append) return nil.
package prim
