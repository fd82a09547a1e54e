// Package strbuf implements the growable buffer engine behind the string
// value kind.
//
// A Buffer is an owned, contiguous sequence of character elements. Its
// storage is reserved through a valueruntime.Allocator and changes size only
// through an explicit reallocate-and-copy step, so Size always equals the
// reserved element count between calls.
//
// # Reuse
//
// Operations whose first operand may be a disposable intermediate result
// take a reuse flag:
//
//	res, err := strbuf.Concat(a, b, true)
//
// With reuse set the operation takes ownership of the operand: its storage
// is either modified in place and returned, or released. The caller must
// only pass reuse=true for a value that nothing else references, which in
// practice means a value taken out of a temporary slot.
//
// # Over-allocation
//
// Literal rendering and replacement reserve a worst-case or guessed size
// first and shrink to the exact result afterwards. When the final shrink
// fails the oversized buffer is released and a MemoryExhausted error is
// returned.
//
// # Indexing
//
// Positions are 1-based. Extraction clamps its bounds into [1, Size] and
// yields an empty buffer for ranges outside the string. Searches return 0
// when nothing matches; an empty pattern never matches.
package strbuf
