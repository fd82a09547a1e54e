// Package extlib loads WebAssembly modules as dynamic libraries for the
// interpreter. A Library is a handle.Resource: wrap it with a handle table
// so it is closed when the last value referencing it is destroyed.
//
//	lib, err := extlib.Open(ctx, "math", wasmBytes)
//	ref, err := table.Open(lib)
//	res, err := lib.Call(ctx, "add", 2, 3)
//
// Each Library owns its own wazero runtime, so closing it releases all
// compiled code and linear memory.
package extlib
