// Package valueruntime implements the value-lifecycle core of an interpreter
// runtime: the ownership protocol for runtime values, the growable string
// buffer engine, shared resource handles and the action symbol registry.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	valueruntime/        Root package with the Allocator interface
//	├── value/           Value slots and the create/assign/destroy protocol
//	├── strbuf/          Growable string buffers and their algorithms
//	├── handle/          Usage-counted handles to external resources
//	├── extlib/          WebAssembly libraries exposed as handle resources
//	├── action/          Name and procedure lookup for primitive actions
//	├── prim/            Primitive procedures and the static action table
//	├── runtime/         High-level API wiring the pieces together
//	├── config/          YAML configuration
//	└── errors/          Structured error types
//
// # Quick Start
//
//	rt, err := runtime.New(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	a, _ := rt.String("ab")
//	b, _ := rt.String("cd")
//	res, err := rt.Call("STR_CAT", a, b)
//	fmt.Println(res) // "abcd"
//
// # Ownership
//
// Every slot carries two flags. Variable marks an assignable slot. Temporary
// marks a value produced fresh by the current evaluation step: nothing else
// aliases its storage, so consumers may take the storage instead of copying
// it. Only constructors of fresh values set Temporary.
//
// # Memory Accounting
//
// Buffer storage is reserved through an Allocator. The default Heap never
// fails; LimitedAllocator enforces an element budget, which is how
// MemoryExhausted is produced and how leak-freedom of failing operations is
// checked in tests.
//
// # Thread Safety
//
// Slots and buffers are not safe for concurrent use: the evaluator mutates a
// slot from one logical step at a time. The action registry and the handle
// table may be shared across goroutines.
package valueruntime
