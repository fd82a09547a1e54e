// Package runtime wires the value runtime together.
//
// # Quick Start
//
//	ctx := context.Background()
//	rt, err := runtime.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Close()
//
//	ab, _ := rt.String("ab")
//	cd, _ := rt.String("cd")
//	res, err := rt.Call("STR_CAT", ab, cd)
//	fmt.Println(res) // "abcd"
//
// # Ownership
//
// Call hands its arguments to the primitive. Temporary arguments are
// consumed: whatever the primitive did not take over is destroyed before
// Call returns. Results are temporary slots owned by the caller; keep one
// with Declare, which moves it into a variable without copying.
//
// # Configuration
//
// Options configure the allocator, the logger and action lookup:
//
//	rt, err := runtime.New(ctx,
//	    runtime.WithAllocator(valueruntime.NewLimitedAllocator(1<<20)),
//	    runtime.WithLogger(logger),
//	    runtime.WithStrictIndex(),
//	)
//
// FromConfig applies a configuration file, including the libraries it
// lists. A library is reachable through Library as a handle value and is
// closed when the runtime and every copy of its handle are gone.
package runtime
