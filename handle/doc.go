// Package handle provides usage-counted handles to external resources such
// as windows, pixmaps, directories or loaded libraries.
//
// A Ref shares one Resource between any number of value slots. Every copy
// made by the ownership protocol increments the usage count and every
// release decrements it; the resource is closed when the count reaches
// zero. A Ref with usage count 0 is statically owned and exempt from
// counting, like the Empty sentinel.
//
// # Table
//
// Counted handles are opened through a Table, which tracks every live
// resource so the host can close them deterministically at shutdown:
//
//	table := handle.NewTable(logger)
//	defer table.Close()
//
//	ref, err := table.Open(window)
//	...
//	value.Destroy(slot) // closes window when this was the last reference
//
// # Observers
//
// Register observers to track handle lifecycle events:
//
//	table.Subscribe(handle.ObserverFunc(func(e handle.Event) {
//	    if e.Type == handle.EventClosed {
//	        log.Printf("handle %d closed", e.ID)
//	    }
//	}))
//
// # Thread Safety
//
// Usage counts are plain integers mutated under the table mutex, so a Table
// and its Refs may be shared across goroutines.
package handle
