package handle

import (
	"github.com/wippyai/value-runtime/value"
)

// Ref is a shared reference to a Resource.
type Ref struct {
	res    Resource
	table  *Table
	id     ID
	usage  uint32
	closed bool
}

var _ value.Owned = (*Ref)(nil)

// Empty is the statically owned handle that refers to nothing.
var Empty = &Ref{}

// Static wraps a resource owned outside the runtime. The returned Ref has
// usage count 0: copies and releases never touch the resource.
func Static(res Resource) *Ref {
	return &Ref{res: res}
}

// Resource returns the referenced resource, or nil for Empty.
func (r *Ref) Resource() Resource {
	return r.res
}

// ID returns the table identifier, or 0 for static handles.
func (r *Ref) ID() ID {
	return r.id
}

// Usage returns the current usage count.
func (r *Ref) Usage() uint32 {
	if r.table == nil {
		return r.usage
	}
	r.table.mu.Lock()
	defer r.table.mu.Unlock()
	return r.usage
}

// Counted reports whether the handle takes part in usage counting.
func (r *Ref) Counted() bool {
	return r.table != nil
}

// Duplicate implements value.Owned by incrementing the usage count.
func (r *Ref) Duplicate() (value.Owned, error) {
	if r.table != nil {
		r.table.retain(r)
	}
	return r, nil
}

// Release implements value.Owned. The resource is closed when the last
// counted reference goes away.
func (r *Ref) Release() {
	if r.table != nil {
		r.table.release(r)
	}
}

// Equal implements value.Owned with identity comparison.
func (r *Ref) Equal(o value.Owned) bool {
	other, ok := o.(*Ref)
	return ok && other == r
}

func (r *Ref) String() string {
	if r.res == nil {
		return "handle(empty)"
	}
	return "handle(" + kindOf(r.res) + ")"
}
