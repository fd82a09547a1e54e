// Package action resolves primitive actions by name and by procedure.
//
// The canonical table is a slice of Entry values sorted ascending by name.
// A Registry places the reserved illegal action at ordinal 0 ahead of the
// table, so ordinals of table entries start at 1.
//
// # Lookup
//
//	FindByName(name)       binary search on the name-sorted table
//	ToOrdinal / FromOrdinal stable small-integer identity
//	ResolveByPointer(proc) procedure identity to entry
//
// # Shared procedures
//
// Several names may be bound to the same procedure, for example all scalar
// copy actions share one copy routine. A procedure therefore does not
// identify a name by itself. On first reverse lookup the registry builds a
// second index sorted by procedure identity in which every run of equal
// procedures is collapsed to the entry whose name sorts first; that name is
// the canonical display name of the action. The index is built once and
// cached for the lifetime of the registry.
//
// When the index cannot be built, or a procedure is unknown, ResolveByPointer
// answers with the illegal action. ResolveByPointerStrict reports those
// conditions as errors instead.
package action
