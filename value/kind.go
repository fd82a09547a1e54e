package value

// Kind is the discriminant of a Slot.
type Kind uint8

const (
	Empty Kind = iota
	Int
	Float
	Bool
	Char
	String
	Handle
	Action
)

var kindNames = [...]string{
	Empty:  "empty",
	Int:    "integer",
	Float:  "float",
	Bool:   "boolean",
	Char:   "char",
	String: "string",
	Handle: "handle",
	Action: "action",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Owned is implemented by payloads that own storage or a shared reference.
type Owned interface {
	// Duplicate returns an independent copy, or the same object with its
	// usage count incremented for shared payloads.
	Duplicate() (Owned, error)
	// Release gives up this reference.
	Release()
	// Equal reports value equality for buffers and identity for handles.
	Equal(Owned) bool
}
