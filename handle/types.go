package handle

// ID identifies a handle within its table.
// ID 0 is reserved and always invalid.
type ID uint32

// Resource is an externally managed object reachable through a handle.
type Resource interface {
	Close() error
}

// Kinder is optionally implemented by resources to name their kind in logs
// and diagnostics.
type Kinder interface {
	Kind() string
}

// Event types for handle lifecycle notifications.
type EventType uint8

const (
	EventOpened EventType = iota
	EventRetained
	EventReleased
	EventClosed
)

func (t EventType) String() string {
	switch t {
	case EventOpened:
		return "opened"
	case EventRetained:
		return "retained"
	case EventReleased:
		return "released"
	case EventClosed:
		return "closed"
	}
	return "unknown"
}

// Event represents a handle lifecycle event.
type Event struct {
	Resource Resource
	Err      error
	ID       ID
	Usage    uint32
	Type     EventType
}

// Observer receives notifications about handle lifecycle events.
type Observer interface {
	OnHandleEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

func (f ObserverFunc) OnHandleEvent(e Event) { f(e) }

func kindOf(res Resource) string {
	if k, ok := res.(Kinder); ok {
		return k.Kind()
	}
	return "resource"
}
