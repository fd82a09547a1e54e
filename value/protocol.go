package value

import (
	stderrors "errors"

	"github.com/wippyai/value-runtime/errors"
)

// Create initializes dest from src.
//
// A temporary src hands its storage to dest and is cleared, so it cannot be
// released twice. Otherwise dest receives a duplicate. On failure dest is
// Empty and src is unchanged. Creating a slot from itself is a no-op.
func Create(dest, src *Slot) error {
	if dest == src {
		return nil
	}
	return install(dest, src, errors.PhaseCreate)
}

// Assign releases what dest holds and then initializes it from src.
func Assign(dest, src *Slot) error {
	if dest == src {
		return nil
	}
	Destroy(dest)
	return install(dest, src, errors.PhaseAssign)
}

func install(dest, src *Slot, phase errors.Phase) error {
	if src.Temporary {
		dest.kind = src.kind
		dest.payload = src.payload
		dest.Temporary = false
		src.clear()
		return nil
	}

	payload := src.payload
	if o, ok := payload.(Owned); ok {
		dup, err := o.Duplicate()
		if err != nil {
			dest.clear()
			kind := errors.KindMemoryExhausted
			var rerr *errors.Error
			if stderrors.As(err, &rerr) {
				kind = rerr.Kind
			}
			return errors.Wrap(phase, kind, err, "duplicate "+src.kind.String())
		}
		payload = dup
	}
	dest.kind = src.kind
	dest.payload = payload
	dest.Temporary = false
	return nil
}

// Destroy releases what s owns and leaves it Empty. Destroying an Empty slot
// is a no-op.
func Destroy(s *Slot) {
	if s == nil || s.kind == Empty {
		return
	}
	if o, ok := s.payload.(Owned); ok {
		o.Release()
	}
	s.clear()
}

// Equals compares two slots. Slots of different kinds are never equal.
func Equals(a, b *Slot) bool {
	if a.kind != b.kind {
		return false
	}
	if oa, ok := a.payload.(Owned); ok {
		ob, ok := b.payload.(Owned)
		return ok && oa.Equal(ob)
	}
	return a.payload == b.payload
}
