package buffer

import "fmt"

// Ownership tags how an envelope's payload is held.
type Ownership int

const (
	// Shared marks a reference-counted immutable payload readable by any
	// number of holders.
	Shared Ownership = iota
	// Unique marks an exclusively owned payload that transfers completely
	// to whichever consumer takes it.
	Unique
)

// String returns the text form of the ownership tag.
func (o Ownership) String() string {
	switch o {
	case Shared:
		return "shared"
	case Unique:
		return "unique"
	default:
		return fmt.Sprintf("ownership(%d)", int(o))
	}
}

// Envelope wraps a message payload with its ownership tag as it moves
// through a buffer. Envelopes are moved, never duplicated: the only
// conversion is the buffer's one-time Unique-to-Shared promotion.
type Envelope[T any] struct {
	msg  *T
	kind Ownership
}

// NewShared wraps a payload already shared among holders. The payload must
// not be mutated after hand-off.
func NewShared[T any](msg *T) Envelope[T] {
	return Envelope[T]{msg: msg, kind: Shared}
}

// NewUnique wraps an exclusively owned payload. The producer must not touch
// the payload after hand-off; ownership now travels with the envelope.
func NewUnique[T any](msg *T) Envelope[T] {
	return Envelope[T]{msg: msg, kind: Unique}
}

// Kind reports which ownership variant the envelope holds.
func (e Envelope[T]) Kind() Ownership {
	return e.kind
}

// Message returns the payload handle. For a Shared envelope the payload is
// read-only; for a Unique envelope the taker owns it outright.
func (e Envelope[T]) Message() *T {
	return e.msg
}

// Promote converts a Unique envelope to Shared in place. It is performed by
// the buffer, never by the producer, and only when the buffer's ownership
// mode requires fan-out. Idempotent: promoting an already-shared envelope is
// a no-op and the shared handle is unchanged.
func (e *Envelope[T]) Promote() {
	e.kind = Shared
}
