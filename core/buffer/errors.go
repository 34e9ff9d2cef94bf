package buffer

import "errors"

var (
	// ErrInvalidConfig is returned at construction for a non-positive
	// capacity or an unrecognized overflow policy or ownership mode.
	// It aborts that subscription's setup, never the process.
	ErrInvalidConfig = errors.New("invalid buffer configuration")

	// ErrEmpty is returned by Take when no message is pending. Expected
	// under benign races between a wake and the drain; callers treat it
	// as "nothing to do now".
	ErrEmpty = errors.New("buffer is empty")

	// ErrRejected is returned by Enqueue when a full RejectNewest buffer
	// discards the new message. Informational: it is the declared
	// retention policy in action, not a system fault.
	ErrRejected = errors.New("message rejected by full buffer")
)
