package endpoint

import "errors"

var (
	// ErrClosed is returned for deliveries to a closed endpoint and for a
	// repeated Close.
	ErrClosed = errors.New("endpoint is closed")

	// ErrNilNotifier is returned at construction when no notification
	// primitive is supplied; the endpoint cannot participate in a wait
	// set without one.
	ErrNilNotifier = errors.New("nil notifier")
)
