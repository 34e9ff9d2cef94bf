package endpoint

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/intraproc/core/buffer"
	"github.com/dmitrymomot/intraproc/core/qos"
)

// Notifier is the cross-thread wake signal the endpoint triggers after
// every delivery. Trigger must be safe under concurrent calls. The endpoint
// only triggers it; waiting on it belongs to the wait set.
type Notifier interface {
	Trigger()
}

// Endpoint receives intra-process messages for one subscription. Any number
// of publisher goroutines may deliver into it; exactly one consumer at a
// time drains it.
type Endpoint[T any] struct {
	id       string
	topic    string
	pref     buffer.Mode
	buf      *buffer.Buffer[T]
	notifier Notifier
	logger   *slog.Logger

	// mu guards the lifecycle state and the deactivation log-suppression
	// flag; buffer internals carry their own lock.
	mu               sync.Mutex
	activated        bool
	closed           bool
	deactivationSeen bool
}

// New constructs an endpoint for the given topic, building its buffer from
// the queueing profile through the buffer factory. Configuration errors
// abort only this subscription's setup.
//
// Example:
//
//	ep, err := endpoint.New[Reading]("sensor/temperature", profile, buffer.ModeShared, guard)
func New[T any](topic string, profile qos.Profile, pref buffer.Mode, n Notifier, opts ...Option) (*Endpoint[T], error) {
	if n == nil {
		return nil, ErrNilNotifier
	}

	set := defaultSettings()
	for _, opt := range opts {
		opt(&set)
	}

	var (
		buf *buffer.Buffer[T]
		err error
	)
	if set.bufCfg != nil {
		buf, err = buffer.New[T](*set.bufCfg)
	} else {
		buf, err = buffer.FromQoS[T](profile, pref)
	}
	if err != nil {
		return nil, err
	}

	return &Endpoint[T]{
		id:        uuid.New().String(),
		topic:     topic,
		pref:      pref,
		buf:       buf,
		notifier:  n,
		logger:    set.logger,
		activated: !set.deactivated,
	}, nil
}

// ID returns the endpoint's unique instance identifier.
func (e *Endpoint[T]) ID() string {
	return e.id
}

// Topic returns the topic identity this endpoint subscribes to.
func (e *Endpoint[T]) Topic() string {
	return e.topic
}

// DeliverShared hands in a payload shared among subscriptions. The payload
// must not be mutated after delivery.
func (e *Endpoint[T]) DeliverShared(msg *T) error {
	return e.deliver(buffer.NewShared(msg))
}

// DeliverUnique hands in an exclusively owned payload; ownership transfers
// to whichever consumer takes it.
func (e *Endpoint[T]) DeliverUnique(msg *T) error {
	return e.deliver(buffer.NewUnique(msg))
}

func (e *Endpoint[T]) deliver(env buffer.Envelope[T]) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	warnDeactivated := false
	if !e.activated && !e.deactivationSeen {
		e.deactivationSeen = true
		warnDeactivated = true
	}
	e.mu.Unlock()

	if warnDeactivated {
		// Logged once per deactivation cycle, then suppressed.
		e.logger.Warn("delivery while deactivated, buffering until activation",
			slog.String("topic", e.topic))
	}

	err := e.buf.Enqueue(env)

	// The notification fires even when the overflow policy discarded a
	// message: occupancy may still be positive and the waiter must
	// re-check.
	e.notifier.Trigger()

	if err != nil {
		e.logger.Debug("message not accepted by buffer",
			slog.String("topic", e.topic),
			slog.String("error", err.Error()))
		return err
	}

	return nil
}

// IsReady reports whether the wait set should dispatch this endpoint's
// callback. A deactivated or closed endpoint reports false regardless of
// occupancy.
func (e *Endpoint[T]) IsReady() bool {
	e.mu.Lock()
	gated := !e.activated || e.closed
	e.mu.Unlock()

	if gated {
		return false
	}
	return e.buf.HasPending()
}

// TakeNext removes and returns the oldest pending envelope. ErrEmpty is the
// normal outcome when a wake raced with an earlier drain. Draining remains
// possible after Close.
func (e *Endpoint[T]) TakeNext() (buffer.Envelope[T], error) {
	return e.buf.Take()
}

// PreferredTakeMode reports the configured ownership preference so the
// publish path can pick the cheaper delivery entry point.
func (e *Endpoint[T]) PreferredTakeMode() buffer.Mode {
	return e.pref
}

// Activate opens the lifecycle gate: the endpoint becomes observable by the
// wait set again and the deactivation log suppression resets.
func (e *Endpoint[T]) Activate() {
	e.mu.Lock()
	e.activated = true
	e.deactivationSeen = false
	e.mu.Unlock()
}

// Deactivate closes the lifecycle gate. Deliveries keep buffering up to
// capacity; they are paused from dispatch, not lost.
func (e *Endpoint[T]) Deactivate() {
	e.mu.Lock()
	e.activated = false
	e.mu.Unlock()
}

// IsActivated reports the lifecycle gate state.
func (e *Endpoint[T]) IsActivated() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activated
}

// Close moves the endpoint to its terminal state: no further deliveries are
// accepted, though buffered messages may still be drained with TakeNext.
// A second Close returns ErrClosed.
func (e *Endpoint[T]) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.closed = true
	e.logger.Info("endpoint closed", slog.String("topic", e.topic))
	return nil
}

// Stats returns the owned buffer's activity counters.
func (e *Endpoint[T]) Stats() buffer.Stats {
	return e.buf.Stats()
}
