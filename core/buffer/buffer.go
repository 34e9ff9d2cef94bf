package buffer

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Overflow is the rule applied when a full buffer receives a new message.
// Fixed per buffer at construction.
type Overflow int

const (
	// DropOldest evicts the oldest undelivered message to make room,
	// keeping the most recent N. Suits state-like topics.
	DropOldest Overflow = iota
	// RejectNewest discards the incoming message instead, preserving a
	// strict relevance ordering of what was accepted first.
	RejectNewest
)

// String returns the text form of the overflow policy.
func (o Overflow) String() string {
	switch o {
	case DropOldest:
		return "drop_oldest"
	case RejectNewest:
		return "reject_newest"
	default:
		return fmt.Sprintf("overflow(%d)", int(o))
	}
}

// Mode reports which envelope kinds a buffer accepts and returns.
type Mode int

const (
	// ModeShared fans payloads out to multiple readers; Unique envelopes
	// are promoted on entry.
	ModeShared Mode = iota
	// ModeUnique hands each payload to exactly one taker.
	ModeUnique
	// ModeEither passes envelopes through with whatever tag they carry.
	ModeEither
)

// String returns the text form of the ownership mode.
func (m Mode) String() string {
	switch m {
	case ModeShared:
		return "shared"
	case ModeUnique:
		return "unique"
	case ModeEither:
		return "either"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Config describes a concrete buffer instance. Produced by FromQoS or
// assembled directly.
type Config struct {
	Capacity int
	Overflow Overflow
	Mode     Mode
}

// validate mirrors the construction-time contract: positive capacity and
// recognized enum values only.
func (c Config) validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidConfig, c.Capacity)
	}
	switch c.Overflow {
	case DropOldest, RejectNewest:
	default:
		return fmt.Errorf("%w: unknown overflow policy %d", ErrInvalidConfig, int(c.Overflow))
	}
	switch c.Mode {
	case ModeShared, ModeUnique, ModeEither:
	default:
		return fmt.Errorf("%w: unknown ownership mode %d", ErrInvalidConfig, int(c.Mode))
	}
	return nil
}

// Stats is a point-in-time snapshot of buffer activity counters.
type Stats struct {
	Enqueued int64 // accepted messages, including those later evicted
	Taken    int64 // messages handed to the consumer
	Dropped  int64 // oldest messages evicted under DropOldest
	Rejected int64 // new messages discarded under RejectNewest
	Promoted int64 // Unique envelopes promoted to Shared on entry
}

// Buffer is a fixed-capacity FIFO ring of envelopes. A single mutex guards
// Enqueue, Take and HasPending as a group, so no caller observes a torn
// state and every completed enqueue is visible to the next pending check.
// Lock hold time is O(1): envelopes are moved by handle, payloads are never
// copied under the lock.
//
// Any number of goroutines may enqueue concurrently; exactly one consumer
// at a time is assumed. The buffer is never resized after construction.
type Buffer[T any] struct {
	mu   sync.Mutex
	ring []Envelope[T]
	head int
	size int

	overflow Overflow
	mode     Mode

	enqueued atomic.Int64
	taken    atomic.Int64
	dropped  atomic.Int64
	rejected atomic.Int64
	promoted atomic.Int64
}

// New creates a buffer from an explicit configuration.
//
// Example:
//
//	buf, err := buffer.New[Reading](buffer.Config{
//		Capacity: 10,
//		Overflow: buffer.DropOldest,
//		Mode:     buffer.ModeShared,
//	})
func New[T any](cfg Config) (*Buffer[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Buffer[T]{
		ring:     make([]Envelope[T], cfg.Capacity),
		overflow: cfg.Overflow,
		mode:     cfg.Mode,
	}, nil
}

// Enqueue inserts an envelope at the tail. It never blocks: a full buffer
// applies the overflow policy instead, either evicting the head (DropOldest)
// or returning ErrRejected (RejectNewest). On a ModeShared buffer a Unique
// envelope is promoted before insertion, at most once per message and
// always before any consumer can read it.
func (b *Buffer[T]) Enqueue(env Envelope[T]) error {
	if b.mode == ModeShared && env.Kind() == Unique {
		env.Promote()
		b.promoted.Add(1)
	}

	b.mu.Lock()
	if b.size == len(b.ring) {
		if b.overflow == RejectNewest {
			b.mu.Unlock()
			b.rejected.Add(1)
			return ErrRejected
		}
		// Evict the oldest undelivered message to make room.
		b.ring[b.head] = Envelope[T]{}
		b.head = (b.head + 1) % len(b.ring)
		b.size--
		b.dropped.Add(1)
	}

	b.ring[(b.head+b.size)%len(b.ring)] = env
	b.size++
	b.mu.Unlock()

	b.enqueued.Add(1)
	return nil
}

// Take removes and returns the head envelope. ErrEmpty means no message is
// pending, which is a normal outcome when a wake raced with an earlier
// drain, not a fault.
func (b *Buffer[T]) Take() (Envelope[T], error) {
	b.mu.Lock()
	if b.size == 0 {
		b.mu.Unlock()
		return Envelope[T]{}, ErrEmpty
	}

	env := b.ring[b.head]
	b.ring[b.head] = Envelope[T]{} // release the slot's payload reference
	b.head = (b.head + 1) % len(b.ring)
	b.size--
	b.mu.Unlock()

	b.taken.Add(1)
	return env, nil
}

// HasPending reports whether at least one message is waiting. Safe to poll
// from any goroutine: an enqueue that completed before the caller was woken
// is guaranteed visible here.
func (b *Buffer[T]) HasPending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size > 0
}

// OwnershipMode reports which envelope kinds this buffer accepts and
// returns; the endpoint uses it to decide whether promotion applies.
func (b *Buffer[T]) OwnershipMode() Mode {
	return b.mode
}

// Len returns the current occupancy.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.ring)
}

// Overflow reports the overflow policy fixed at construction.
func (b *Buffer[T]) Overflow() Overflow {
	return b.overflow
}

// Stats returns a snapshot of the activity counters.
func (b *Buffer[T]) Stats() Stats {
	return Stats{
		Enqueued: b.enqueued.Load(),
		Taken:    b.taken.Load(),
		Dropped:  b.dropped.Load(),
		Rejected: b.rejected.Load(),
		Promoted: b.promoted.Load(),
	}
}
