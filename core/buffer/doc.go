// Package buffer implements the bounded message buffer that backs
// intra-process subscriptions. Messages move through it wrapped in an
// ownership-tagged Envelope, so a payload handed off exclusively by its
// producer is never copied, while a payload addressed to several
// subscriptions is shared read-only among them.
//
// # Core Components
//
// Envelope wraps a message payload with its ownership tag: Shared payloads
// are immutable and may be held by any number of readers; Unique payloads
// transfer completely to whichever consumer takes them. A buffer whose mode
// requires fan-out promotes a Unique envelope to Shared exactly once, before
// any consumer sees it.
//
// Buffer is a fixed-capacity FIFO ring protected by a single mutex. Enqueue
// never blocks: a full buffer applies its overflow policy, either evicting
// the oldest undelivered message (DropOldest) or discarding the new one
// (RejectNewest, reported as ErrRejected). Exactly one consumer at a time is
// assumed per buffer; concurrent producers are fully supported.
//
// FromQoS is the factory mapping a queueing profile and an ownership
// preference onto a concrete buffer configuration.
//
// # Basic Usage
//
//	buf, err := buffer.FromQoS[Reading](profile, buffer.ModeShared)
//	if err != nil {
//		return err
//	}
//
//	// Producer side, any goroutine:
//	_ = buf.Enqueue(buffer.NewUnique(&Reading{Value: 42}))
//
//	// Consumer side, single goroutine:
//	for buf.HasPending() {
//		env, err := buf.Take()
//		if errors.Is(err, buffer.ErrEmpty) {
//			break // benign race with another wake cycle
//		}
//		handle(env.Message())
//	}
//
// Message loss under either overflow policy is the declared retention
// semantics in action, not a fault; it is observable through Stats.
package buffer
