package qos

import "fmt"

// History controls how many undelivered messages a subscription retains.
type History int

const (
	// KeepLast retains the most recent Depth messages.
	KeepLast History = iota
	// KeepAll retains every message up to an implementation-defined ceiling.
	KeepAll
)

// String returns the canonical text form used in configuration.
func (h History) String() string {
	switch h {
	case KeepLast:
		return "keep_last"
	case KeepAll:
		return "keep_all"
	default:
		return fmt.Sprintf("history(%d)", int(h))
	}
}

// Reliability declares the delivery guarantee requested for a topic.
type Reliability int

const (
	// Reliable requests that every accepted message reach the consumer.
	Reliable Reliability = iota
	// BestEffort permits silent loss under pressure.
	BestEffort
)

// String returns the canonical text form used in configuration.
func (r Reliability) String() string {
	switch r {
	case Reliable:
		return "reliable"
	case BestEffort:
		return "best_effort"
	default:
		return fmt.Sprintf("reliability(%d)", int(r))
	}
}

// Profile is the queueing configuration consumed once at buffer construction.
// The zero value is a valid reliable keep-last profile once Depth is set.
type Profile struct {
	History     History
	Depth       int
	Reliability Reliability

	// ReliabilityShapesDrop lets the reliability level select the overflow
	// policy: a reliable keep-last buffer then rejects new messages instead
	// of evicting old ones.
	ReliabilityShapesDrop bool
}

// Validate reports whether the profile is a legal combination.
// KeepLast requires a positive depth; KeepAll ignores Depth entirely.
func (p Profile) Validate() error {
	switch p.History {
	case KeepLast:
		if p.Depth < 1 {
			return fmt.Errorf("%w: keep_last requires depth >= 1, got %d", ErrInvalidProfile, p.Depth)
		}
	case KeepAll:
		// Depth is ignored.
	default:
		return fmt.Errorf("%w: unknown history policy %d", ErrInvalidProfile, int(p.History))
	}

	switch p.Reliability {
	case Reliable, BestEffort:
	default:
		return fmt.Errorf("%w: unknown reliability %d", ErrInvalidProfile, int(p.Reliability))
	}

	return nil
}
