package buffer

import (
	"fmt"

	"github.com/dmitrymomot/intraproc/core/qos"
)

// KeepAllCapacityLimit is the safety ceiling applied to keep_all history.
// The buffer stays finite so enqueue always completes in bounded time; once
// the ceiling is hit new messages are rejected rather than old ones evicted.
const KeepAllCapacityLimit = 4096

// ConfigFromQoS maps a queueing profile and an ownership preference onto a
// concrete buffer configuration. Total over every legal profile:
//
//   - keep_last(N) gets capacity N with DropOldest, keeping the most recent
//     N messages. When the profile declares that reliability shapes the drop
//     policy and the topic is reliable, RejectNewest is selected instead.
//   - keep_all gets KeepAllCapacityLimit with RejectNewest.
func ConfigFromQoS(profile qos.Profile, mode Mode) (Config, error) {
	if err := profile.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	cfg := Config{Mode: mode}

	switch profile.History {
	case qos.KeepLast:
		cfg.Capacity = profile.Depth
		cfg.Overflow = DropOldest
		if profile.ReliabilityShapesDrop && profile.Reliability == qos.Reliable {
			cfg.Overflow = RejectNewest
		}
	case qos.KeepAll:
		cfg.Capacity = KeepAllCapacityLimit
		cfg.Overflow = RejectNewest
	}

	return cfg, nil
}

// FromQoS builds a buffer directly from a queueing profile.
//
// Example:
//
//	buf, err := buffer.FromQoS[Reading](profile, buffer.ModeUnique)
func FromQoS[T any](profile qos.Profile, mode Mode) (*Buffer[T], error) {
	cfg, err := ConfigFromQoS(profile, mode)
	if err != nil {
		return nil, err
	}
	return New[T](cfg)
}
