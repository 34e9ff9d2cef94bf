// Package qos provides the queueing configuration consumed by intra-process
// message buffers. A Profile describes how many undelivered messages a
// subscription retains (history and depth) and whether the declared
// reliability level shapes the buffer's overflow behavior.
//
// Profiles are read-only after construction: they are consumed exactly once,
// when a buffer is built, and never mutated afterwards.
//
// # Basic Usage
//
// Construct a profile directly:
//
//	profile := qos.Profile{
//		History:     qos.KeepLast,
//		Depth:       10,
//		Reliability: qos.Reliable,
//	}
//	if err := profile.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
// Or load one from environment variables:
//
//	profile, err := qos.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Environment Variables
//
// Load reads the following variables (a .env file is loaded automatically
// when present):
//
//	QOS_HISTORY                  - "keep_last" (default) or "keep_all"
//	QOS_DEPTH                    - retained message count for keep_last (default 10)
//	QOS_RELIABILITY              - "reliable" (default) or "best_effort"
//	QOS_RELIABILITY_SHAPES_DROP  - "true" to let reliability select the drop policy
package qos
