// Package intraproc provides the building blocks for zero-serialization
// message delivery between publishers and subscriptions living in the same
// process. Payloads move by handle through ownership-tagged envelopes and
// bounded per-subscription buffers, while a cross-thread notification keeps
// the hand-off correctly observable by executor wait sets.
//
// # Package Organization
//
// The module is organized into core components and standalone utilities:
//
//	github.com/dmitrymomot/intraproc/core/qos      - Queueing configuration (history, depth, reliability) with env loading
//	github.com/dmitrymomot/intraproc/core/buffer   - Ownership envelopes and the bounded FIFO message buffer
//	github.com/dmitrymomot/intraproc/core/endpoint - Subscription-side receiver with lifecycle gate and wake integration
//	github.com/dmitrymomot/intraproc/core/delivery - Publish-path registry matching publishers to in-process endpoints
//	github.com/dmitrymomot/intraproc/pkg/guardcond - One-shot broadcast condition for waking executor wait sets
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/intraproc/core/buffer
//	go doc -all github.com/dmitrymomot/intraproc/core/endpoint
//
// # Data Flow
//
// A publisher hands a payload to the delivery hub, which wraps it in the
// cheapest correct envelope for each matching endpoint. The endpoint
// enqueues it into its bounded buffer and triggers the subscription's
// notification primitive. The executor's wait set wakes, confirms readiness
// through the endpoint, and drains pending envelopes into the subscriber
// callback.
package intraproc
