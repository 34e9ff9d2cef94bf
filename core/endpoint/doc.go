// Package endpoint implements the subscription-side receiver for
// intra-process message delivery. Each Endpoint owns exactly one bounded
// message buffer and sits between the publish path and the wait set: the
// publish path hands messages in through DeliverShared or DeliverUnique,
// and the executor discovers pending work through IsReady and drains it
// with TakeNext.
//
// After every delivery the endpoint triggers its Notifier, even when the
// buffer's overflow policy discarded a message: occupancy may still be
// positive, and the waiting consumer must be given the chance to re-check.
// Multiple deliveries before a wake collapse into a single wake cycle,
// which is correct because consumers drain the buffer per wake.
//
// # Lifecycle
//
// An endpoint is Ready from construction until Close. A lifecycle-managed
// endpoint can additionally be deactivated: while deactivated, IsReady
// reports false regardless of occupancy, but deliveries keep buffering up
// to capacity — delivery is paused, not lost.
//
// # Basic Usage
//
//	guard := guardcond.New()
//	ep, err := endpoint.New[Reading]("sensor/temperature", profile, buffer.ModeShared, guard,
//		endpoint.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer ep.Close()
//
//	// Publish path:
//	_ = ep.DeliverUnique(&Reading{Value: 42})
//
//	// Executor loop:
//	for ep.IsReady() {
//		env, err := ep.TakeNext()
//		if errors.Is(err, buffer.ErrEmpty) {
//			break
//		}
//		callback(env)
//	}
package endpoint
