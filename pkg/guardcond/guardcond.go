// Package guardcond provides a one-shot broadcast condition for waking a
// single waiter from any number of goroutines. Trigger is non-blocking and
// safe under concurrent calls; any number of triggers raised before the
// waiter wakes collapse into a single wake cycle, which matches consumers
// that drain all pending work per wake rather than one item.
//
// The trigger is delivered through a capacity-1 channel, so the channel
// send/receive pair is the happens-before edge between the state change
// that motivated the trigger and the woken goroutine's observation of it.
//
// # Basic Usage
//
//	guard := guardcond.New()
//
//	// Producer side, any goroutine:
//	guard.Trigger()
//
//	// Waiter side:
//	if err := guard.Wait(ctx); err != nil {
//		return err // context cancelled
//	}
//	drainPendingWork()
//
// Select-based wait sets poll several guards at once:
//
//	select {
//	case <-guardA.Done():
//	case <-guardB.Done():
//	case <-ctx.Done():
//	}
package guardcond

import "context"

// Guard is a cross-thread wake signal. The zero value is not usable; create
// instances with New.
type Guard struct {
	ch chan struct{}
}

// New creates an untriggered guard.
func New() *Guard {
	return &Guard{ch: make(chan struct{}, 1)}
}

// Trigger raises the wake signal. Non-blocking and idempotent: if the
// signal is already raised, the call is a no-op.
func (g *Guard) Trigger() {
	select {
	case g.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until the guard is triggered or the context is done.
// Consuming the trigger re-arms the guard for the next cycle.
func (g *Guard) Wait(ctx context.Context) error {
	select {
	case <-g.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done exposes the trigger channel for select-based wait sets. Receiving
// from it consumes the trigger exactly like Wait.
func (g *Guard) Done() <-chan struct{} {
	return g.ch
}
