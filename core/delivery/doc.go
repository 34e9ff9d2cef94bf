// Package delivery implements the intra-process publish path: a registry
// matching publishers to subscription endpoints living in the same process,
// so messages are handed off without serialization or transport.
//
// The Hub consults each endpoint's preferred take mode to pick the cheaper
// delivery entry point. A payload published to a single exclusively-owning
// endpoint moves without any copy; fan-out to several endpoints shares one
// read-only payload with the shared-preferring ones and hands exclusive
// shallow copies to the rest.
//
// # Basic Usage
//
//	hub := delivery.NewHub[Reading]()
//
//	id := hub.Register(ep)
//	defer hub.Unregister(id)
//
//	// Publisher side:
//	n := hub.PublishUnique("sensor/temperature", &Reading{Value: 42})
//	// n endpoints accepted the message
//
// Per-endpoint rejections (full buffers, closed endpoints) do not stop
// fan-out; they are the declared retention policy in action.
package delivery
