package delivery

import (
	"io"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/intraproc/core/buffer"
	"github.com/dmitrymomot/intraproc/core/endpoint"
)

// Hub routes intra-process publishes to the endpoints subscribed to a
// topic. It does not own the endpoints: closing or draining them remains
// their subscription's responsibility.
type Hub[T any] struct {
	mu     sync.RWMutex
	topics map[string][]*endpoint.Endpoint[T]
	logger *slog.Logger
}

// Option configures a Hub.
type Option func(*hubSettings)

type hubSettings struct {
	logger *slog.Logger
}

// WithLogger configures structured logging for the hub.
// Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *hubSettings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHub creates an empty registry.
//
// Example:
//
//	hub := delivery.NewHub[Reading](delivery.WithLogger(logger))
func NewHub[T any](opts ...Option) *Hub[T] {
	set := hubSettings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&set)
	}

	return &Hub[T]{
		topics: make(map[string][]*endpoint.Endpoint[T]),
		logger: set.logger,
	}
}

// Register adds an endpoint under its topic and returns its instance id,
// used later for Unregister.
func (h *Hub[T]) Register(ep *endpoint.Endpoint[T]) string {
	h.mu.Lock()
	h.topics[ep.Topic()] = append(h.topics[ep.Topic()], ep)
	h.mu.Unlock()

	h.logger.Debug("endpoint registered",
		slog.String("topic", ep.Topic()),
		slog.String("endpoint_id", ep.ID()))
	return ep.ID()
}

// Unregister removes the endpoint with the given instance id. Unknown ids
// are ignored.
func (h *Hub[T]) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, eps := range h.topics {
		for i, ep := range eps {
			if ep.ID() != id {
				continue
			}
			h.topics[topic] = append(eps[:i:i], eps[i+1:]...)
			if len(h.topics[topic]) == 0 {
				delete(h.topics, topic)
			}
			return
		}
	}
}

// Subscriptions reports how many endpoints are registered for a topic; the
// publish side uses it to decide whether an intra-process hand-off applies.
func (h *Hub[T]) Subscriptions(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// PublishShared fans a shared read-only payload out to every endpoint on
// the topic. Endpoints preferring exclusive ownership receive their own
// shallow copy instead, so no holder of the shared payload can mutate it.
// Returns the number of endpoints that accepted the message.
func (h *Hub[T]) PublishShared(topic string, msg *T) int {
	shared, unique := h.split(topic)

	delivered := 0
	for _, ep := range shared {
		delivered += h.deliverShared(ep, msg)
	}
	for _, ep := range unique {
		cp := *msg
		delivered += h.deliverUnique(ep, &cp)
	}
	return delivered
}

// PublishUnique fans an exclusively owned payload out to every endpoint on
// the topic, copying as little as possible:
//
//   - one exclusively-owning endpoint and nobody else: the payload moves,
//     no copy at all;
//   - several exclusively-owning endpoints: each gets a shallow copy except
//     the last, which receives the original;
//   - shared-preferring endpoints present: they share the original
//     read-only, and every exclusively-owning endpoint gets a copy.
//
// Returns the number of endpoints that accepted the message.
func (h *Hub[T]) PublishUnique(topic string, msg *T) int {
	shared, unique := h.split(topic)

	delivered := 0
	if len(shared) > 0 {
		for _, ep := range shared {
			delivered += h.deliverShared(ep, msg)
		}
		for _, ep := range unique {
			cp := *msg
			delivered += h.deliverUnique(ep, &cp)
		}
		return delivered
	}

	for i, ep := range unique {
		if i == len(unique)-1 {
			delivered += h.deliverUnique(ep, msg)
			continue
		}
		cp := *msg
		delivered += h.deliverUnique(ep, &cp)
	}
	return delivered
}

// split snapshots the topic's endpoints grouped by take-mode preference so
// delivery happens outside the registry lock.
func (h *Hub[T]) split(topic string) (shared, unique []*endpoint.Endpoint[T]) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ep := range h.topics[topic] {
		if ep.PreferredTakeMode() == buffer.ModeUnique {
			unique = append(unique, ep)
		} else {
			shared = append(shared, ep)
		}
	}
	return shared, unique
}

func (h *Hub[T]) deliverShared(ep *endpoint.Endpoint[T], msg *T) int {
	if err := ep.DeliverShared(msg); err != nil {
		h.logDeliveryError(ep, err)
		return 0
	}
	return 1
}

func (h *Hub[T]) deliverUnique(ep *endpoint.Endpoint[T], msg *T) int {
	if err := ep.DeliverUnique(msg); err != nil {
		h.logDeliveryError(ep, err)
		return 0
	}
	return 1
}

func (h *Hub[T]) logDeliveryError(ep *endpoint.Endpoint[T], err error) {
	h.logger.Debug("endpoint did not accept message",
		slog.String("topic", ep.Topic()),
		slog.String("endpoint_id", ep.ID()),
		slog.String("error", err.Error()))
}
