package delivery_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/intraproc/core/buffer"
	"github.com/dmitrymomot/intraproc/core/delivery"
	"github.com/dmitrymomot/intraproc/core/endpoint"
	"github.com/dmitrymomot/intraproc/core/qos"
	"github.com/dmitrymomot/intraproc/pkg/guardcond"
)

type reading struct {
	Seq int
}

func newEndpoint(t *testing.T, topic string, pref buffer.Mode, opts ...endpoint.Option) *endpoint.Endpoint[reading] {
	t.Helper()

	profile := qos.Profile{History: qos.KeepLast, Depth: 16, Reliability: qos.Reliable}
	ep, err := endpoint.New[reading](topic, profile, pref, guardcond.New(), opts...)
	require.NoError(t, err)
	return ep
}

func takeOne(t *testing.T, ep *endpoint.Endpoint[reading]) buffer.Envelope[reading] {
	t.Helper()

	env, err := ep.TakeNext()
	require.NoError(t, err)
	return env
}

func TestRegisterUnregister(t *testing.T) {
	t.Parallel()

	hub := delivery.NewHub[reading]()
	assert.Equal(t, 0, hub.Subscriptions("a"))

	ep := newEndpoint(t, "a", buffer.ModeShared)
	id := hub.Register(ep)
	assert.Equal(t, ep.ID(), id)
	assert.Equal(t, 1, hub.Subscriptions("a"))

	hub.Unregister(id)
	assert.Equal(t, 0, hub.Subscriptions("a"))

	// Unknown ids are ignored.
	hub.Unregister("nope")
}

func TestPublishShared(t *testing.T) {
	t.Parallel()

	t.Run("shared-preferring endpoints share one payload", func(t *testing.T) {
		t.Parallel()

		hub := delivery.NewHub[reading]()
		first := newEndpoint(t, "a", buffer.ModeShared)
		second := newEndpoint(t, "a", buffer.ModeShared)
		hub.Register(first)
		hub.Register(second)

		msg := &reading{Seq: 1}
		assert.Equal(t, 2, hub.PublishShared("a", msg))

		env := takeOne(t, first)
		assert.Equal(t, buffer.Shared, env.Kind())
		assert.Same(t, msg, env.Message())

		env = takeOne(t, second)
		assert.Same(t, msg, env.Message())
	})

	t.Run("exclusively-owning endpoint gets its own copy", func(t *testing.T) {
		t.Parallel()

		hub := delivery.NewHub[reading]()
		ep := newEndpoint(t, "a", buffer.ModeUnique)
		hub.Register(ep)

		msg := &reading{Seq: 7}
		assert.Equal(t, 1, hub.PublishShared("a", msg))

		env := takeOne(t, ep)
		assert.Equal(t, buffer.Unique, env.Kind())
		assert.NotSame(t, msg, env.Message())
		assert.Equal(t, 7, env.Message().Seq)
	})

	t.Run("unknown topic delivers nothing", func(t *testing.T) {
		t.Parallel()

		hub := delivery.NewHub[reading]()
		assert.Equal(t, 0, hub.PublishShared("nope", &reading{}))
	})
}

func TestPublishUnique(t *testing.T) {
	t.Parallel()

	t.Run("single exclusive endpoint moves the payload without copy", func(t *testing.T) {
		t.Parallel()

		hub := delivery.NewHub[reading]()
		ep := newEndpoint(t, "a", buffer.ModeUnique)
		hub.Register(ep)

		msg := &reading{Seq: 3}
		assert.Equal(t, 1, hub.PublishUnique("a", msg))

		env := takeOne(t, ep)
		assert.Equal(t, buffer.Unique, env.Kind())
		assert.Same(t, msg, env.Message())
	})

	t.Run("last of several exclusive endpoints receives the original", func(t *testing.T) {
		t.Parallel()

		hub := delivery.NewHub[reading]()
		first := newEndpoint(t, "a", buffer.ModeUnique)
		second := newEndpoint(t, "a", buffer.ModeUnique)
		hub.Register(first)
		hub.Register(second)

		msg := &reading{Seq: 5}
		assert.Equal(t, 2, hub.PublishUnique("a", msg))

		env := takeOne(t, first)
		assert.NotSame(t, msg, env.Message())
		assert.Equal(t, 5, env.Message().Seq)

		env = takeOne(t, second)
		assert.Same(t, msg, env.Message())
	})

	t.Run("mixed preferences share the original and copy for exclusive takers", func(t *testing.T) {
		t.Parallel()

		hub := delivery.NewHub[reading]()
		sharedEp := newEndpoint(t, "a", buffer.ModeShared)
		uniqueEp := newEndpoint(t, "a", buffer.ModeUnique)
		hub.Register(sharedEp)
		hub.Register(uniqueEp)

		msg := &reading{Seq: 9}
		assert.Equal(t, 2, hub.PublishUnique("a", msg))

		env := takeOne(t, sharedEp)
		assert.Equal(t, buffer.Shared, env.Kind())
		assert.Same(t, msg, env.Message())

		env = takeOne(t, uniqueEp)
		assert.Equal(t, buffer.Unique, env.Kind())
		assert.NotSame(t, msg, env.Message())
		assert.Equal(t, 9, env.Message().Seq)
	})
}

func TestPublishContinuesPastRejections(t *testing.T) {
	t.Parallel()

	hub := delivery.NewHub[reading]()

	full := newEndpoint(t, "a", buffer.ModeShared,
		endpoint.WithBufferConfig(buffer.Config{Capacity: 1, Overflow: buffer.RejectNewest, Mode: buffer.ModeShared}))
	open := newEndpoint(t, "a", buffer.ModeShared)
	hub.Register(full)
	hub.Register(open)

	require.NoError(t, full.DeliverShared(&reading{Seq: 0}))

	// The full endpoint rejects, the open one still receives.
	assert.Equal(t, 1, hub.PublishShared("a", &reading{Seq: 1}))

	env := takeOne(t, open)
	assert.Equal(t, 1, env.Message().Seq)
}

func TestConcurrentPublishes(t *testing.T) {
	defer goleak.VerifyNone(t)

	const publishers = 8
	const perPublisher = 50

	hub := delivery.NewHub[reading]()
	profile := qos.Profile{History: qos.KeepLast, Depth: publishers * perPublisher, Reliability: qos.Reliable}
	ep, err := endpoint.New[reading]("a", profile, buffer.ModeShared, guardcond.New())
	require.NoError(t, err)
	hub.Register(ep)

	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				assert.Equal(t, 1, hub.PublishUnique("a", &reading{Seq: p*perPublisher + i}))
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for ep.IsReady() {
		env, err := ep.TakeNext()
		require.NoError(t, err)
		require.False(t, seen[env.Message().Seq])
		seen[env.Message().Seq] = true
	}
	assert.Len(t, seen, publishers*perPublisher)
}
