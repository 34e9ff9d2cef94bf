package guardcond_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/intraproc/pkg/guardcond"
)

func TestTriggerWakesWaiter(t *testing.T) {
	t.Parallel()

	guard := guardcond.New()
	guard.Trigger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, guard.Wait(ctx))
}

func TestTriggersCollapse(t *testing.T) {
	t.Parallel()

	guard := guardcond.New()
	for i := 0; i < 100; i++ {
		guard.Trigger()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// One wake consumes all collapsed triggers; the guard is re-armed.
	require.NoError(t, guard.Wait(ctx))

	short, cancelShort := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelShort()
	assert.ErrorIs(t, guard.Wait(short), context.DeadlineExceeded)
}

func TestWaitHonorsContext(t *testing.T) {
	t.Parallel()

	guard := guardcond.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, guard.Wait(ctx), context.Canceled)
}

func TestConcurrentTriggers(t *testing.T) {
	defer goleak.VerifyNone(t)

	guard := guardcond.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guard.Trigger()
		}()
	}
	wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, guard.Wait(ctx))
}

func TestDoneSelect(t *testing.T) {
	t.Parallel()

	guard := guardcond.New()
	guard.Trigger()

	select {
	case <-guard.Done():
	case <-time.After(time.Second):
		t.Fatal("expected pending trigger on Done channel")
	}
}
