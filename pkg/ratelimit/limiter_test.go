package ratelimit

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimitedAdmitsImmediately(t *testing.T) {
	l := New(0, 0)
	require.True(t, l.Unlimited())

	done := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Acquire(context.Background(), 1000))
	}
	assert.Less(t, time.Since(done), time.Second)

	requests, tokens := l.InFlight()
	assert.Equal(t, 100, requests)
	assert.Equal(t, 100_000, tokens)
}

func TestRequestCeilingBlocksUntilWindowSlides(t *testing.T) {
	l := New(2, 0, WithWindow(150*time.Millisecond), WithPollInterval(5*time.Millisecond))

	require.NoError(t, l.Acquire(context.Background(), 0))
	require.NoError(t, l.Acquire(context.Background(), 0))

	start := time.Now()
	require.NoError(t, l.Acquire(context.Background(), 0))
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond,
		"third acquire should wait for the window to slide")
}

func TestTokenCeiling(t *testing.T) {
	t.Run("blocks when budget is spent", func(t *testing.T) {
		l := New(0, 100, WithWindow(150*time.Millisecond), WithPollInterval(5*time.Millisecond))
		require.NoError(t, l.Acquire(context.Background(), 80))

		start := time.Now()
		require.NoError(t, l.Acquire(context.Background(), 30))
		assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("oversize request is admitted into an empty window", func(t *testing.T) {
		l := New(0, 10, WithPollInterval(5*time.Millisecond))
		require.NoError(t, l.Acquire(context.Background(), 50))
	})
}

func TestHeadOfQueueGating(t *testing.T) {
	l := New(10, 0)

	first := l.enqueue()
	second := l.enqueue()

	assert.False(t, l.tryAdmit(second, 0), "later waiter must not overtake the head")
	assert.True(t, l.tryAdmit(first, 0))
	assert.True(t, l.tryAdmit(second, 0))
}

func TestAbandonedWaiterUnblocksQueue(t *testing.T) {
	l := New(10, 0)

	first := l.enqueue()
	second := l.enqueue()
	l.abandon(first)

	assert.True(t, l.tryAdmit(second, 0), "head should advance once the waiter ahead gives up")
}

func TestFirstComeFirstServed(t *testing.T) {
	l := New(1, 0, WithWindow(120*time.Millisecond), WithPollInterval(5*time.Millisecond))
	require.NoError(t, l.Acquire(context.Background(), 0))

	order := make(chan string, 2)
	started := make(chan struct{})

	go func() {
		close(started)
		_ = l.Acquire(context.Background(), 0)
		order <- "first"
	}()
	<-started
	time.Sleep(40 * time.Millisecond)
	go func() {
		_ = l.Acquire(context.Background(), 0)
		order <- "second"
	}()

	assert.Equal(t, "first", <-order)
	assert.Equal(t, "second", <-order)
}

func TestAcquireTimeout(t *testing.T) {
	l := New(1, 0,
		WithWindow(time.Hour),
		WithPollInterval(5*time.Millisecond),
		WithTimeout(40*time.Millisecond))

	require.NoError(t, l.Acquire(context.Background(), 0))
	err := l.Acquire(context.Background(), 0)
	assert.ErrorIs(t, err, ErrTimeout)

	requests, _ := l.InFlight()
	assert.Equal(t, 1, requests, "timed-out waiter must not consume a slot")
}

func TestStopCheckAbortsWait(t *testing.T) {
	var stopped atomic.Bool
	l := New(1, 0,
		WithWindow(time.Hour),
		WithPollInterval(5*time.Millisecond),
		WithStopCheck(stopped.Load))

	require.NoError(t, l.Acquire(context.Background(), 0))

	errCh := make(chan error, 1)
	go func() {
		errCh <- l.Acquire(context.Background(), 0)
	}()
	time.Sleep(20 * time.Millisecond)
	stopped.Store(true)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrStopped)
	case <-time.After(2 * time.Second):
		t.Fatal("acquire did not observe the stop flag")
	}
}

func TestContextCancellationAbortsWait(t *testing.T) {
	l := New(1, 0, WithWindow(time.Hour), WithPollInterval(5*time.Millisecond))
	require.NoError(t, l.Acquire(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- l.Acquire(ctx, 0)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("acquire did not observe cancellation")
	}
}

func TestInFlightPrunesExpiredUsage(t *testing.T) {
	l := New(0, 0, WithWindow(50*time.Millisecond))
	require.NoError(t, l.Acquire(context.Background(), 10))

	requests, tokens := l.InFlight()
	assert.Equal(t, 1, requests)
	assert.Equal(t, 10, tokens)

	time.Sleep(80 * time.Millisecond)
	requests, tokens = l.InFlight()
	assert.Zero(t, requests)
	assert.Zero(t, tokens)
}
