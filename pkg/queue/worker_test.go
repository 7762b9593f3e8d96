package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              30 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Second,
		HeartbeatInterval:       15 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 1 * time.Second
	cfg.PollIntervalJitter = 500 * time.Millisecond

	worker := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	// Poll interval should stay within [base-jitter, base+jitter]
	for i := 0; i < 100; i++ {
		interval := worker.pollInterval()
		assert.GreaterOrEqual(t, interval, 500*time.Millisecond)
		assert.LessOrEqual(t, interval, 1500*time.Millisecond)
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollInterval = 2 * time.Second
	cfg.PollIntervalJitter = 0

	worker := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	assert.Equal(t, 2*time.Second, worker.pollInterval())
}

func TestWorkerHealth(t *testing.T) {
	worker := NewWorker("test-worker", "test-pod", nil, testQueueConfig(), nil, nil, nil)

	// Initially idle
	health := worker.Health()
	assert.Equal(t, "test-worker", health.ID)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Empty(t, health.CurrentRunID)
	assert.Equal(t, int64(0), health.RunsProcessed)

	// Simulate working state
	worker.setStatus(WorkerStatusWorking, "run-123")

	health = worker.Health()
	assert.Equal(t, string(WorkerStatusWorking), health.Status)
	assert.Equal(t, "run-123", health.CurrentRunID)

	// Back to idle clears the current run
	worker.setStatus(WorkerStatusIdle, "")

	health = worker.Health()
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Empty(t, health.CurrentRunID)
}

func TestWorkerNormalizeResult(t *testing.T) {
	worker := NewWorker("test-worker", "test-pod", nil, testQueueConfig(), nil, nil, nil)

	t.Run("explicit status passes through", func(t *testing.T) {
		in := &ExecutionResult{Status: translationrun.StatusCompleted}
		out := worker.normalizeResult(context.Background(), in)
		assert.Equal(t, translationrun.StatusCompleted, out.Status)
		assert.NoError(t, out.Error)
	})

	t.Run("missing result on live context is a failure", func(t *testing.T) {
		out := worker.normalizeResult(context.Background(), nil)
		assert.Equal(t, translationrun.StatusFailed, out.Status)
		require.Error(t, out.Error)
		assert.Contains(t, out.Error.Error(), "no result")
	})

	t.Run("missing status after cancellation maps to cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out := worker.normalizeResult(ctx, &ExecutionResult{})
		assert.Equal(t, translationrun.StatusCancelled, out.Status)
		assert.ErrorIs(t, out.Error, context.Canceled)
	})

	t.Run("missing status after timeout maps to failed", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		out := worker.normalizeResult(ctx, nil)
		assert.Equal(t, translationrun.StatusFailed, out.Status)
		require.Error(t, out.Error)
		assert.Contains(t, out.Error.Error(), "timed out")
	})
}

func TestErrDetail(t *testing.T) {
	assert.Empty(t, errDetail(&ExecutionResult{Status: translationrun.StatusCompleted}))

	failed := &ExecutionResult{Status: translationrun.StatusFailed, Error: assert.AnError}
	assert.Equal(t, assert.AnError.Error(), errDetail(failed))
}
