package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/config"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

// createTestRun enqueues a pending run directly through the ent client.
func createTestRun(ctx context.Context, t *testing.T, client *ent.Client) *ent.TranslationRun {
	t.Helper()
	run, err := client.TranslationRun.Create().
		SetID(uuid.New().String()).
		SetProjectPath("/data/projects/novel.json").
		SetOutputPath("/data/output/novel").
		SetStatus(translationrun.StatusPending).
		Save(ctx)
	require.NoError(t, err)
	return run
}

// intTestQueueConfig returns queue settings tightened for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentRuns:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		RunTimeout:              30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// awaitCondition polls condition until it returns true or the timeout
// elapses, failing the test with msg on timeout.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %v: %s", timeout, msg)
}

func TestForUpdateSkipLockedClaiming(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	run := createTestRun(ctx, t, client.Client)

	worker := NewWorker("test-pod-worker-0", "test-pod", client.Client, intTestQueueConfig(), nil, nil, nil)

	claimed, err := worker.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, run.ID, claimed.ID)
	assert.Equal(t, translationrun.StatusProcessing, claimed.Status)
	require.NotNil(t, claimed.WorkerID)
	assert.Equal(t, "test-pod-worker-0", *claimed.WorkerID)
	assert.NotNil(t, claimed.ClaimedAt)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.HeartbeatAt)

	// Queue is drained
	_, err = worker.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
}

func TestConcurrentClaimsDistinctRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	const runCount = 5
	for i := 0; i < runCount; i++ {
		createTestRun(ctx, t, client.Client)
	}

	var (
		mu      sync.Mutex
		claimed = make(map[string]string) // run_id → worker_id
	)
	errCh := make(chan error, runCount)

	// Five workers race to drain the queue. SKIP LOCKED must hand every
	// run to exactly one of them.
	var wg sync.WaitGroup
	for i := 0; i < runCount; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			worker := NewWorker(fmt.Sprintf("test-pod-worker-%d", i), "test-pod", client.Client, intTestQueueConfig(), nil, nil, nil)
			for {
				run, err := worker.claimNextRun(ctx)
				if errors.Is(err, ErrNoRunsAvailable) {
					return
				}
				if err != nil {
					errCh <- err
					return
				}
				mu.Lock()
				if prev, dup := claimed[run.ID]; dup {
					errCh <- fmt.Errorf("run %s claimed twice: by %s and %s", run.ID, prev, worker.id)
					mu.Unlock()
					return
				}
				claimed[run.ID] = worker.id
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	assert.Len(t, claimed, runCount)
}

func TestOrphanRequeue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := intTestQueueConfig()
	stale := time.Now().Add(-time.Minute)

	// Processing run whose pod died
	orphan := createTestRun(ctx, t, client.Client)
	_, err := client.TranslationRun.UpdateOneID(orphan.ID).
		SetStatus(translationrun.StatusProcessing).
		SetWorkerID("dead-pod-worker-0").
		SetClaimedAt(stale).
		SetHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	// Runs parked in review are orphaned the same way
	parked := createTestRun(ctx, t, client.Client)
	_, err = client.TranslationRun.UpdateOneID(parked.ID).
		SetStatus(translationrun.StatusReview).
		SetWorkerID("dead-pod-worker-1").
		SetClaimedAt(stale).
		SetHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	// Healthy run with a fresh heartbeat must not be touched
	healthy := createTestRun(ctx, t, client.Client)
	_, err = client.TranslationRun.UpdateOneID(healthy.ID).
		SetStatus(translationrun.StatusProcessing).
		SetWorkerID("live-pod-worker-0").
		SetClaimedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := &Pool{
		podID:  "test-pod",
		client: client.Client,
		config: cfg,
	}
	require.NoError(t, pool.requeueOrphans(ctx))

	for _, id := range []string{orphan.ID, parked.ID} {
		requeued, err := client.TranslationRun.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusPending, requeued.Status)
		assert.Nil(t, requeued.WorkerID)
		assert.Nil(t, requeued.ClaimedAt)
		assert.Nil(t, requeued.HeartbeatAt)
	}

	untouched, err := client.TranslationRun.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, translationrun.StatusProcessing, untouched.Status)

	pool.orphans.mu.Lock()
	recovered := pool.orphans.orphansRecovered
	pool.orphans.mu.Unlock()
	assert.Equal(t, 2, recovered)

	// A worker can immediately reclaim a requeued run and resume it
	worker := NewWorker("test-pod-worker-0", "test-pod", client.Client, cfg, nil, nil, nil)
	reclaimed, err := worker.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Contains(t, []string{orphan.ID, parked.ID}, reclaimed.ID)
}

func TestStartupOrphanRequeue(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Three runs claimed by a previous incarnation of this pod. The
	// heartbeats are fresh: startup recovery must not wait out the
	// orphan threshold.
	ownIDs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		run := createTestRun(ctx, t, client.Client)
		_, err := client.TranslationRun.UpdateOneID(run.ID).
			SetStatus(translationrun.StatusProcessing).
			SetWorkerID(fmt.Sprintf("api-pod-worker-%d", i)).
			SetClaimedAt(time.Now()).
			SetHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
		ownIDs = append(ownIDs, run.ID)
	}

	// One run claimed by a different pod
	other := createTestRun(ctx, t, client.Client)
	_, err := client.TranslationRun.UpdateOneID(other.ID).
		SetStatus(translationrun.StatusProcessing).
		SetWorkerID("other-pod-worker-0").
		SetClaimedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RequeueStartupOrphans(ctx, client.Client, "api-pod"))

	for _, id := range ownIDs {
		run, err := client.TranslationRun.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusPending, run.Status)
		assert.Nil(t, run.WorkerID)
	}

	otherRun, err := client.TranslationRun.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, translationrun.StatusProcessing, otherRun.Status)
	require.NotNil(t, otherRun.WorkerID)
	assert.Equal(t, "other-pod-worker-0", *otherRun.WorkerID)
}

// mockExecutor is a scripted RunExecutor for pool-level tests. When
// releaseCh is set, Execute blocks until the channel is closed or the run
// context ends.
type mockExecutor struct {
	processed  atomic.Int64
	runs       sync.Map
	inProgress atomic.Int64
	releaseCh  chan struct{}
}

func (m *mockExecutor) Execute(ctx context.Context, run *ent.TranslationRun) *ExecutionResult {
	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)
	m.runs.Store(run.ID, true)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{Status: translationrun.StatusCancelled, Error: ctx.Err()}
		}
	}

	m.processed.Add(1)
	return &ExecutionResult{Status: translationrun.StatusCompleted}
}

func TestPoolEndToEndWithMockExecutor(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := intTestQueueConfig()

	const runCount = 3
	for i := 0; i < runCount; i++ {
		createTestRun(ctx, t, client.Client)
	}

	executor := &mockExecutor{}
	pool := NewPool("test-pod", client.Client, cfg, executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "all runs processed", func() bool {
		return executor.processed.Load() == runCount
	})

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "all runs marked completed", func() bool {
		n, err := client.TranslationRun.Query().
			Where(translationrun.StatusEQ(translationrun.StatusCompleted)).
			Count(ctx)
		return err == nil && n == runCount
	})

	// Completed runs carry a completion timestamp and no heartbeat
	runs, err := client.TranslationRun.Query().All(ctx)
	require.NoError(t, err)
	for _, run := range runs {
		assert.NotNil(t, run.CompletedAt)
		assert.Nil(t, run.HeartbeatAt)
	}

	// Every run went through the executor exactly once
	seen := 0
	executor.runs.Range(func(_, _ any) bool {
		seen++
		return true
	})
	assert.Equal(t, runCount, seen)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, cfg.WorkerCount, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)
}

func TestCapacityLimits(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 3
	cfg.MaxConcurrentRuns = 2

	// Fill the pool to capacity first
	for i := 0; i < 2; i++ {
		createTestRun(ctx, t, client.Client)
	}

	executor := &mockExecutor{releaseCh: make(chan struct{})}
	pool := NewPool("test-pod", client.Client, cfg, executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "pool at capacity", func() bool {
		return executor.inProgress.Load() == 2
	})

	// More work arrives while the pool is saturated; the free worker must
	// park on the capacity check instead of claiming.
	for i := 0; i < 2; i++ {
		createTestRun(ctx, t, client.Client)
	}

	time.Sleep(400 * time.Millisecond) // several poll cycles
	assert.Equal(t, int64(2), executor.inProgress.Load())

	pending, err := client.TranslationRun.Query().
		Where(translationrun.StatusEQ(translationrun.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	// Releasing the gate drains the backlog
	close(executor.releaseCh)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "backlog drained", func() bool {
		return executor.processed.Load() == 4
	})
}

func TestCancelActiveRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := intTestQueueConfig()
	cfg.WorkerCount = 1

	run := createTestRun(ctx, t, client.Client)

	executor := &mockExecutor{releaseCh: make(chan struct{})}
	pool := NewPool("test-pod", client.Client, cfg, executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "run claimed", func() bool {
		return executor.inProgress.Load() == 1
	})

	require.True(t, pool.CancelRun(run.ID))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "run marked cancelled", func() bool {
		got, err := client.TranslationRun.Get(ctx, run.ID)
		return err == nil && got.Status == translationrun.StatusCancelled
	})

	// Cancelling an unknown run reports not found on this pod
	assert.False(t, pool.CancelRun("no-such-run"))
}

func TestCleanupRunEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	worker := NewWorker("test-pod-worker-0", "test-pod", client.Client, intTestQueueConfig(), nil, nil, nil)

	_, err := client.Event.Create().
		SetRunID("run-1").
		SetChannel("task_updates").
		SetPayload(json.RawMessage(`{"type":"task.update"}`)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetRunID("run-2").
		SetChannel("task_updates").
		SetPayload(json.RawMessage(`{"type":"task.update"}`)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, worker.cleanupRunEvents(ctx, "run-1"))

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "run-2", remaining[0].RunID)
}

func TestRetentionSweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := &config.RetentionConfig{
		RunRetentionDays: 30,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}

	// Terminal run past the retention window
	old := createTestRun(ctx, t, client.Client)
	_, err := client.TranslationRun.UpdateOneID(old.ID).
		SetStatus(translationrun.StatusCompleted).
		SetCompletedAt(time.Now().AddDate(0, 0, -40)).
		Save(ctx)
	require.NoError(t, err)

	// Terminal run inside the window
	recent := createTestRun(ctx, t, client.Client)
	_, err = client.TranslationRun.UpdateOneID(recent.ID).
		SetStatus(translationrun.StatusCompleted).
		SetCompletedAt(time.Now().AddDate(0, 0, -1)).
		Save(ctx)
	require.NoError(t, err)

	// Non-terminal runs are never swept regardless of age
	queued := createTestRun(ctx, t, client.Client)

	_, err = client.Event.Create().
		SetRunID(old.ID).
		SetChannel("task_updates").
		SetPayload(json.RawMessage(`{}`)).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetRunID(recent.ID).
		SetChannel("task_updates").
		SetPayload(json.RawMessage(`{}`)).
		Save(ctx)
	require.NoError(t, err)

	retention := NewRetention(cfg, client.Client)
	retention.sweepRuns(ctx)
	retention.sweepEvents(ctx)

	_, err = client.TranslationRun.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err))

	_, err = client.TranslationRun.Get(ctx, recent.ID)
	assert.NoError(t, err)

	_, err = client.TranslationRun.Get(ctx, queued.ID)
	assert.NoError(t, err)

	events, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, recent.ID, events[0].RunID)
}
