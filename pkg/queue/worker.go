package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// eventCleanupGrace is how long a finished run's progress events stay
// readable so live clients can catch the final snapshots.
const eventCleanupGrace = 60 * time.Second

// Worker is a single queue worker that polls for and processes runs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor RunExecutor
	registry RunRegistry
	events   *events.Publisher
	runs     *services.RunService
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of Pool used by Worker for cancel registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
// events may be nil (lifecycle broadcasting disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, registry RunRegistry, events *events.Publisher) *Worker {
	w := &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		registry:     registry,
		events:       events,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
	if client != nil {
		w.runs = services.NewRunService(client)
	}
	return w
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter). Runs parked in
	//    review still hold a worker, so they count.
	activeCount, err := w.client.TranslationRun.Query().
		Where(translationrun.StatusIn(translationrun.StatusProcessing, translationrun.StatusReview)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed", "project_path", run.ProjectPath)

	w.publishLifecycle(ctx, run.ID, string(translationrun.StatusProcessing), "claimed by "+w.id)

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create run context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for API-triggered cancellation
	w.registry.RegisterRun(run.ID, cancelRun)
	defer w.registry.UnregisterRun(run.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, run.ID)

	// 6. Execute run
	result := w.normalizeResult(runCtx, w.executor.Execute(runCtx, run))

	// 7. Stop heartbeat before the terminal write so a late ticker cannot
	//    stamp a finished run.
	cancelHeartbeat()

	// 8. Write terminal status (use background context — run ctx may be cancelled)
	if err := w.finishRun(context.Background(), run.ID, result); err != nil {
		log.Error("Failed to write terminal run status", "error", err)
		return err
	}

	w.publishLifecycle(context.Background(), run.ID, string(result.Status), errDetail(result))

	// 9. Cleanup progress events after a grace period so clients receive the
	//    final snapshots before they are deleted.
	w.scheduleEventCleanup(run.ID)

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// claimNextRun atomically claims the next pending run using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.TranslationRun, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	run, err := tx.TranslationRun.Query().
		Where(translationrun.StatusEQ(translationrun.StatusPending)).
		Order(ent.Asc(translationrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	// Claim: flip to processing and stamp ownership. The fresh heartbeat
	// starts the orphan clock from now.
	now := time.Now()
	run, err = run.Update().
		SetStatus(translationrun.StatusProcessing).
		SetWorkerID(w.id).
		SetClaimedAt(now).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// normalizeResult synthesizes a terminal result when the executor returned
// nil or left the status empty, based on how the run context ended.
func (w *Worker) normalizeResult(runCtx context.Context, result *ExecutionResult) *ExecutionResult {
	if result == nil {
		result = &ExecutionResult{}
	}
	if result.Status != "" {
		return result
	}

	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Status = translationrun.StatusFailed
		result.Error = fmt.Errorf("run timed out after %v", w.config.RunTimeout)
	case errors.Is(runCtx.Err(), context.Canceled):
		result.Status = translationrun.StatusCancelled
		if result.Error == nil {
			result.Error = context.Canceled
		}
	default:
		result.Status = translationrun.StatusFailed
		if result.Error == nil {
			result.Error = fmt.Errorf("executor returned no result")
		}
	}
	return result
}

// finishRun maps the execution result onto the run row's terminal status.
// RunService treats a second terminal write as a no-op, so crash-retry paths
// stay idempotent.
func (w *Worker) finishRun(ctx context.Context, runID string, result *ExecutionResult) error {
	switch result.Status {
	case translationrun.StatusCompleted:
		return w.runs.MarkCompleted(ctx, runID)
	case translationrun.StatusCancelled:
		return w.runs.MarkCancelled(ctx, runID)
	default:
		msg := "run failed"
		if result.Error != nil {
			msg = result.Error.Error()
		}
		return w.runs.MarkFailed(ctx, runID, msg)
	}
}

// runHeartbeat periodically stamps heartbeat_at for orphan detection. The
// service-side worker_id guard means this worker cannot keep alive a run
// that was requeued and claimed elsewhere.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.runs.Heartbeat(ctx, runID, w.id); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// publishLifecycle broadcasts a run status transition. Non-blocking: errors are logged.
func (w *Worker) publishLifecycle(ctx context.Context, runID, status, detail string) {
	if w.events == nil {
		return
	}
	if err := w.events.PublishRunLifecycle(ctx, runID, status, detail); err != nil {
		slog.Warn("Failed to publish run lifecycle",
			"run_id", runID, "status", status, "error", err)
	}
}

// scheduleEventCleanup schedules deletion of the run's progress events after
// the grace period. The run row and its atoms remain the durable record.
func (w *Worker) scheduleEventCleanup(runID string) {
	time.AfterFunc(eventCleanupGrace, func() {
		if err := w.cleanupRunEvents(context.Background(), runID); err != nil {
			slog.Warn("Failed to cleanup run events after grace period",
				"run_id", runID, "error", err)
		}
	})
}

// cleanupRunEvents removes the Event rows used for live progress delivery.
func (w *Worker) cleanupRunEvents(ctx context.Context, runID string) error {
	_, err := w.client.Event.Delete().
		Where(event.RunIDEQ(runID)).
		Exec(ctx)
	return err
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}

func errDetail(result *ExecutionResult) string {
	if result.Error != nil {
		return result.Error.Error()
	}
	return ""
}
