package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// orphanState tracks orphan recovery metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanRecovery periodically requeues runs whose owner stopped
// heartbeating. All pods run this independently — requeueing is idempotent.
func (p *Pool) runOrphanRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueOrphans(ctx); err != nil {
				slog.Error("Orphan recovery failed", "error", err)
			}
		}
	}
}

// requeueOrphans finds claimed runs with stale heartbeats and returns them
// to pending. Atoms written before the crash keep their status, so the next
// claim resumes the run instead of restarting it.
func (p *Pool) requeueOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.TranslationRun.Query().
		Where(
			translationrun.StatusIn(translationrun.StatusProcessing, translationrun.StatusReview),
			translationrun.HeartbeatAtNotNil(),
			translationrun.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		requeued, err := p.requeueOrphanedRun(ctx, run, threshold)
		if err != nil {
			slog.Error("Failed to requeue orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		if requeued {
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphanedRun returns a single stale run to pending. The heartbeat
// predicate is repeated in the update, so two pods scanning at once cannot
// both requeue a run the first already handed to a new worker.
func (p *Pool) requeueOrphanedRun(ctx context.Context, run *ent.TranslationRun, threshold time.Time) (bool, error) {
	lastHeartbeat := "unknown"
	if run.HeartbeatAt != nil {
		lastHeartbeat = run.HeartbeatAt.Format(time.RFC3339)
	}
	workerID := "unknown"
	if run.WorkerID != nil {
		workerID = *run.WorkerID
	}

	n, err := p.client.TranslationRun.Update().
		Where(
			translationrun.IDEQ(run.ID),
			translationrun.StatusIn(translationrun.StatusProcessing, translationrun.StatusReview),
			translationrun.HeartbeatAtLT(threshold),
		).
		SetStatus(translationrun.StatusPending).
		ClearWorkerID().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to requeue run: %w", err)
	}
	if n == 0 {
		// Another pod requeued it first, or a new worker already claimed it.
		return false, nil
	}

	slog.Warn("Orphaned run requeued",
		"run_id", run.ID,
		"old_worker_id", workerID,
		"last_heartbeat", lastHeartbeat)
	return true, nil
}

// RequeueStartupOrphans returns runs still owned by this pod's previous life
// to pending. Called once during startup, before the pool begins processing,
// so a crash-restart cycle never strands a claimed run.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.TranslationRun.Update().
		Where(
			translationrun.StatusIn(translationrun.StatusProcessing, translationrun.StatusReview),
			translationrun.WorkerIDHasPrefix(podID+"-worker-"),
		).
		SetStatus(translationrun.StatusPending).
		ClearWorkerID().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}

	if n > 0 {
		slog.Warn("Requeued runs claimed by previous pod instance",
			"pod_id", podID,
			"count", n)
	}
	return nil
}
