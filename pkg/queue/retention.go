package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/config"
)

// Retention periodically enforces data retention:
//   - Deletes terminal runs past the retention window
//   - Deletes event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods. The
// translated artifacts and the project work rows are never touched; only
// queue bookkeeping expires.
type Retention struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRetention creates a retention sweeper.
func NewRetention(cfg *config.RetentionConfig, client *ent.Client) *Retention {
	return &Retention{config: cfg, client: client}
}

// Start launches the background sweep loop.
func (r *Retention) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Retention sweeper started",
		"run_retention_days", r.config.RunRetentionDays,
		"event_ttl", r.config.EventTTL,
		"interval", r.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (r *Retention) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Retention sweeper stopped")
}

func (r *Retention) run(ctx context.Context) {
	defer close(r.done)

	r.sweepAll()

	ticker := time.NewTicker(r.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweepAll()
		}
	}
}

// sweepAll runs the deletes on a background context: a sweep in flight
// during shutdown finishes rather than leaving partial batches.
func (r *Retention) sweepAll() {
	r.sweepRuns(context.Background())
	r.sweepEvents(context.Background())
}

// sweepRuns deletes terminal runs older than the retention window.
func (r *Retention) sweepRuns(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -r.config.RunRetentionDays)

	count, err := r.client.TranslationRun.Delete().
		Where(
			translationrun.StatusIn(
				translationrun.StatusCompleted,
				translationrun.StatusFailed,
				translationrun.StatusCancelled,
			),
			translationrun.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: run sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old runs", "count", count)
	}
}

// sweepEvents deletes event rows past their TTL. Events exist for live
// streaming and catch-up, not as history.
func (r *Retention) sweepEvents(ctx context.Context) {
	cutoff := time.Now().Add(-r.config.EventTTL)

	count, err := r.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: event sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired events", "count", count)
	}
}
