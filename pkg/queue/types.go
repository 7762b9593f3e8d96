// Package queue claims and processes translation runs from the
// translation_runs table. A Pool starts one set of workers per pod; each
// worker polls with jitter, claims a pending run with SELECT ... FOR UPDATE
// SKIP LOCKED, and hands it to the executor while a heartbeat ticker keeps
// the claim visible. Orphan recovery requeues runs whose owner stopped
// heartbeating, and the retention sweeper removes terminal runs and expired
// events.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor processes one claimed run.
//
// The executor owns the entire pipeline lifecycle internally: it builds the
// per-run Runtime, drives the stage graph, and persists atoms, traces, and
// progress as it goes. The worker only handles claiming, heartbeat, the
// terminal status write, and event cleanup.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.TranslationRun) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. Everything else
// (atoms, traces, events) was already written to the database during
// processing.
type ExecutionResult struct {
	Status translationrun.Status // completed, failed, cancelled
	Error  error                 // error details (if failed/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
