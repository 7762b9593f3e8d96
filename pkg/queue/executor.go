package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/lexicon"
	"github.com/linguaflow/linguaflow/pkg/ratelimit"
	"github.com/linguaflow/linguaflow/pkg/services"
	"github.com/linguaflow/linguaflow/pkg/stats"
	"github.com/linguaflow/linguaflow/pkg/workflow"
)

// Executor implements RunExecutor over the workflow manager. One executor is
// shared by every worker on the pod; all per-run state lives in the Runtime
// it builds for each claimed run.
type Executor struct {
	cfg     *config.Config
	db      *database.Client
	llm     agent.LLMClient
	lexicon *lexicon.Store
	events  *events.Publisher
	runs    *services.RunService

	// Review bridges for runs blocked on a human decision, keyed by run id.
	// The API resolves GET/POST /runs/:id/review through here.
	mu      sync.RWMutex
	bridges map[string]*review.Bridge
}

// NewExecutor creates a run executor.
// events may be nil (progress broadcasting disabled).
// lex may be nil-backed (terminology persistence disabled).
func NewExecutor(cfg *config.Config, db *database.Client, llm agent.LLMClient, lex *lexicon.Store, events *events.Publisher) *Executor {
	return &Executor{
		cfg:     cfg,
		db:      db,
		llm:     llm,
		lexicon: lex,
		events:  events,
		runs:    services.NewRunService(db.Client),
		bridges: make(map[string]*review.Bridge),
	}
}

// Execute drives one claimed run through the translation workflow.
func (e *Executor) Execute(ctx context.Context, run *ent.TranslationRun) *ExecutionResult {
	log := slog.With("run_id", run.ID, "project_path", run.ProjectPath)

	pipe, err := config.OverridePipeline(e.cfg.Pipeline, run.ConfigOverrides)
	if err != nil {
		return &ExecutionResult{
			Status: translationrun.StatusFailed,
			Error:  fmt.Errorf("invalid config overrides: %w", err),
		}
	}

	rt := e.buildRuntime(ctx, run.ID, pipe)

	in := workflow.Input{
		ProjectPath: run.ProjectPath,
		OutputPath:  run.OutputPath,
	}
	if pipe.EnableHumanReview {
		bridge := review.NewBridge()
		e.register(run.ID, bridge)
		defer e.unregister(run.ID)
		in.Intervene = e.interveneFunc(run.ID, bridge)
	}

	log.Info("Run execution starting",
		"multi_agent", pipe.UseMultiAgentMode,
		"human_review", pipe.EnableHumanReview,
		"source", pipe.SourceLanguage,
		"target", pipe.TargetLanguage)

	return outcome(workflow.New(rt, in).Run(ctx))
}

// buildRuntime assembles the per-run dependency bundle: the shared LLM
// transport, a fresh rate limiter and stats tracker, and the optional
// sidecar providers.
func (e *Executor) buildRuntime(ctx context.Context, runID string, pipe *config.PipelineConfig) *agent.Runtime {
	rt := agent.NewRuntime(e.db, runID)
	rt.Pipeline = pipe
	rt.Platform = e.cfg.LLM.Platform
	rt.LLM = e.llm
	rt.Lexicon = e.lexicon
	rt.Events = e.events
	rt.Limiter = ratelimit.New(pipe.RPMLimit, pipe.TPMLimit)
	rt.Stats = stats.NewTracker(e.progressHook(runID))

	if gc, ok := e.llm.(*agent.GRPCClient); ok {
		if e.cfg.LLM.NER.Enabled {
			rt.NER = agent.NewGRPCNER(gc, e.cfg.LLM.NER, pipe.SourceLanguage)
		}
		if e.cfg.LLM.Embedding.Enabled {
			rt.Embedder = agent.NewGRPCEmbedder(gc, e.cfg.LLM.Embedding.Model)
		}
	}

	// An API cancel or run timeout lands as context cancellation; mirror it
	// onto the cooperative stop flag so agents unwind at batch boundaries.
	context.AfterFunc(ctx, rt.Stop)

	return rt
}

// progressHook forwards tracker snapshots to the events table. Publishing is
// fire-and-forget; a run never fails because a snapshot could not be stored.
func (e *Executor) progressHook(runID string) func(stats.Snapshot) {
	if e.events == nil {
		return nil
	}
	return func(snap stats.Snapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.events.PublishTaskUpdate(ctx, runID, snap); err != nil {
			slog.Warn("Failed to publish task update", "run_id", runID, "error", err)
		}
	}
}

// interveneFunc wraps the bridge hand-off with the run's review-state flips
// so the API can tell a working run from one parked on a human decision.
func (e *Executor) interveneFunc(runID string, bridge *review.Bridge) review.InterventionFunc {
	return func(ctx context.Context, taskType string, payload any) (any, error) {
		if err := e.runs.SetReviewState(ctx, runID, true); err != nil {
			slog.Warn("Failed to enter review state", "run_id", runID, "error", err)
		}
		e.publishLifecycle(ctx, runID, string(translationrun.StatusReview), taskType)

		defer func() {
			// Background context: the flip back must land even when the
			// decision arrived after the run context ended.
			if err := e.runs.SetReviewState(context.Background(), runID, false); err != nil {
				slog.Warn("Failed to leave review state", "run_id", runID, "error", err)
			}
			e.publishLifecycle(context.Background(), runID, string(translationrun.StatusProcessing), "review decision received")
		}()

		return bridge.Ask(ctx, taskType, payload)
	}
}

func (e *Executor) publishLifecycle(ctx context.Context, runID, status, detail string) {
	if e.events == nil {
		return
	}
	if err := e.events.PublishRunLifecycle(ctx, runID, status, detail); err != nil {
		slog.Warn("Failed to publish run lifecycle",
			"run_id", runID, "status", status, "error", err)
	}
}

// register makes the run's review bridge reachable by the API.
func (e *Executor) register(runID string, bridge *review.Bridge) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bridges[runID] = bridge
}

func (e *Executor) unregister(runID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.bridges, runID)
}

// Bridge returns the review bridge for a run processing on this pod. The
// second return is false when the run is unknown here or runs without review.
func (e *Executor) Bridge(runID string) (*review.Bridge, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.bridges[runID]
	return b, ok
}

// outcome maps the workflow error onto a terminal queue status.
func outcome(err error) *ExecutionResult {
	switch {
	case err == nil:
		return &ExecutionResult{Status: translationrun.StatusCompleted}
	case errors.Is(err, agent.ErrStopped), errors.Is(err, context.Canceled):
		return &ExecutionResult{Status: translationrun.StatusCancelled, Error: err}
	default:
		return &ExecutionResult{Status: translationrun.StatusFailed, Error: err}
	}
}
