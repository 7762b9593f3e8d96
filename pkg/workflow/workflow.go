// Package workflow drives one translation run through the stage graph:
// planning, preprocessing, terminology, translating (which publishes its
// nested back-translation and entity-check phases), saving, completed. The
// manager owns the run's mutable state; the stage agents stay stateless and
// receive what they need as explicit inputs.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/planner"
	"github.com/linguaflow/linguaflow/pkg/agent/preprocess"
	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/agent/translator"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/project"
)

// ErrNoTranslationResults reports a run that had pending lines yet produced
// not a single translation. That signals a broken provider or prompt
// contract, and the run fails instead of saving empty artifacts.
var ErrNoTranslationResults = errors.New("translation produced no results")

// Input configures one run of the pipeline.
type Input struct {
	// ProjectPath is a directory or single document to translate, or a
	// previous run's output directory when resuming.
	ProjectPath string
	// OutputPath receives the artifacts and the resumable state file.
	OutputPath string
	// Intervene routes human-review requests when review is enabled; nil
	// leaves every stage fully automatic.
	Intervene review.InterventionFunc
}

// State is the blackboard the stages fill in turn. Everything downstream of
// a stage reads only what earlier stages wrote.
type State struct {
	Project *project.Project
	WorkID  int
	DocMap  map[string]int
	AtomMap map[string]map[int]int

	Analysis   preprocess.Analysis
	TaskInfo   planner.TaskAnalysis
	Plan       planner.ExecutionPlan
	Resources  planner.ResourcePlan
	Strategies []planner.ChunkStrategy
	StyleGuide planner.StyleGuide

	Table models.TermTable
	Terms []models.Term

	Translation *translator.Result
}

// Manager executes the stage graph for one run.
type Manager struct {
	rt    *agent.Runtime
	in    Input
	state State
}

// New returns a manager over the run's shared dependencies.
func New(rt *agent.Runtime, in Input) *Manager {
	return &Manager{rt: rt, in: in}
}

// State exposes the blackboard after Run for callers that report on the
// outcome.
func (m *Manager) State() *State {
	return &m.state
}

// step is one node of the serial stage graph.
type step struct {
	stage models.Stage
	run   func(ctx context.Context) error
}

// Run executes the whole graph in order. Stages never run out of order and
// never in parallel with each other; parallelism lives inside the
// translating stage. The stop flag and context are checked at every stage
// boundary, so a cancelled run unwinds without starting new work while
// in-flight model calls finish on their own.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.bootstrap(ctx); err != nil {
		return err
	}

	steps := []step{
		{models.StagePlanning, m.planning},
		{models.StagePreprocessing, m.preprocessing},
		{models.StageTerminology, m.terminology},
		{models.StageTranslating, m.translating},
		{models.StageSaving, m.saving},
	}
	for _, st := range steps {
		if m.rt.Stopped() {
			return agent.ErrStopped
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		m.enterStage(ctx, st.stage)
		if err := st.run(ctx); err != nil {
			return fmt.Errorf("%s stage failed: %w", st.stage, err)
		}
	}

	if m.rt.Stopped() {
		return agent.ErrStopped
	}
	m.complete(ctx)
	return nil
}

// enterStage records the transition everywhere it is observable: the log,
// the progress tracker (whose snapshot publishes as a task update) and the
// run row. The run row write is best effort.
func (m *Manager) enterStage(ctx context.Context, stage models.Stage) {
	slog.Info("Entering stage", "run_id", m.rt.RunID, "stage", stage)
	m.rt.Stats.BeginStage(stage, "")
	if m.rt.Runs != nil && m.rt.RunID != "" {
		if err := m.rt.Runs.SetStage(ctx, m.rt.RunID, stage); err != nil {
			slog.Warn("Failed to record run stage",
				"run_id", m.rt.RunID,
				"stage", stage,
				"error", err)
		}
	}
}

func (m *Manager) complete(ctx context.Context) {
	m.enterStage(ctx, models.StageCompleted)
	m.rt.Stats.StageProgress(1, 1, "")

	translated := 0
	if m.state.Translation != nil {
		translated = m.state.Translation.Translated
	}
	slog.Info("Workflow completed",
		"run_id", m.rt.RunID,
		"documents", len(m.state.Project.Documents),
		"translated", translated)
}

// cfg returns the pipeline configuration, falling back to defaults when the
// runtime carries none.
func (m *Manager) cfg() config.PipelineConfig {
	if m.rt.Pipeline != nil {
		return *m.rt.Pipeline
	}
	return *config.DefaultPipelineConfig()
}

// retryPolicy converts the planner's retry budget once planning has run;
// before that, callers get a sane default.
func (m *Manager) retryPolicy() agent.RetryPolicy {
	if m.state.Plan.Retry.MaxRetries > 0 {
		return m.state.Plan.Retry.Policy()
	}
	return agent.RetryPolicy{Attempts: 3, Base: time.Second, Exponential: true}
}

// intervene returns the review callback only when review is switched on.
func (m *Manager) intervene() review.InterventionFunc {
	if !m.cfg().EnableHumanReview {
		return nil
	}
	return m.in.Intervene
}
