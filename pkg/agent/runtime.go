package agent

import (
	"sync/atomic"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/database"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/lexicon"
	"github.com/linguaflow/linguaflow/pkg/ratelimit"
	"github.com/linguaflow/linguaflow/pkg/services"
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// Runtime bundles the per-run dependencies shared by every specialist
// agent. One Runtime is built per claimed run and passed explicitly to
// constructors; nothing here is global.
type Runtime struct {
	RunID string

	DB        *database.Client
	Works     *services.WorkService
	Docs      *services.DocService
	Atoms     *services.AtomService
	Traces    *services.TraceService
	Knowledge *services.KnowledgeService
	Runs      *services.RunService

	// Lexicon may be nil-backed; all its methods tolerate that.
	Lexicon *lexicon.Store

	Events   *events.Publisher
	Stats    *stats.Tracker
	Limiter  *ratelimit.Limiter
	LLM      LLMClient
	NER      NERProvider
	Embedder Embedder

	Pipeline *config.PipelineConfig
	Platform config.PlatformConfig

	stop atomic.Bool
}

// NewRuntime wires the service layer over db and applies no-op defaults
// for the optional providers. Callers fill in the remaining fields.
func NewRuntime(db *database.Client, runID string) *Runtime {
	return &Runtime{
		RunID:     runID,
		DB:        db,
		Works:     services.NewWorkService(db.Client),
		Docs:      services.NewDocService(db.Client),
		Atoms:     services.NewAtomService(db.Client),
		Traces:    services.NewTraceService(db.Client),
		Knowledge: services.NewKnowledgeService(db.Client),
		Runs:      services.NewRunService(db.Client),
		NER:       NoopNER{},
		Embedder:  NoopEmbedder{},
	}
}

// Stop requests cooperative cancellation. Agents check Stopped at batch
// boundaries and unwind without writing partial state.
func (r *Runtime) Stop() {
	r.stop.Store(true)
}

// Stopped reports whether a stop was requested.
func (r *Runtime) Stopped() bool {
	return r.stop.Load()
}
