// Package stats tracks live progress counters for one run. The tracker is
// the single source of truth behind TaskUpdate events: every mutation takes
// a snapshot under the same lock and hands it to the publish hook, so
// consumers never observe torn counter sets.
package stats

import (
	"sync"
	"time"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// Snapshot is an immutable copy of the counters at one instant.
type Snapshot struct {
	TotalLines       int                `json:"total_lines"`
	Lines            int                `json:"lines"`
	Tokens           int                `json:"tokens"`
	CompletionTokens int                `json:"completion_tokens"`
	TotalRequests    int                `json:"total_requests"`
	ActiveLLMCalls   int                `json:"active_llm_calls"`
	CurrentStage     models.Stage       `json:"current_stage,omitempty"`
	StageCurrent     int                `json:"stage_current,omitempty"`
	StageTotal       int                `json:"stage_total,omitempty"`
	StageElapsed     float64            `json:"stage_elapsed_seconds"`
	Elapsed          float64            `json:"elapsed_seconds"`
	AgentStage       *models.AgentStage `json:"agent_stage,omitempty"`
}

// Tracker accumulates run progress. All methods are safe for concurrent use.
// The publish hook runs outside the lock with a value copy and may be nil.
type Tracker struct {
	mu      sync.Mutex
	publish func(Snapshot)

	totalLines       int
	lines            int
	tokens           int
	completionTokens int
	totalRequests    int
	activeLLMCalls   int

	currentStage models.Stage
	stageStart   time.Time
	stageCurrent int
	stageTotal   int
	startTime    time.Time
}

// NewTracker builds a tracker. publish receives a snapshot after every
// counter change and may be nil when nobody listens.
func NewTracker(publish func(Snapshot)) *Tracker {
	return &Tracker{
		publish:   publish,
		startTime: time.Now(),
	}
}

// Reset rearms the tracker for a fresh run over totalLines source lines.
func (t *Tracker) Reset(totalLines int) {
	t.mu.Lock()
	t.totalLines = totalLines
	t.lines = 0
	t.tokens = 0
	t.completionTokens = 0
	t.totalRequests = 0
	t.activeLLMCalls = 0
	t.currentStage = ""
	t.stageCurrent = 0
	t.stageTotal = 0
	t.startTime = time.Now()
	t.stageStart = t.startTime
	snap := t.snapshotLocked(nil)
	t.mu.Unlock()

	t.emit(snap)
}

// SetCompletedLines seeds the completed-line counter when a run resumes with
// part of the document already translated.
func (t *Tracker) SetCompletedLines(n int) {
	t.mu.Lock()
	t.lines = n
	snap := t.snapshotLocked(nil)
	t.mu.Unlock()

	t.emit(snap)
}

// AddLines records n more lines as fully translated.
func (t *Tracker) AddLines(n int) {
	t.mu.Lock()
	t.lines += n
	snap := t.snapshotLocked(nil)
	t.mu.Unlock()

	t.emit(snap)
}

// BeginStage marks entry into a workflow stage and restarts the stage clock.
func (t *Tracker) BeginStage(stage models.Stage, batchInfo string) {
	t.mu.Lock()
	t.currentStage = stage
	t.stageStart = time.Now()
	t.stageCurrent = 0
	t.stageTotal = 0
	snap := t.snapshotLocked(&models.AgentStage{Stage: stage, BatchInfo: batchInfo})
	t.mu.Unlock()

	t.emit(snap)
}

// StageProgress reports per-batch progress inside the current stage.
func (t *Tracker) StageProgress(current, total int, batchInfo string) {
	t.mu.Lock()
	t.stageCurrent = current
	t.stageTotal = total
	snap := t.snapshotLocked(&models.AgentStage{Stage: t.currentStage, BatchInfo: batchInfo})
	t.mu.Unlock()

	t.emit(snap)
}

// TrackCall brackets one LLM round-trip. The active-call gauge rises before
// fn runs and falls when it returns, and the token usage fn reports lands in
// the cumulative counters. Snapshots are published at both transitions.
func (t *Tracker) TrackCall(fn func() (promptTokens, completionTokens int, err error)) error {
	t.mu.Lock()
	t.activeLLMCalls++
	t.totalRequests++
	snap := t.snapshotLocked(nil)
	t.mu.Unlock()
	t.emit(snap)

	prompt, completion, err := fn()

	t.mu.Lock()
	t.activeLLMCalls--
	t.tokens += prompt + completion
	t.completionTokens += completion
	snap = t.snapshotLocked(nil)
	t.mu.Unlock()
	t.emit(snap)

	return err
}

// Snapshot returns a copy of the current counters.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked(nil)
}

func (t *Tracker) snapshotLocked(agentStage *models.AgentStage) Snapshot {
	now := time.Now()
	snap := Snapshot{
		TotalLines:       t.totalLines,
		Lines:            t.lines,
		Tokens:           t.tokens,
		CompletionTokens: t.completionTokens,
		TotalRequests:    t.totalRequests,
		ActiveLLMCalls:   t.activeLLMCalls,
		CurrentStage:     t.currentStage,
		StageCurrent:     t.stageCurrent,
		StageTotal:       t.stageTotal,
		Elapsed:          now.Sub(t.startTime).Seconds(),
		AgentStage:       agentStage,
	}
	if !t.stageStart.IsZero() {
		snap.StageElapsed = now.Sub(t.stageStart).Seconds()
	}
	// Before translation starts the line counter may still hold a resumed
	// value; snapshots report zero lines until the translating stage.
	if t.currentStage.PreTranslation() {
		snap.Lines = 0
	}
	return snap
}

func (t *Tracker) emit(snap Snapshot) {
	if t.publish != nil {
		t.publish(snap)
	}
}
