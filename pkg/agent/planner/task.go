// Package planner sizes a translation task before any model call runs. It
// produces the execution parameters the rest of the pipeline consumes:
// complexity tier, worker and batch counts, retry policy, per-chunk
// translation strategies and a document style guide. Everything here is
// deterministic text analysis.
package planner

import (
	"time"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// Complexity tiers.
const (
	TierSimple  = "simple"
	TierMedium  = "medium"
	TierComplex = "complex"
)

// Backoff strategies for the retry plan.
const (
	BackoffLinear      = "linear"
	BackoffExponential = "exponential"
)

// Memory classes for the resource plan.
const (
	MemorySmall  = "small"
	MemoryMedium = "medium"
	MemoryLarge  = "large"
)

// TaskAnalysis summarizes the untranslated workload.
type TaskAnalysis struct {
	TotalUnits    int
	AvgLength     float64
	SourceTokens  int
	Complexity    string
	EstimatedTime time.Duration
}

// RetryPlan is the per-call retry budget chosen for the tier.
type RetryPlan struct {
	MaxRetries int
	Backoff    string
}

// Policy converts the plan into the transport-level retry policy.
func (p RetryPlan) Policy() agent.RetryPolicy {
	return agent.RetryPolicy{
		Attempts:    p.MaxRetries,
		Base:        time.Second,
		Exponential: p.Backoff == BackoffExponential,
	}
}

// ExecutionPlan sets the run's concurrency envelope.
type ExecutionPlan struct {
	Mode       string
	BatchSize  int
	MaxWorkers int
	Stages     []string
	Retry      RetryPlan
}

// StrategyLoad is one strategy's slice of the API-call budget.
type StrategyLoad struct {
	Chunks   int
	APICalls int
}

// ResourcePlan estimates the run's model footprint.
type ResourcePlan struct {
	EstimatedTokens int
	APICalls        int
	MemoryClass     string
	ByStrategy      map[models.Strategy]StrategyLoad
}

// AnalyzeTask sizes the untranslated portion of the document set. Items
// already carrying a translation are ignored.
func AnalyzeTask(items []*models.Item) TaskAnalysis {
	var analysis TaskAnalysis
	totalChars := 0
	for _, it := range items {
		if !it.Untranslated() {
			continue
		}
		analysis.TotalUnits++
		totalChars += len([]rune(it.SourceText))
		analysis.SourceTokens += itemTokens(it)
	}
	if analysis.TotalUnits > 0 {
		analysis.AvgLength = float64(totalChars) / float64(analysis.TotalUnits)
	}

	switch {
	case analysis.TotalUnits < 50 && analysis.AvgLength < 100:
		analysis.Complexity = TierSimple
		analysis.EstimatedTime = time.Duration(analysis.TotalUnits) * 2 * time.Second
	case analysis.TotalUnits >= 300 || analysis.AvgLength >= 500:
		analysis.Complexity = TierComplex
		analysis.EstimatedTime = time.Duration(analysis.TotalUnits) * 10 * time.Second
	default:
		analysis.Complexity = TierMedium
		analysis.EstimatedTime = time.Duration(analysis.TotalUnits) * 5 * time.Second
	}
	return analysis
}

// BuildExecutionPlan picks batch size, worker count and retry budget for
// the tier. userThreads > 0 overrides the planner's worker choice.
func BuildExecutionPlan(analysis TaskAnalysis, userThreads int) ExecutionPlan {
	plan := ExecutionPlan{
		Mode:   "parallel",
		Stages: []string{"preprocess", "terminology", "translate"},
	}

	switch analysis.Complexity {
	case TierSimple:
		plan.BatchSize = 50
		plan.MaxWorkers = 5
		plan.Retry = RetryPlan{MaxRetries: 2, Backoff: BackoffLinear}
	case TierComplex:
		plan.BatchSize = 200
		plan.MaxWorkers = 15
		plan.Retry = RetryPlan{MaxRetries: 5, Backoff: BackoffExponential}
	default:
		plan.BatchSize = 100
		plan.MaxWorkers = 10
		plan.Retry = RetryPlan{MaxRetries: 3, Backoff: BackoffExponential}
	}

	if analysis.TotalUnits > 0 && analysis.TotalUnits < plan.BatchSize {
		plan.BatchSize = analysis.TotalUnits
	}
	if userThreads > 0 {
		plan.MaxWorkers = userThreads
	}
	return plan
}

// Token multipliers per pipeline step, relative to the source token count.
// Forward translation dominates because the prompt repeats the source plus
// terminology and context; back-translation sees only the output; refine
// touches a subset.
const (
	forwardTokenFactor = 2.5
	backTokenFactor    = 1.5
	refineTokenFactor  = 0.5
)

// BuildResourcePlan estimates token and API-call consumption from the task
// analysis and the planned chunk strategies. Each chunk costs three calls:
// translate, back-translate, score-and-refine.
func BuildResourcePlan(analysis TaskAnalysis, strategies []ChunkStrategy) ResourcePlan {
	plan := ResourcePlan{
		EstimatedTokens: int(float64(analysis.SourceTokens) *
			(forwardTokenFactor + backTokenFactor + refineTokenFactor)),
		APICalls: len(strategies) * 3,
	}

	if len(strategies) > 0 {
		plan.ByStrategy = make(map[models.Strategy]StrategyLoad)
		for _, cs := range strategies {
			load := plan.ByStrategy[cs.Strategy]
			load.Chunks++
			load.APICalls += 3
			plan.ByStrategy[cs.Strategy] = load
		}
	}

	switch {
	case analysis.TotalUnits <= 100:
		plan.MemoryClass = MemorySmall
	case analysis.TotalUnits <= 1000:
		plan.MemoryClass = MemoryMedium
	default:
		plan.MemoryClass = MemoryLarge
	}
	return plan
}

func itemTokens(it *models.Item) int {
	if it.TokenCount > 0 {
		return it.TokenCount
	}
	return agent.CountTokens(it.SourceText)
}
