package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

func makeItems(n, length int) []*models.Item {
	items := make([]*models.Item, n)
	for i := range items {
		items[i] = &models.Item{
			RowIndex:   i,
			SourceText: strings.Repeat("a", length),
			Status:     models.AtomUntranslated,
			TokenCount: length / 4,
		}
	}
	return items
}

func TestAnalyzeTask(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		a := AnalyzeTask(nil)
		assert.Zero(t, a.TotalUnits)
		assert.Zero(t, a.AvgLength)
		assert.Equal(t, TierSimple, a.Complexity)
	})

	t.Run("small short task is simple", func(t *testing.T) {
		a := AnalyzeTask(makeItems(40, 80))
		assert.Equal(t, 40, a.TotalUnits)
		assert.InDelta(t, 80.0, a.AvgLength, 0.001)
		assert.Equal(t, TierSimple, a.Complexity)
		assert.Equal(t, 80*time.Second, a.EstimatedTime)
	})

	t.Run("many units is complex", func(t *testing.T) {
		a := AnalyzeTask(makeItems(300, 80))
		assert.Equal(t, TierComplex, a.Complexity)
		assert.Equal(t, 3000*time.Second, a.EstimatedTime)
	})

	t.Run("long lines are complex regardless of count", func(t *testing.T) {
		a := AnalyzeTask(makeItems(10, 600))
		assert.Equal(t, TierComplex, a.Complexity)
	})

	t.Run("middle ground is medium", func(t *testing.T) {
		a := AnalyzeTask(makeItems(100, 120))
		assert.Equal(t, TierMedium, a.Complexity)
		assert.Equal(t, 500*time.Second, a.EstimatedTime)
	})

	t.Run("translated items are ignored", func(t *testing.T) {
		items := makeItems(60, 80)
		for _, it := range items[:30] {
			it.Status = models.AtomFinalized
		}
		a := AnalyzeTask(items)
		assert.Equal(t, 30, a.TotalUnits)
		assert.Equal(t, TierSimple, a.Complexity)
	})

	t.Run("sums source tokens from item counts", func(t *testing.T) {
		a := AnalyzeTask(makeItems(10, 400))
		assert.Equal(t, 10*100, a.SourceTokens)
	})
}

func TestBuildExecutionPlan(t *testing.T) {
	t.Run("tier parameters", func(t *testing.T) {
		cases := []struct {
			complexity string
			batch      int
			workers    int
			retries    int
			backoff    string
		}{
			{TierSimple, 50, 5, 2, BackoffLinear},
			{TierMedium, 100, 10, 3, BackoffExponential},
			{TierComplex, 200, 15, 5, BackoffExponential},
		}
		for _, tc := range cases {
			plan := BuildExecutionPlan(TaskAnalysis{TotalUnits: 1000, Complexity: tc.complexity}, 0)
			assert.Equal(t, tc.batch, plan.BatchSize, tc.complexity)
			assert.Equal(t, tc.workers, plan.MaxWorkers, tc.complexity)
			assert.Equal(t, tc.retries, plan.Retry.MaxRetries, tc.complexity)
			assert.Equal(t, tc.backoff, plan.Retry.Backoff, tc.complexity)
			assert.Equal(t, "parallel", plan.Mode)
			assert.Equal(t, []string{"preprocess", "terminology", "translate"}, plan.Stages)
		}
	})

	t.Run("batch never exceeds unit count", func(t *testing.T) {
		plan := BuildExecutionPlan(TaskAnalysis{TotalUnits: 12, Complexity: TierSimple}, 0)
		assert.Equal(t, 12, plan.BatchSize)
	})

	t.Run("user thread count overrides workers", func(t *testing.T) {
		plan := BuildExecutionPlan(TaskAnalysis{TotalUnits: 500, Complexity: TierComplex}, 4)
		assert.Equal(t, 4, plan.MaxWorkers)
		assert.Equal(t, 200, plan.BatchSize)
	})
}

func TestRetryPlanPolicy(t *testing.T) {
	p := RetryPlan{MaxRetries: 5, Backoff: BackoffExponential}.Policy()
	assert.Equal(t, 5, p.Attempts)
	assert.True(t, p.Exponential)

	p = RetryPlan{MaxRetries: 2, Backoff: BackoffLinear}.Policy()
	assert.Equal(t, 2, p.Attempts)
	assert.False(t, p.Exponential)
}

func TestBuildResourcePlan(t *testing.T) {
	analysis := TaskAnalysis{TotalUnits: 200, SourceTokens: 10000}
	strategies := []ChunkStrategy{
		{ChunkIndex: 0, Strategy: models.StrategyLiteral},
		{ChunkIndex: 1, Strategy: models.StrategyLiteral},
		{ChunkIndex: 2, Strategy: models.StrategyFree},
	}

	plan := BuildResourcePlan(analysis, strategies)
	assert.Equal(t, 45000, plan.EstimatedTokens)
	assert.Equal(t, 9, plan.APICalls)
	assert.Equal(t, MemoryMedium, plan.MemoryClass)

	require.Contains(t, plan.ByStrategy, models.StrategyLiteral)
	assert.Equal(t, StrategyLoad{Chunks: 2, APICalls: 6}, plan.ByStrategy[models.StrategyLiteral])
	assert.Equal(t, StrategyLoad{Chunks: 1, APICalls: 3}, plan.ByStrategy[models.StrategyFree])
}

func TestBuildResourcePlanMemoryClass(t *testing.T) {
	assert.Equal(t, MemorySmall, BuildResourcePlan(TaskAnalysis{TotalUnits: 100}, nil).MemoryClass)
	assert.Equal(t, MemoryMedium, BuildResourcePlan(TaskAnalysis{TotalUnits: 101}, nil).MemoryClass)
	assert.Equal(t, MemoryLarge, BuildResourcePlan(TaskAnalysis{TotalUnits: 1001}, nil).MemoryClass)
}
