// Package review coordinates human decisions on low-scoring translations
// and identified terminology. The coordinator picks what a human should
// see; the bridge carries the synchronous hand-off between a blocked
// pipeline worker and the HTTP API.
package review

import (
	"context"
	"log/slog"
	"sort"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// InterventionFunc delivers one human task and blocks until the decision
// arrives. A nil function or a nil result keeps machine decisions; context
// cancellation abandons the task.
type InterventionFunc func(ctx context.Context, taskType string, payload any) (any, error)

const (
	// fallbackCount is how many lines a reviewer sees when review is
	// enabled but nothing scores below the threshold.
	fallbackCount = 3

	// contextCap bounds the context fields of a review item, in runes.
	contextCap = 200
)

// Select returns the lines a human should review: every candidate scoring
// strictly below the threshold, or the lowest-scoring few when none
// qualify. Context fields are capped. The input order is preserved for
// qualifying lines; fallback picks are sorted by score.
func Select(candidates []models.ReviewItem, threshold float64) []models.ReviewItem {
	if len(candidates) == 0 {
		return nil
	}

	var picked []models.ReviewItem
	for _, c := range candidates {
		if c.Score < threshold {
			picked = append(picked, capContext(c))
		}
	}
	if len(picked) > 0 {
		return picked
	}

	lowest := make([]models.ReviewItem, len(candidates))
	copy(lowest, candidates)
	sort.SliceStable(lowest, func(i, j int) bool { return lowest[i].Score < lowest[j].Score })
	if len(lowest) > fallbackCount {
		lowest = lowest[:fallbackCount]
	}
	for i := range lowest {
		lowest[i] = capContext(lowest[i])
	}
	return lowest
}

func capContext(item models.ReviewItem) models.ReviewItem {
	item.ContextBefore = truncate(item.ContextBefore, contextCap)
	item.ContextAfter = truncate(item.ContextAfter, contextCap)
	return item
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Coordinator drives one batch_translation_review round.
type Coordinator struct {
	Intervene InterventionFunc
	Threshold float64
}

// Review selects low-scoring lines and blocks for human decisions. A nil
// callback, a cancelled task or an unusable reply returns no decisions and
// the machine output stands.
func (c *Coordinator) Review(ctx context.Context, candidates []models.ReviewItem) ([]models.ReviewDecision, error) {
	if c.Intervene == nil {
		return nil, nil
	}

	items := Select(candidates, c.Threshold)
	if len(items) == 0 {
		return nil, nil
	}

	reply, err := c.Intervene(ctx, models.TaskBatchTranslationReview, models.ReviewBatch{Items: items})
	if err != nil {
		return nil, err
	}

	switch result := reply.(type) {
	case nil:
		return nil, nil
	case models.ReviewResult:
		return result.Results, nil
	case *models.ReviewResult:
		if result == nil {
			return nil, nil
		}
		return result.Results, nil
	default:
		slog.Warn("Unexpected review reply type, keeping machine decisions")
		return nil, nil
	}
}
