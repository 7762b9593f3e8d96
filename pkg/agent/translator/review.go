package translator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// lineRef maps a global review index back to its chunk and local line.
type lineRef struct {
	chunk int
	local int
}

// reviewPass offers the run's low-scoring lines to a human in one batch
// and applies the decisions in place. Candidates carry global indices so
// one review round covers all chunks.
func (a *Agent) reviewPass(ctx context.Context, chunks []*ChunkResult, in Input) error {
	if !in.ReviewEnabled || in.Intervene == nil {
		return nil
	}

	var candidates []models.ReviewItem
	var refs []lineRef
	for ci, ch := range chunks {
		for li := range ch.Items {
			candidates = append(candidates, models.ReviewItem{
				Index:           len(candidates),
				SourceText:      ch.Sources[li],
				TranslatedText:  ch.Translations[li],
				BackTranslation: ch.Backs[li],
				Score:           ch.Scores[li],
			})
			refs = append(refs, lineRef{chunk: ci, local: li})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	for i := range candidates {
		if i > 0 {
			candidates[i].ContextBefore = candidates[i-1].SourceText
		}
		if i+1 < len(candidates) {
			candidates[i].ContextAfter = candidates[i+1].SourceText
		}
	}

	slog.Info("Requesting translation review",
		"candidates", len(candidates),
		"threshold", in.ReviewThreshold)
	coord := review.Coordinator{Intervene: in.Intervene, Threshold: in.ReviewThreshold}
	decisions, err := coord.Review(ctx, candidates)
	if err != nil {
		return fmt.Errorf("translation review failed: %w", err)
	}
	if len(decisions) == 0 {
		slog.Info("Translation review returned no changes")
		return nil
	}

	applied := 0
	for _, d := range decisions {
		if d.Index < 0 || d.Index >= len(refs) {
			slog.Warn("Review decision out of range", "index", d.Index)
			continue
		}
		ref := refs[d.Index]
		ch := chunks[ref.chunk]
		item := ch.Items[ref.local]

		switch d.Action {
		case models.ReviewActionAccept:
			a.persistAccept(ctx, item, ch.Translations[ref.local])
			applied++
		case models.ReviewActionCustom:
			text := strings.TrimSpace(d.Translation)
			if text == "" {
				continue
			}
			ch.Translations[ref.local] = text
			a.persistHumanEdit(ctx, item, text)
			applied++
		case models.ReviewActionRetranslate:
			text, err := a.translateSingle(ctx, ch.Sources[ref.local], nil, in)
			if err != nil {
				if abort(ctx, err) {
					return err
				}
				slog.Warn("Review retranslation failed", "index", d.Index, "error", err)
				continue
			}
			if text == "" {
				continue
			}
			ch.Translations[ref.local] = text
			a.persistRefine(ctx, item, text, "human requested retranslation")
			applied++
		default:
			slog.Warn("Unknown review action", "action", d.Action, "index", d.Index)
		}
	}
	slog.Info("Translation review applied", "decisions", len(decisions), "applied", applied)
	return nil
}
