package translator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linguaflow/linguaflow/pkg/agent/consistency"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// persisting reports whether the runtime carries the persistence services.
// Without them the stage still translates; results just live in memory.
func (a *Agent) persisting() bool {
	return a.rt.Traces != nil && a.rt.Atoms != nil
}

// persistDraft records the batch draft as the atom's first content trace
// and advances it to drafted. Persistence failures are logged, never
// fatal: the in-memory result stays authoritative for this run.
func (a *Agent) persistDraft(ctx context.Context, item *models.Item, text string, strategy models.Strategy) {
	if !a.persisting() || item.AtomID == 0 || strings.TrimSpace(text) == "" {
		return
	}
	_, err := a.rt.Traces.AddTrace(ctx, models.AddTraceRequest{
		AtomID:   item.AtomID,
		Role:     models.RoleTranslator,
		Action:   models.ActionDraft,
		Content:  text,
		MetaData: map[string]any{"strategy": string(strategy)},
	})
	if err != nil {
		slog.Warn("Failed to record draft trace", "atom_id", item.AtomID, "error", err)
	}
	if err := a.rt.Atoms.UpdateTranslation(ctx, item.AtomID, text, models.AtomDrafted); err != nil {
		slog.Warn("Failed to update atom translation", "atom_id", item.AtomID, "error", err)
	}
}

// persistEvaluation records the back-translation verdict. Evaluate traces
// never carry content, so the active version stays whatever produced the
// text being judged.
func (a *Agent) persistEvaluation(ctx context.Context, item *models.Item, score float64, back string) {
	if !a.persisting() || item.AtomID == 0 {
		return
	}

	status := "pass"
	if score < passScore {
		status = "needs_refinement"
	}
	_, err := a.rt.Traces.AddTrace(ctx, models.AddTraceRequest{
		AtomID:  item.AtomID,
		Role:    models.RoleQualityAssessor,
		Action:  models.ActionEvaluate,
		Content: fmt.Sprintf("quality score %.1f", score),
		QualityReport: map[string]any{
			"score":            score,
			"back_translation": back,
			"status":           status,
		},
	})
	if err != nil {
		slog.Warn("Failed to record evaluate trace", "atom_id", item.AtomID, "error", err)
	}

	level := "high"
	issues := []string{"需要润色"}
	switch {
	case score >= passScore:
		level = "low"
		issues = []string{}
	case score >= refineThreshold-1:
		level = "medium"
	}
	examination := map[string]any{
		"back_translation":    back,
		"warning_level":       level,
		"semantic_similarity": score / 10,
		"issues":              issues,
		"algorithm":           "backtranslation",
	}
	if err := a.rt.Atoms.SetQuality(ctx, item.AtomID, score, examination); err != nil {
		slog.Warn("Failed to record atom quality", "atom_id", item.AtomID, "error", err)
	}
}

// persistRefine records a corrected text as the new active version and
// advances the atom to refined.
func (a *Agent) persistRefine(ctx context.Context, item *models.Item, text, reason string) {
	if !a.persisting() || item.AtomID == 0 || strings.TrimSpace(text) == "" {
		return
	}
	_, err := a.rt.Traces.AddTrace(ctx, models.AddTraceRequest{
		AtomID:   item.AtomID,
		Role:     models.RoleTranslator,
		Action:   models.ActionRefine,
		Content:  text,
		MetaData: map[string]any{"reason": reason},
	})
	if err != nil {
		slog.Warn("Failed to record refine trace", "atom_id", item.AtomID, "error", err)
	}
	if err := a.rt.Atoms.UpdateTranslation(ctx, item.AtomID, text, models.AtomRefined); err != nil {
		slog.Warn("Failed to update atom translation", "atom_id", item.AtomID, "error", err)
	}
}

// persistHumanEdit records a reviewer's own wording as the active version.
func (a *Agent) persistHumanEdit(ctx context.Context, item *models.Item, text string) {
	if !a.persisting() || item.AtomID == 0 || strings.TrimSpace(text) == "" {
		return
	}
	_, err := a.rt.Traces.AddTrace(ctx, models.AddTraceRequest{
		AtomID:   item.AtomID,
		Role:     models.RoleHuman,
		Action:   models.ActionHumanEdit,
		Content:  text,
		MetaData: map[string]any{"note": "custom translation from review"},
	})
	if err != nil {
		slog.Warn("Failed to record human edit trace", "atom_id", item.AtomID, "error", err)
	}
	if err := a.rt.Atoms.UpdateTranslation(ctx, item.AtomID, text, models.AtomHumanReviewed); err != nil {
		slog.Warn("Failed to update atom translation", "atom_id", item.AtomID, "error", err)
	}
}

// persistAccept marks a line human-reviewed without a new trace: the
// accepted text is already the active version.
func (a *Agent) persistAccept(ctx context.Context, item *models.Item, text string) {
	if !a.persisting() || item.AtomID == 0 || strings.TrimSpace(text) == "" {
		return
	}
	if err := a.rt.Atoms.UpdateTranslation(ctx, item.AtomID, text, models.AtomHumanReviewed); err != nil {
		slog.Warn("Failed to update atom translation", "atom_id", item.AtomID, "error", err)
	}
}

// persistConsistencyFix records an enforced term rendering as the final
// content trace.
func (a *Agent) persistConsistencyFix(ctx context.Context, item *models.Item, text string, fix consistency.Fix) {
	if !a.persisting() || item.AtomID == 0 || strings.TrimSpace(text) == "" {
		return
	}
	_, err := a.rt.Traces.AddTrace(ctx, models.AddTraceRequest{
		AtomID:  item.AtomID,
		Role:    models.RoleConsistencyChecker,
		Action:  models.ActionFinal,
		Content: text,
		MetaData: map[string]any{
			"reason": "entity consistency check",
			"before": fix.Before,
		},
	})
	if err != nil {
		slog.Warn("Failed to record consistency trace", "atom_id", item.AtomID, "error", err)
	}
	if err := a.rt.Atoms.UpdateTranslation(ctx, item.AtomID, text, models.AtomFinalized); err != nil {
		slog.Warn("Failed to update atom translation", "atom_id", item.AtomID, "error", err)
	}
}

// consistencyPass enforces the term table over every chunk's final texts,
// persisting each applied fix. Unfixable renderings are reported, not
// invented around.
func (a *Agent) consistencyPass(ctx context.Context, chunks []*ChunkResult, in Input) *consistency.Report {
	total := &consistency.Report{}
	if len(chunks) == 0 {
		return total
	}
	a.rt.Stats.BeginStage(models.StageEntityCheck, fmt.Sprintf("0/%d", len(chunks)))

	for n, ch := range chunks {
		fixed, report := consistency.Check(ch.Sources, ch.Translations, in.Table)
		for _, fix := range report.Fixes {
			a.persistConsistencyFix(ctx, ch.Items[fix.Line], fixed[fix.Line], fix)
		}
		for _, issue := range report.Issues {
			slog.Warn("Unresolved term rendering",
				"chunk", ch.Index+1,
				"line", issue.Line+1,
				"term", issue.Term,
				"expected", issue.Expected)
		}
		ch.Translations = fixed
		total.Merge(report)
		a.rt.Stats.StageProgress(n+1, len(chunks), fmt.Sprintf("chunk %d/%d", n+1, len(chunks)))
	}

	slog.Info("Consistency check done",
		"checked", total.Checked,
		"verified", total.Verified,
		"auto_fixed", total.AutoFixed,
		"unresolved", total.Remaining())
	return total
}

// commitFinal writes every usable line back to its item and finalizes the
// atom. Lines that ended empty keep their previous state so a resumed run
// picks them up again.
func (a *Agent) commitFinal(ctx context.Context, chunks []*ChunkResult) {
	for _, ch := range chunks {
		for i, it := range ch.Items {
			text := ch.Translations[i]
			if strings.TrimSpace(text) == "" {
				continue
			}
			it.TranslatedText = text
			it.Status = models.AtomFinalized
			if a.persisting() && it.AtomID != 0 {
				if err := a.rt.Atoms.UpdateTranslation(ctx, it.AtomID, text, models.AtomFinalized); err != nil {
					slog.Warn("Failed to finalize atom", "atom_id", it.AtomID, "error", err)
				}
			}
		}
	}
}
