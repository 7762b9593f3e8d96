package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/textparse"
)

// Back-translation loop parameters. Scores live on a 1-10 scale; lines
// under the refine threshold get one correction pass. A sub-step failure
// falls back to the default score so a flaky evaluator cannot stall the
// pipeline.
const (
	defaultScore    = 8.0
	refineThreshold = 7.0
	passScore       = 8.0

	// compareSampleRunes caps each side of a source/back-translation
	// comparison block in the estimation prompt.
	compareSampleRunes = 100
)

// tearOutcome is the result of one chunk's translate-evaluate-refine loop,
// line-aligned with the chunk.
type tearOutcome struct {
	texts   []string
	backs   []string
	scores  []float64
	refined []bool
}

// tear runs back-translation, quality estimation and selective refinement
// over a drafted chunk. Every sub-step degrades gracefully: a failure or a
// stop request keeps the drafts with default scores instead of erroring,
// so the loop only ever improves on what drafting produced.
func (a *Agent) tear(ctx context.Context, chunkIdx int, sources, drafts []string, in Input) tearOutcome {
	n := len(sources)
	out := tearOutcome{
		texts:   make([]string, n),
		backs:   make([]string, n),
		scores:  make([]float64, n),
		refined: make([]bool, n),
	}
	copy(out.texts, drafts)
	for i := range out.scores {
		out.scores[i] = defaultScore
	}

	if in.DraftOnly || a.rt.Stopped() || ctx.Err() != nil {
		return out
	}
	a.rt.Stats.BeginStage(models.StageBacktranslation, fmt.Sprintf("chunk %d back-translate", chunkIdx+1))

	backs, err := a.backTranslate(ctx, out.texts, in)
	if err != nil {
		slog.Warn("Back-translation failed, keeping drafts with default scores",
			"chunk", chunkIdx+1,
			"error", err)
		return out
	}
	out.backs = backs

	if a.rt.Stopped() || ctx.Err() != nil {
		return out
	}
	a.rt.Stats.StageProgress(2, 3, fmt.Sprintf("chunk %d estimate", chunkIdx+1))

	scores, err := a.estimate(ctx, sources, backs, in)
	if err != nil {
		slog.Warn("Quality estimation failed, assuming default scores",
			"chunk", chunkIdx+1,
			"error", err)
		return out
	}
	out.scores = scores

	var needs []int
	for i, score := range scores {
		if score < refineThreshold {
			needs = append(needs, i)
		}
	}
	a.rt.Stats.StageProgress(3, 3, fmt.Sprintf("chunk %d refine", chunkIdx+1))
	if len(needs) == 0 {
		return out
	}
	if a.rt.Stopped() || ctx.Err() != nil {
		return out
	}

	slog.Info("Refining low-scoring lines", "chunk", chunkIdx+1, "lines", len(needs))
	refinedTexts, err := a.refine(ctx, sources, out.texts, out.backs, needs, in)
	if err != nil {
		slog.Warn("Refinement failed, keeping drafts", "chunk", chunkIdx+1, "error", err)
		return out
	}
	for _, idx := range needs {
		if refinedTexts[idx] != out.texts[idx] {
			out.texts[idx] = refinedTexts[idx]
			out.refined[idx] = true
		}
	}
	return out
}

// backTranslate renders the chunk's translations back into the source
// language. Lines missing from the reply stay empty and score by default.
func (a *Agent) backTranslate(ctx context.Context, translations []string, in Input) ([]string, error) {
	system := backSystemPrompt(in.Table, translations,
		agent.LanguageName(in.SourceLanguage), agent.LanguageName(in.TargetLanguage))
	user := backUserPrompt(translations)

	resp, err := agent.CallWithRetry(ctx, a.rt, system, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return nil, err
	}
	if resp.Skipped {
		return nil, fmt.Errorf("back-translation skipped by provider: %s", resp.SkipReason)
	}

	parsed := textparse.Extract(resp.Content, len(translations))
	if len(parsed) == 0 {
		return nil, errors.New("no back-translations parsed from reply")
	}
	out := make([]string, len(translations))
	for i := range translations {
		out[i] = parsed[i]
	}
	return out, nil
}

// estimate scores each line by comparing source against back-translation.
// Unparseable and missing entries default rather than fail.
func (a *Agent) estimate(ctx context.Context, sources, backs []string, in Input) ([]float64, error) {
	user := estimateUserPrompt(sources, backs)

	resp, err := agent.CallWithRetry(ctx, a.rt, estimateSystemPrompt, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return nil, err
	}
	if resp.Skipped {
		return nil, fmt.Errorf("estimation skipped by provider: %s", resp.SkipReason)
	}

	parsed := textparse.Extract(resp.Content, len(sources))
	if len(parsed) == 0 {
		return nil, errors.New("no scores parsed from reply")
	}
	scores := make([]float64, len(sources))
	for i := range sources {
		entry, ok := parsed[i]
		if !ok {
			scores[i] = defaultScore
			continue
		}
		scores[i] = parseScore(entry)
	}
	return scores, nil
}

// refine corrects only the flagged lines in one call. The reply is mapped
// back by subset position; a blank or missing correction keeps the draft.
func (a *Agent) refine(ctx context.Context, sources, translations, backs []string, needs []int, in Input) ([]string, error) {
	subSources := make([]string, len(needs))
	subTexts := make([]string, len(needs))
	subBacks := make([]string, len(needs))
	for j, idx := range needs {
		subSources[j] = sources[idx]
		subTexts[j] = translations[idx]
		subBacks[j] = backs[idx]
	}

	system := refineSystemPrompt(in.Table, subSources)
	user := refineUserPrompt(subSources, subTexts, subBacks)

	resp, err := agent.CallWithRetry(ctx, a.rt, system, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return nil, err
	}
	if resp.Skipped {
		return nil, fmt.Errorf("refinement skipped by provider: %s", resp.SkipReason)
	}

	parsed := textparse.Extract(resp.Content, len(needs))
	if len(parsed) == 0 {
		return nil, errors.New("no refinements parsed from reply")
	}

	out := make([]string, len(translations))
	copy(out, translations)
	for j, idx := range needs {
		entry, ok := parsed[j]
		if !ok {
			continue
		}
		if cleaned := cleanRefined(entry); cleaned != "" {
			out[idx] = cleaned
		}
	}
	return out, nil
}

var scoreRe = regexp.MustCompile(`(?i)(?:评分|score)\s*[:：]\s*(\d{1,2}(?:\.\d+)?)`)

// parseScore recovers a 1-10 score from one reply entry. Anything
// unparseable or out of range becomes the default score; a bogus zero from
// the model must not trigger a refinement.
func parseScore(entry string) float64 {
	var raw string
	if m := scoreRe.FindStringSubmatch(entry); m != nil {
		raw = m[1]
	} else {
		raw = strings.TrimSpace(entry)
		raw = strings.TrimSuffix(raw, "分")
		if i := strings.IndexByte(raw, '/'); i >= 0 {
			raw = raw[:i]
		}
		raw = strings.TrimSpace(raw)
	}

	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || score < 1 || score > 10 {
		return defaultScore
	}
	return score
}

var refineLabelRe = regexp.MustCompile(`(?:原文|原译文|回译|修正后译文|译文)[：:]`)

// cleanRefined strips numbering and any echoed prompt labels from a
// refinement entry, keeping the last labeled segment when the model
// replayed the whole comparison block.
func cleanRefined(entry string) string {
	cleaned := textparse.CleanLine(entry)
	if !refineLabelRe.MatchString(cleaned) {
		return cleaned
	}
	parts := refineLabelRe.Split(cleaned, -1)
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return ""
}
