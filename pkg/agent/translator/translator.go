// Package translator runs the translating core of the pipeline:
// strategy-tagged batch drafts, the back-translate/estimate/refine loop,
// unified human review of low-scoring lines, term-consistency enforcement,
// and the trace commit that finalizes every atom.
package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/consistency"
	"github.com/linguaflow/linguaflow/pkg/agent/planner"
	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/chunk"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/textparse"
)

// FailedPrefix marks a line the model could not translate after retries.
// The source text follows the marker so nothing is silently lost.
const FailedPrefix = "[FAILED]"

// Problem-line thresholds: output that vanishes or shrinks far below a
// long source line is treated as truncated and retried alone.
const (
	problemSourceRunes = 100
	problemOutputRatio = 0.3
)

// Agent runs the translating stage.
type Agent struct {
	rt *agent.Runtime
}

// New returns a translation agent over the run's shared dependencies.
func New(rt *agent.Runtime) *Agent {
	return &Agent{rt: rt}
}

// Input is what the workflow hands the stage.
type Input struct {
	Items []*models.Item
	// Table fixes renderings identified by the terminology stage.
	Table models.TermTable
	// Domain and Style are the document profile from preprocessing.
	Domain string
	Style  string
	// Language codes from config.
	SourceLanguage string
	TargetLanguage string
	// Strategies maps chunk index to the planner's strategy choice. A
	// missing entry falls back to free translation.
	Strategies []planner.ChunkStrategy
	// MaxWorkers bounds concurrent chunk pipelines.
	MaxWorkers int
	// ContextLines is the read-only window carried before each chunk.
	ContextLines int
	// Budget is the per-chunk character budget.
	Budget int
	Retry  agent.RetryPolicy
	// DraftOnly stops after drafting: no back-translation loop and no
	// consistency pass, drafts commit as the final output.
	DraftOnly bool
	// ReviewEnabled gates the human pass over low-scoring lines.
	ReviewEnabled   bool
	ReviewThreshold float64
	Intervene       review.InterventionFunc
}

// ChunkResult is one chunk's full outcome, kept line-aligned with Items.
type ChunkResult struct {
	Index        int
	FilePath     string
	Items        []*models.Item
	Sources      []string
	Translations []string
	Backs        []string
	Scores       []float64
	Strategy     models.Strategy
}

// Result is merged back into workflow state.
type Result struct {
	Chunks []*ChunkResult
	// Translated counts lines that ended with usable text.
	Translated  int
	Consistency *consistency.Report
}

// chunkJob is one unit of parallel work: a packed batch of untranslated
// items plus its context window.
type chunkJob struct {
	index    int
	filePath string
	items    []*models.Item
	context  []string
}

// Run translates every untranslated item: parallel chunk pipelines, then
// the sequential review, consistency and commit passes over the results.
func (a *Agent) Run(ctx context.Context, in Input) (*Result, error) {
	if in.ReviewThreshold <= 0 {
		in.ReviewThreshold = 7.0
	}

	jobs := a.prepareJobs(in)
	if len(jobs) == 0 {
		slog.Info("Nothing to translate")
		return &Result{}, nil
	}

	lines := 0
	for _, job := range jobs {
		lines += len(job.items)
	}
	slog.Info("Translating",
		"chunks", len(jobs),
		"lines", lines,
		"workers", workerCount(in.MaxWorkers, len(jobs)))
	a.rt.Stats.BeginStage(models.StageTranslating, fmt.Sprintf("0/%d", len(jobs)))

	results := make([]*ChunkResult, len(jobs))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(in.MaxWorkers, len(jobs)))

	for i, job := range jobs {
		g.Go(func() error {
			res, err := a.translateChunk(gctx, job, in)
			if err != nil {
				return err
			}
			results[i] = res
			n := int(done.Add(1))
			a.rt.Stats.StageProgress(n, len(jobs), fmt.Sprintf("chunk %d/%d", n, len(jobs)))
			a.rt.Stats.AddLines(len(job.items))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := a.reviewPass(ctx, results, in); err != nil {
		return nil, err
	}
	report := &consistency.Report{}
	if !in.DraftOnly {
		report = a.consistencyPass(ctx, results, in)
	}
	a.commitFinal(ctx, results)

	translated := 0
	for _, ch := range results {
		for _, text := range ch.Translations {
			if strings.TrimSpace(text) != "" {
				translated++
			}
		}
	}
	slog.Info("Translation stage done", "chunks", len(results), "translated", translated)

	return &Result{Chunks: results, Translated: translated, Consistency: report}, nil
}

func workerCount(max, jobs int) int {
	if max < 1 {
		max = 1
	}
	return min(max, jobs)
}

// prepareJobs packs the untranslated items of each file into budgeted
// chunks, file by file in first-seen order. Context windows come from the
// untranslated sequence, matching what the model will actually have seen.
func (a *Agent) prepareJobs(in Input) []chunkJob {
	budget := in.Budget
	if budget <= 0 {
		budget = chunk.DefaultTranslationBudget
	}
	k := in.ContextLines
	if k <= 0 {
		k = chunk.DefaultContextLines
	}

	var files []string
	byFile := map[string][]*models.Item{}
	for _, it := range in.Items {
		if !it.Untranslated() || strings.TrimSpace(it.SourceText) == "" {
			continue
		}
		if _, ok := byFile[it.FilePath]; !ok {
			files = append(files, it.FilePath)
		}
		byFile[it.FilePath] = append(byFile[it.FilePath], it)
	}

	var jobs []chunkJob
	for _, path := range files {
		untranslated := byFile[path]
		for _, batch := range chunk.Split(untranslated, budget) {
			window := chunk.ContextWindow(untranslated, batch.Start, k)
			context := make([]string, 0, len(window))
			for _, it := range window {
				context = append(context, it.SourceText)
			}
			jobs = append(jobs, chunkJob{
				index:    len(jobs),
				filePath: path,
				items:    batch.Items,
				context:  context,
			})
		}
	}
	return jobs
}

// strategyFor looks up the planner's choice for a chunk.
func strategyFor(strategies []planner.ChunkStrategy, index int) models.Strategy {
	for _, s := range strategies {
		if s.ChunkIndex == index && s.Strategy != "" {
			return s.Strategy
		}
	}
	return models.StrategyFree
}

// translateChunk runs one chunk through draft, problem-line repair and the
// back-translation loop, persisting traces as it goes. Only stop requests
// and context cancellation propagate; anything else degrades to per-line
// fallback so one bad chunk cannot sink the run.
func (a *Agent) translateChunk(ctx context.Context, job chunkJob, in Input) (*ChunkResult, error) {
	if a.rt.Stopped() {
		return nil, agent.ErrStopped
	}

	strategy := strategyFor(in.Strategies, job.index)
	sources := make([]string, len(job.items))
	for i, it := range job.items {
		sources[i] = it.SourceText
	}

	drafts, err := a.draftBatch(ctx, job, sources, strategy, in)
	if err != nil {
		if abort(ctx, err) {
			return nil, err
		}
		slog.Warn("Chunk draft failed, translating line by line",
			"chunk", job.index,
			"lines", len(sources),
			"error", err)
		drafts, err = a.lineByLine(ctx, job, sources, in)
		if err != nil {
			return nil, err
		}
	} else if err := a.retryProblemLines(ctx, job, sources, drafts, in); err != nil {
		return nil, err
	}

	for i, it := range job.items {
		a.persistDraft(ctx, it, drafts[i], strategy)
	}

	outcome := a.tear(ctx, job.index, sources, drafts, in)

	if !in.DraftOnly {
		for i, it := range job.items {
			a.persistEvaluation(ctx, it, outcome.scores[i], outcome.backs[i])
			if outcome.refined[i] {
				a.persistRefine(ctx, it, outcome.texts[i], "back-translation score below threshold")
			}
		}
	}

	return &ChunkResult{
		Index:        job.index,
		FilePath:     job.filePath,
		Items:        job.items,
		Sources:      sources,
		Translations: outcome.texts,
		Backs:        outcome.backs,
		Scores:       outcome.scores,
		Strategy:     strategy,
	}, nil
}

// draftBatch translates a whole chunk in one call under the strict N-line
// contract. Any shortfall in the parsed reply fails the batch so the
// caller can fall back to per-line calls.
func (a *Agent) draftBatch(ctx context.Context, job chunkJob, sources []string, strategy models.Strategy, in Input) ([]string, error) {
	system := draftSystemPrompt(sources, strategy, in.Table, in.Domain, in.Style, agent.LanguageName(in.TargetLanguage))
	user := draftUserPrompt(sources, job.context)

	resp, err := agent.CallWithRetry(ctx, a.rt, system, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return nil, err
	}
	if resp.Skipped {
		return nil, fmt.Errorf("draft skipped by provider: %s", resp.SkipReason)
	}

	parsed := textparse.Extract(resp.Content, len(sources))
	if len(parsed) != len(sources) {
		return nil, fmt.Errorf("parsed %d of %d lines", len(parsed), len(sources))
	}

	out := make([]string, len(sources))
	for i := range sources {
		out[i] = parsed[i]
	}
	return out, nil
}

// problemLine reports output that is empty or suspiciously short against a
// long source line.
func problemLine(source, output string) bool {
	if strings.TrimSpace(output) == "" {
		return true
	}
	srcRunes := utf8.RuneCountInString(source)
	outRunes := utf8.RuneCountInString(output)
	return srcRunes > problemSourceRunes && float64(outRunes) < problemOutputRatio*float64(srcRunes)
}

// retryProblemLines re-translates empty or truncated lines one at a time,
// mutating drafts in place. A line that stays broken is marked failed with
// its source preserved.
func (a *Agent) retryProblemLines(ctx context.Context, job chunkJob, sources, drafts []string, in Input) error {
	for i, src := range sources {
		if !problemLine(src, drafts[i]) {
			continue
		}
		slog.Warn("Problem line, retrying individually",
			"chunk", job.index,
			"line", i+1,
			"source_runes", utf8.RuneCountInString(src),
			"output_runes", utf8.RuneCountInString(drafts[i]))

		single, err := a.translateSingle(ctx, src, job.context, in)
		if err != nil {
			if abort(ctx, err) {
				return err
			}
			single = ""
		}
		if single == "" || problemLine(src, single) {
			slog.Warn("Line failed after retry, keeping source", "chunk", job.index, "line", i+1)
			drafts[i] = FailedPrefix + src
			continue
		}
		drafts[i] = single
	}
	return nil
}

// lineByLine is the whole-chunk fallback when the batch contract breaks:
// one call per line, failures marked instead of dropped.
func (a *Agent) lineByLine(ctx context.Context, job chunkJob, sources []string, in Input) ([]string, error) {
	out := make([]string, len(sources))
	for i, src := range sources {
		single, err := a.translateSingle(ctx, src, job.context, in)
		if err != nil {
			if abort(ctx, err) {
				return nil, err
			}
			slog.Warn("Single-line translation failed",
				"chunk", job.index,
				"line", i+1,
				"error", err)
			single = ""
		}
		if single == "" {
			out[i] = FailedPrefix + src
			continue
		}
		out[i] = single
	}
	return out, nil
}

// translateSingle translates one line with the simplified prompt. A
// provider skip yields an empty result, not an error.
func (a *Agent) translateSingle(ctx context.Context, source string, context []string, in Input) (string, error) {
	system := singleSystemPrompt(source, in.Table, agent.LanguageName(in.TargetLanguage))
	user := singleUserPrompt(source, context)

	resp, err := agent.CallWithRetry(ctx, a.rt, system, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return "", err
	}
	if resp.Skipped {
		return "", nil
	}
	return textparse.CleanLine(resp.Content), nil
}

// abort reports whether err must end the run rather than degrade a chunk.
func abort(ctx context.Context, err error) bool {
	return errors.Is(err, agent.ErrStopped) || ctx.Err() != nil
}
