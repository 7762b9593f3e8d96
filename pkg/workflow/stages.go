package workflow

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/pgvector/pgvector-go"

	"github.com/linguaflow/linguaflow/pkg/agent/planner"
	"github.com/linguaflow/linguaflow/pkg/agent/preprocess"
	"github.com/linguaflow/linguaflow/pkg/agent/terminology"
	"github.com/linguaflow/linguaflow/pkg/agent/translator"
	"github.com/linguaflow/linguaflow/pkg/chunk"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// planning sizes the workload and fixes the execution envelope. Chunk
// strategies are planned per file over the translator's own pending filter
// and then renumbered globally, so strategy indices line up with the jobs
// the translator will build from the same items.
func (m *Manager) planning(ctx context.Context) error {
	cfg := m.cfg()
	items := m.state.Project.Items()

	m.state.TaskInfo = planner.AnalyzeTask(items)
	m.state.Plan = planner.BuildExecutionPlan(m.state.TaskInfo, cfg.UserThreadCounts)

	if cfg.UseMultiAgentMode {
		m.state.Strategies = m.planStrategies()
		m.state.Resources = planner.BuildResourcePlan(m.state.TaskInfo, m.state.Strategies)
		m.state.StyleGuide = planner.BuildStyleGuide(items)
		m.persistGuide(ctx)
	}

	m.rt.Stats.StageProgress(1, 1, "")
	slog.Info("Execution plan ready",
		"units", m.state.TaskInfo.TotalUnits,
		"complexity", m.state.TaskInfo.Complexity,
		"workers", m.state.Plan.MaxWorkers,
		"chunks", len(m.state.Strategies),
		"estimated_calls", m.state.Resources.APICalls)
	return nil
}

func (m *Manager) planStrategies() []planner.ChunkStrategy {
	var out []planner.ChunkStrategy
	for _, doc := range m.state.Project.Documents {
		var pending []*models.Item
		for _, it := range doc.Items {
			if it.Untranslated() && strings.TrimSpace(it.SourceText) != "" {
				pending = append(pending, it)
			}
		}
		if len(pending) == 0 {
			continue
		}
		for _, cs := range planner.PlanChunkStrategies(pending, chunk.DefaultTranslationBudget) {
			cs.ChunkIndex = len(out)
			out = append(out, cs)
		}
	}
	return out
}

func (m *Manager) persistGuide(ctx context.Context) {
	if m.rt.Works == nil || m.state.WorkID == 0 {
		return
	}
	guide, _ := json.Marshal(m.state.StyleGuide)
	if err := m.rt.Works.UpdateTranslationGuide(ctx, m.state.WorkID, string(guide)); err != nil {
		slog.Warn("Failed to persist style guide", "work_id", m.state.WorkID, "error", err)
	}
}

// preprocessing profiles the document set and records the result as the
// work's topic info.
func (m *Manager) preprocessing(ctx context.Context) error {
	m.state.Analysis = preprocess.Analyze(m.state.Project.Items())
	m.rt.Stats.StageProgress(1, 1, "")
	slog.Info("Document profiled",
		"domain", m.state.Analysis.Domain,
		"style", m.state.Analysis.Style,
		"split_candidates", len(m.state.Analysis.SplitCandidates))

	if m.rt.Works != nil && m.state.WorkID != 0 {
		if err := m.rt.Works.UpdateTopicInfo(ctx, m.state.WorkID, m.state.Analysis.TopicInfo()); err != nil {
			slog.Warn("Failed to persist topic info", "work_id", m.state.WorkID, "error", err)
		}
	}
	return nil
}

// terminology fixes the term table. A table restored from a previous run is
// reused as-is; outside multi-agent mode no identification runs and
// translation proceeds with whatever was restored.
func (m *Manager) terminology(ctx context.Context) error {
	cfg := m.cfg()
	if !cfg.UseMultiAgentMode {
		if m.state.Table == nil {
			m.state.Table = models.TermTable{}
		}
		m.rt.Stats.StageProgress(1, 1, "")
		slog.Info("Terminology identification off, reusing stored table", "terms", len(m.state.Table))
		return nil
	}

	res, err := terminology.New(m.rt).Run(ctx, terminology.Input{
		WorkID:         m.state.WorkID,
		Items:          m.state.Project.Items(),
		Domain:         m.state.Analysis.Domain,
		TargetLanguage: cfg.TargetLanguage,
		Existing:       m.state.Table,
		Retry:          m.retryPolicy(),
		Intervene:      m.intervene(),
	})
	if err != nil {
		return err
	}
	m.state.Table = res.Table
	m.state.Terms = res.Terms

	proj := m.state.Project
	proj.SetTermTable(m.state.Table)
	proj.SetMemory(map[string]string{
		"domain": m.state.Analysis.Domain,
		"style":  m.state.Analysis.Style,
	})
	m.persistExtra(ctx)
	return nil
}

// translating runs the translation core and guards its contract: pending
// lines in, translated lines out. A run that had work and produced nothing
// is broken and must fail loudly rather than save empty artifacts.
func (m *Manager) translating(ctx context.Context) error {
	cfg := m.cfg()
	proj := m.state.Project
	pending := proj.PendingCount()

	res, err := translator.New(m.rt).Run(ctx, translator.Input{
		Items:           proj.Items(),
		Table:           m.state.Table,
		Domain:          m.state.Analysis.Domain,
		Style:           m.state.Analysis.Style,
		SourceLanguage:  cfg.SourceLanguage,
		TargetLanguage:  cfg.TargetLanguage,
		Strategies:      m.state.Strategies,
		MaxWorkers:      m.state.Plan.MaxWorkers,
		ContextLines:    cfg.PreLineCounts,
		Budget:          chunk.DefaultTranslationBudget,
		Retry:           m.retryPolicy(),
		DraftOnly:       !cfg.UseMultiAgentMode,
		ReviewEnabled:   cfg.EnableHumanReview && cfg.UseMultiAgentMode,
		ReviewThreshold: cfg.ReviewScoreThreshold,
		Intervene:       m.intervene(),
	})
	if err != nil {
		return err
	}
	m.state.Translation = res

	if pending > 0 && res.Translated == 0 {
		return ErrNoTranslationResults
	}
	if cfg.UseMultiAgentMode {
		m.commitKnowledge(ctx, res)
	}
	return nil
}

// Knowledge commit bounds: only confidently scored pairs are worth
// retrieving later, and both sides are truncated so entries stay
// prompt-sized.
const (
	knowledgeMinScore  = 8.0
	knowledgeMaxPairs  = 50
	knowledgePairRunes = 100
	knowledgeEntryType = "tm"
)

// commitKnowledge stores the run's best source/translation pairs in the
// work's knowledge base for retrieval by later runs. Failures only warn.
func (m *Manager) commitKnowledge(ctx context.Context, res *translator.Result) {
	if m.rt.Knowledge == nil || m.state.WorkID == 0 {
		return
	}
	contents := knowledgePairs(res)
	if len(contents) == 0 {
		return
	}

	var vecs []pgvector.Vector
	if m.rt.Embedder != nil {
		vs, err := m.rt.Embedder.Embed(ctx, contents)
		if err != nil {
			slog.Warn("Failed to embed knowledge entries", "error", err)
		} else {
			vecs = vs
		}
	}

	tags := []string{m.state.Analysis.Domain}
	added := 0
	for i, content := range contents {
		var vec *pgvector.Vector
		if i < len(vecs) {
			vec = &vecs[i]
		}
		if _, err := m.rt.Knowledge.AddEntry(ctx, m.state.WorkID, content, knowledgeEntryType, vec, tags); err != nil {
			slog.Warn("Failed to store knowledge entry", "error", err)
			continue
		}
		added++
	}
	slog.Info("Knowledge base updated", "work_id", m.state.WorkID, "entries", added)
}

// knowledgePairs selects the highest-confidence source/translation pairs
// from a finished translation, capped and truncated.
func knowledgePairs(res *translator.Result) []string {
	var out []string
	for _, ch := range res.Chunks {
		for i := range ch.Sources {
			if ch.Scores[i] < knowledgeMinScore {
				continue
			}
			text := strings.TrimSpace(ch.Translations[i])
			if text == "" || strings.HasPrefix(text, translator.FailedPrefix) {
				continue
			}
			out = append(out, truncateRunes(ch.Sources[i], knowledgePairRunes)+" => "+truncateRunes(text, knowledgePairRunes))
			if len(out) >= knowledgeMaxPairs {
				return out
			}
		}
	}
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
