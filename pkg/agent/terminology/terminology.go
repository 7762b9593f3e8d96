// Package terminology builds the per-work term table before translation
// starts. It merges sidecar entity recognition with LLM identification of
// domain terms and culture-bound expressions, fixes a rendering for each
// term, and persists everything to the lexicon so later runs and the review
// API see the same entries.
package terminology

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/kaptinlin/jsonrepair"
	"golang.org/x/sync/errgroup"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/chunk"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/textparse"
)

const (
	// maxIdentifyWorkers bounds parallel identification batches.
	maxIdentifyWorkers = 5

	// identifySampleRunes is how much of each line feeds the
	// identification prompt. Terms repeat, so a prefix is enough.
	identifySampleRunes = 200

	// atomRefCap bounds how many atom ids a term records as evidence.
	atomRefCap = 10

	priorityHigh   = "high"
	priorityMedium = "medium"
)

// Agent runs the terminology stage.
type Agent struct {
	rt *agent.Runtime
}

// New returns a terminology agent over the run's shared dependencies.
func New(rt *agent.Runtime) *Agent {
	return &Agent{rt: rt}
}

// Input is what the workflow hands the stage.
type Input struct {
	WorkID int
	Items  []*models.Item
	// Domain comes from preprocessing and steers the identification
	// prompt; empty means general.
	Domain string
	// TargetLanguage is the config language code; renderings are
	// requested in this language.
	TargetLanguage string
	// Existing is the table restored from a previous run. Non-empty
	// means the stage has nothing to do.
	Existing  models.TermTable
	Retry     agent.RetryPolicy
	Intervene review.InterventionFunc
}

// Result is merged back into workflow state. Table holds only terms with a
// fixed rendering; Terms lists everything identified, including entries a
// reviewer rejected.
type Result struct {
	Table models.TermTable
	Terms []models.Term
}

// ReviewPayload is the terminology_review task body shown to a human.
type ReviewPayload struct {
	Terms []models.Term `json:"terms"`
}

// candidate is one identified term before a rendering is fixed.
type candidate struct {
	Term        string
	Category    string
	Context     string
	Meaning     string
	Strategy    string
	Priority    string
	Translation string
	FromLexicon bool
}

// Run executes the stage: reuse check, entity merge, LLM identification,
// rendering verification, lexicon persistence, optional human review.
func (a *Agent) Run(ctx context.Context, in Input) (*Result, error) {
	if len(in.Existing) > 0 {
		slog.Info("Reusing existing term table", "terms", len(in.Existing))
		return &Result{Table: in.Existing}, nil
	}

	items := withSource(in.Items)
	if len(items) == 0 {
		return &Result{Table: models.TermTable{}}, nil
	}

	candidates := a.recognizeEntities(ctx, items)
	identified, err := a.identify(ctx, items, in)
	if err != nil {
		return nil, err
	}
	candidates = dedupe(append(candidates, identified...))
	slog.Info("Term candidates identified", "count", len(candidates))

	a.fillFromLexicon(ctx, in.WorkID, candidates)
	if err := a.verify(ctx, candidates, in); err != nil {
		return nil, err
	}

	terms := buildTerms(candidates, items, in.Domain)
	a.persist(ctx, in.WorkID, terms)

	return a.applyReview(ctx, in, terms)
}

// withSource drops items without translatable text.
func withSource(items []*models.Item) []*models.Item {
	out := make([]*models.Item, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.SourceText) != "" {
			out = append(out, it)
		}
	}
	return out
}

// recognizeEntities merges sidecar NER hits as high-priority entity terms.
// Recognition is best-effort: on any failure the model identifies names on
// its own during the LLM pass.
func (a *Agent) recognizeEntities(ctx context.Context, items []*models.Item) []*candidate {
	var text strings.Builder
	for _, it := range items {
		text.WriteString(it.SourceText)
		text.WriteByte('\n')
	}

	entities, err := a.rt.NER.RecognizeEntities(ctx, text.String())
	if err != nil {
		slog.Warn("Entity recognition unavailable", "error", err)
		return nil
	}
	if len(entities) == 0 {
		return nil
	}

	out := make([]*candidate, 0, len(entities))
	for _, ent := range entities {
		name := strings.TrimSpace(ent.Text)
		if name == "" {
			continue
		}
		out = append(out, &candidate{
			Term:     name,
			Category: "named_entity",
			Meaning:  ent.Label,
			Priority: priorityHigh,
		})
	}
	slog.Info("Entities recognized", "count", len(out))
	return out
}

// identify asks the model for domain terms and culture-bound expressions,
// batch by batch. A failed batch contributes no terms; only stop requests
// and context cancellation abort the stage.
func (a *Agent) identify(ctx context.Context, items []*models.Item, in Input) ([]*candidate, error) {
	batches := chunk.Split(items, chunk.TermIdentifyBudget)
	if len(batches) == 0 {
		return nil, nil
	}
	if len(batches) > 1 {
		slog.Info("Identifying terms in parallel", "batches", len(batches), "items", len(items))
	}

	results := make([][]*candidate, len(batches))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(len(batches), maxIdentifyWorkers))

	for i, batch := range batches {
		g.Go(func() error {
			found, err := a.identifyBatch(gctx, batch.Items, in)
			if err != nil {
				if errors.Is(err, agent.ErrStopped) || gctx.Err() != nil {
					return err
				}
				slog.Warn("Term identification batch failed",
					"batch", i+1,
					"batches", len(batches),
					"error", err)
				return nil
			}
			results[i] = found
			n := int(done.Add(1))
			a.rt.Stats.StageProgress(n, len(batches), fmt.Sprintf("identify %d/%d", n, len(batches)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*candidate
	for _, found := range results {
		out = append(out, found...)
	}
	return out, nil
}

func (a *Agent) identifyBatch(ctx context.Context, items []*models.Item, in Input) ([]*candidate, error) {
	samples := make([]string, 0, len(items))
	for _, it := range items {
		samples = append(samples, truncateRunes(it.SourceText, identifySampleRunes))
	}

	system := identifySystemPrompt(in.Domain)
	user := "请识别以下文本中的领域术语和文化负载词：\n\n" + strings.Join(samples, "\n---\n")

	resp, err := agent.CallWithRetry(ctx, a.rt, system, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return nil, err
	}
	if resp.Skipped {
		return nil, nil
	}
	return parseIdentifyReply(resp.Content)
}

type identifiedTerm struct {
	Term                string `json:"term"`
	Category            string `json:"category"`
	Context             string `json:"context"`
	Meaning             string `json:"meaning"`
	TranslationStrategy string `json:"translation_strategy"`
}

type identifyReply struct {
	Terms []identifiedTerm `json:"terms"`
}

// parseIdentifyReply recovers the terms array from a free-form reply. The
// payload is sliced to the outermost JSON value and repaired when plain
// unmarshalling fails.
func parseIdentifyReply(raw string) ([]*candidate, error) {
	payload := sliceJSON(raw)
	if payload == "" {
		return nil, errors.New("reply carries no JSON")
	}

	var reply identifyReply
	if strings.HasPrefix(payload, "[") {
		// Some models return the bare array despite the contract.
		if err := decodeRepaired(payload, &reply.Terms); err != nil {
			return nil, fmt.Errorf("unparseable terms array: %w", err)
		}
	} else if err := decodeRepaired(payload, &reply); err != nil {
		return nil, fmt.Errorf("unparseable terms object: %w", err)
	}

	out := make([]*candidate, 0, len(reply.Terms))
	for _, t := range reply.Terms {
		name := strings.TrimSpace(t.Term)
		if name == "" {
			continue
		}
		category := t.Category
		if category == "" {
			category = "domain_term"
		}
		out = append(out, &candidate{
			Term:     name,
			Category: category,
			Context:  t.Context,
			Meaning:  t.Meaning,
			Strategy: t.TranslationStrategy,
			Priority: priorityMedium,
		})
	}
	return out, nil
}

// sliceJSON cuts raw down to the outermost JSON object or array, dropping
// prose the model wrapped around it.
func sliceJSON(raw string) string {
	if start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}"); start >= 0 && end > start {
		return raw[start : end+1]
	}
	if start, end := strings.Index(raw, "["), strings.LastIndex(raw, "]"); start >= 0 && end > start {
		return raw[start : end+1]
	}
	return ""
}

func decodeRepaired(payload string, v any) error {
	if err := json.Unmarshal([]byte(payload), v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(payload)
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}
	return json.Unmarshal([]byte(repaired), v)
}

// dedupe keeps the first candidate per case-folded term name. Entity hits
// precede LLM hits in the input, so entities win duplicate names.
func dedupe(cands []*candidate) []*candidate {
	seen := make(map[string]bool, len(cands))
	out := make([]*candidate, 0, len(cands))
	for _, c := range cands {
		key := strings.ToLower(c.Term)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// fillFromLexicon reuses renderings the lexicon already holds for this work
// so verification only asks about genuinely new terms.
func (a *Agent) fillFromLexicon(ctx context.Context, workID int, cands []*candidate) {
	known := a.rt.Lexicon.TableFor(ctx, workID)
	if len(known) == 0 {
		return
	}
	lowered := make(map[string]string, len(known))
	for key, val := range known {
		lowered[strings.ToLower(key)] = val
	}

	reused := 0
	for _, c := range cands {
		if val, ok := lowered[strings.ToLower(c.Term)]; ok && val != "" {
			c.Translation = val
			c.FromLexicon = true
			reused++
		}
	}
	if reused > 0 {
		slog.Info("Reused lexicon renderings", "terms", reused)
	}
}

// verify fixes a rendering for every candidate that still lacks one. Term
// names are short, so batches pack many terms per call. A failed batch
// leaves its terms without a fixed rendering and translation falls back to
// the model's own judgement for them.
func (a *Agent) verify(ctx context.Context, cands []*candidate, in Input) error {
	var pending []*candidate
	for _, c := range cands {
		if c.Translation == "" {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	slog.Info("Verifying term renderings", "terms", len(pending))

	groups := chunk.SplitByText(pending, chunk.TermVerifyBudget, func(c *candidate) string { return c.Term })
	for gi, group := range groups {
		if err := a.verifyBatch(ctx, group, in); err != nil {
			if errors.Is(err, agent.ErrStopped) || ctx.Err() != nil {
				return err
			}
			slog.Warn("Term verification batch failed",
				"batch", gi+1,
				"batches", len(groups),
				"error", err)
		}
		a.rt.Stats.StageProgress(gi+1, len(groups), fmt.Sprintf("verify %d/%d", gi+1, len(groups)))
	}
	return nil
}

func (a *Agent) verifyBatch(ctx context.Context, group []*candidate, in Input) error {
	lines := make([]string, 0, len(group))
	for i, c := range group {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c.Term))
	}

	target := agent.LanguageName(in.TargetLanguage)
	system := verifySystemPrompt(len(group), target)
	user := fmt.Sprintf("请为以下术语提供准确的%s翻译：\n\n<textarea>\n%s\n</textarea>", target, strings.Join(lines, "\n"))

	resp, err := agent.CallWithRetry(ctx, a.rt, system, []agent.Message{{Role: agent.RoleUser, Content: user}}, in.Retry)
	if err != nil {
		return err
	}
	if resp.Skipped {
		return fmt.Errorf("verification skipped by provider: %s", resp.SkipReason)
	}

	parsed := textparse.Extract(resp.Content, len(group))
	if len(parsed) == 0 {
		return errors.New("no renderings parsed from reply")
	}

	filled := 0
	for i, c := range group {
		rendering, ok := parsed[i]
		if !ok {
			continue
		}
		rendering = strings.TrimSpace(textparse.CleanMarkdown(textparse.StripNumericPrefix(rendering)))
		if rendering == "" {
			continue
		}
		c.Translation = rendering
		filled++
	}
	slog.Debug("Term verification batch done", "filled", filled, "terms", len(group))
	return nil
}

// buildTerms shapes candidates into lexicon entries. Atom refs point at
// persisted lines whose source mentions the term, capped as evidence, not
// an index.
func buildTerms(cands []*candidate, items []*models.Item, domain string) []models.Term {
	terms := make([]models.Term, 0, len(cands))
	for _, c := range cands {
		term := models.Term{
			EntryKey:   c.Term,
			EntryVal:   c.Translation,
			WordType:   models.NormalizeWordType(c.Category),
			DomainTag:  domain,
			AtomRefs:   atomRefs(items, c.Term),
			Confidence: 1.0,
			Priority:   c.Priority,
			Context:    c.Context,
			Meaning:    c.Meaning,
		}
		if c.Context != "" {
			term.Examples = []string{c.Context}
		}
		if c.Translation != "" {
			source := "LLM"
			if c.FromLexicon {
				source = "lexicon"
			}
			term.Translations = []models.TermTranslation{{
				Translation: c.Translation,
				Source:      source,
				Confidence:  1.0,
				Rank:        1,
				Rationale:   c.Strategy,
			}}
		}
		terms = append(terms, term)
	}
	return terms
}

func atomRefs(items []*models.Item, term string) []int {
	lower := strings.ToLower(term)
	var refs []int
	for _, it := range items {
		if it.AtomID == 0 {
			continue
		}
		if strings.Contains(strings.ToLower(it.SourceText), lower) {
			refs = append(refs, it.AtomID)
			if len(refs) == atomRefCap {
				break
			}
		}
	}
	return refs
}

// persist upserts every term into the lexicon. Failures are logged and
// skipped; the in-memory table stays authoritative for this run.
func (a *Agent) persist(ctx context.Context, workID int, terms []models.Term) {
	for _, t := range terms {
		if err := a.rt.Lexicon.UpsertTerm(ctx, workID, t); err != nil {
			slog.Warn("Failed to persist term", "term", t.EntryKey, "error", err)
		}
	}
	slog.Info("Lexicon updated", "work_id", workID, "terms", len(terms))
}

// applyReview offers the identified terms to a human when a callback is
// attached. A nil reply keeps machine renderings; otherwise the table is
// rebuilt from the approved entries alone and those are confirmed in the
// lexicon.
func (a *Agent) applyReview(ctx context.Context, in Input, terms []models.Term) (*Result, error) {
	table := tableOf(terms)
	if in.Intervene == nil || len(terms) == 0 {
		return &Result{Table: table, Terms: terms}, nil
	}

	slog.Info("Requesting terminology review", "terms", len(terms))
	reply, err := in.Intervene(ctx, models.TaskTerminologyReview, ReviewPayload{Terms: terms})
	if err != nil {
		return nil, fmt.Errorf("terminology review failed: %w", err)
	}

	result := asTermReview(reply)
	if result == nil {
		slog.Info("Terminology review skipped, keeping machine renderings")
		return &Result{Table: table, Terms: terms}, nil
	}

	approved := make(models.TermTable, len(result.ApprovedTerms))
	for _, at := range result.ApprovedTerms {
		if strings.TrimSpace(at.Term) == "" || strings.TrimSpace(at.Translation) == "" {
			continue
		}
		approved[at.Term] = at.Translation
		if err := a.rt.Lexicon.ConfirmTerm(ctx, in.WorkID, at.Term, at.Translation); err != nil {
			slog.Warn("Failed to confirm term", "term", at.Term, "error", err)
		}
	}
	for i := range terms {
		if val, ok := approved[terms[i].EntryKey]; ok {
			terms[i].EntryVal = val
			terms[i].HumanConfirmed = true
		}
	}

	slog.Info("Terminology review applied", "approved", len(approved), "identified", len(terms))
	return &Result{Table: approved, Terms: terms}, nil
}

func asTermReview(reply any) *models.TermReviewResult {
	switch r := reply.(type) {
	case models.TermReviewResult:
		return &r
	case *models.TermReviewResult:
		return r
	default:
		return nil
	}
}

func tableOf(terms []models.Term) models.TermTable {
	table := models.TermTable{}
	for _, t := range terms {
		if t.EntryVal != "" {
			table[t.EntryKey] = t.EntryVal
		}
	}
	return table
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
