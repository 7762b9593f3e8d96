package terminology

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/ratelimit"
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// routedLLM answers by prompt kind: identification requests get the JSON
// reply, verification requests the textarea reply. Identification runs in
// parallel, so the stub locks.
type routedLLM struct {
	mu          sync.Mutex
	identify    string
	verify      string
	identifyErr error
	verifyErr   error
	verifyReqs  []string
	calls       int
}

func (s *routedLLM) Send(_ context.Context, req *agent.Request) (*agent.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	switch {
	case strings.Contains(req.SystemPrompt, "术语识别专家"):
		if s.identifyErr != nil {
			return nil, s.identifyErr
		}
		return &agent.Response{Content: s.identify, PromptTokens: 10, CompletionTokens: 5}, nil
	case strings.Contains(req.SystemPrompt, "术语翻译专家"):
		if s.verifyErr != nil {
			return nil, s.verifyErr
		}
		if len(req.Messages) > 0 {
			s.verifyReqs = append(s.verifyReqs, req.Messages[0].Content)
		}
		return &agent.Response{Content: s.verify, PromptTokens: 10, CompletionTokens: 5}, nil
	}
	return nil, fmt.Errorf("unexpected system prompt: %.30s", req.SystemPrompt)
}

func (s *routedLLM) Close() error { return nil }

func (s *routedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakeNER struct {
	entities []agent.Entity
	err      error
}

func (f fakeNER) RecognizeEntities(context.Context, string) ([]agent.Entity, error) {
	return f.entities, f.err
}

func newRuntime(llm agent.LLMClient, ner agent.NERProvider) *agent.Runtime {
	if ner == nil {
		ner = agent.NoopNER{}
	}
	return &agent.Runtime{
		RunID:    "run-terms",
		Stats:    stats.NewTracker(nil),
		Limiter:  ratelimit.New(0, 0),
		LLM:      llm,
		NER:      ner,
		Embedder: agent.NoopEmbedder{},
		Platform: config.PlatformConfig{Provider: "openai", Model: "gpt-4o"},
	}
}

func sampleItems() []*models.Item {
	return []*models.Item{
		{RowIndex: 0, AtomID: 11, SourceText: "Alice studies quantum entanglement."},
		{RowIndex: 1, AtomID: 12, SourceText: "The lab repeated the experiment."},
	}
}

const identifyReplyJSON = `{"terms": [{"term": "quantum entanglement", "category": "domain_term", "context": "Alice studies quantum entanglement.", "meaning": "物理概念", "translation_strategy": "直译"}]}`

func termByKey(t *testing.T, terms []models.Term, key string) models.Term {
	t.Helper()
	for _, term := range terms {
		if term.EntryKey == key {
			return term
		}
	}
	t.Fatalf("term %q not found", key)
	return models.Term{}
}

func TestRun(t *testing.T) {
	t.Run("reuses an existing table without model calls", func(t *testing.T) {
		llm := &routedLLM{}
		a := New(newRuntime(llm, nil))

		existing := models.TermTable{"Alice": "爱丽丝"}
		res, err := a.Run(context.Background(), Input{Items: sampleItems(), Existing: existing})

		require.NoError(t, err)
		assert.Equal(t, existing, res.Table)
		assert.Zero(t, llm.callCount())
	})

	t.Run("merges entities with identified terms and fixes renderings", func(t *testing.T) {
		llm := &routedLLM{
			identify: identifyReplyJSON,
			verify:   "<textarea>\n1. 爱丽丝\n2. 量子纠缠\n</textarea>",
		}
		ner := fakeNER{entities: []agent.Entity{{Text: "Alice", Label: "PERSON", Count: 3}}}
		a := New(newRuntime(llm, ner))

		res, err := a.Run(context.Background(), Input{
			WorkID:         7,
			Items:          sampleItems(),
			Domain:         "academic",
			TargetLanguage: "zh",
		})

		require.NoError(t, err)
		assert.Equal(t, models.TermTable{
			"Alice":                "爱丽丝",
			"quantum entanglement": "量子纠缠",
		}, res.Table)
		require.Len(t, res.Terms, 2)

		alice := termByKey(t, res.Terms, "Alice")
		assert.Equal(t, models.WordTypeEntity, alice.WordType)
		assert.Equal(t, priorityHigh, alice.Priority)
		assert.Equal(t, "PERSON", alice.Meaning)
		assert.Equal(t, []int{11}, alice.AtomRefs)

		qe := termByKey(t, res.Terms, "quantum entanglement")
		assert.Equal(t, models.WordTypeTerm, qe.WordType)
		assert.Equal(t, "academic", qe.DomainTag)
		assert.Equal(t, []int{11}, qe.AtomRefs)
		require.Len(t, qe.Translations, 1)
		assert.Equal(t, "量子纠缠", qe.Translations[0].Translation)
		assert.Equal(t, "LLM", qe.Translations[0].Source)
		assert.Equal(t, 1, qe.Translations[0].Rank)
		assert.Equal(t, "直译", qe.Translations[0].Rationale)
		require.Len(t, qe.Examples, 1)

		// Entities precede identified terms in the verification batch.
		require.Len(t, llm.verifyReqs, 1)
		assert.Contains(t, llm.verifyReqs[0], "1. Alice")
		assert.Contains(t, llm.verifyReqs[0], "2. quantum entanglement")
		assert.Contains(t, llm.verifyReqs[0], "中文")
	})

	t.Run("entity wins a duplicate term name", func(t *testing.T) {
		llm := &routedLLM{
			identify: `{"terms": [{"term": "alice", "category": "domain_term"}]}`,
			verify:   "<textarea>\n1. 爱丽丝\n</textarea>",
		}
		ner := fakeNER{entities: []agent.Entity{{Text: "Alice", Label: "PERSON"}}}
		a := New(newRuntime(llm, ner))

		res, err := a.Run(context.Background(), Input{Items: sampleItems()})

		require.NoError(t, err)
		require.Len(t, res.Terms, 1)
		assert.Equal(t, "Alice", res.Terms[0].EntryKey)
		assert.Equal(t, models.WordTypeEntity, res.Terms[0].WordType)
	})

	t.Run("identification failure still keeps entity terms", func(t *testing.T) {
		llm := &routedLLM{
			identifyErr: &agent.ProviderError{Message: "boom", Code: "500"},
			verify:      "<textarea>\n1. 爱丽丝\n</textarea>",
		}
		ner := fakeNER{entities: []agent.Entity{{Text: "Alice", Label: "PERSON"}}}
		a := New(newRuntime(llm, ner))

		res, err := a.Run(context.Background(), Input{Items: sampleItems()})

		require.NoError(t, err)
		assert.Equal(t, models.TermTable{"Alice": "爱丽丝"}, res.Table)
	})

	t.Run("verification failure leaves terms without renderings", func(t *testing.T) {
		llm := &routedLLM{
			identify:  identifyReplyJSON,
			verifyErr: &agent.ProviderError{Message: "boom", Code: "500"},
		}
		a := New(newRuntime(llm, nil))

		res, err := a.Run(context.Background(), Input{Items: sampleItems()})

		require.NoError(t, err)
		assert.Empty(t, res.Table)
		require.Len(t, res.Terms, 1)
		assert.Empty(t, res.Terms[0].EntryVal)
	})

	t.Run("ner failure is tolerated", func(t *testing.T) {
		llm := &routedLLM{
			identify: identifyReplyJSON,
			verify:   "<textarea>\n1. 量子纠缠\n</textarea>",
		}
		ner := fakeNER{err: fmt.Errorf("model missing")}
		a := New(newRuntime(llm, ner))

		res, err := a.Run(context.Background(), Input{Items: sampleItems()})

		require.NoError(t, err)
		assert.Equal(t, models.TermTable{"quantum entanglement": "量子纠缠"}, res.Table)
	})

	t.Run("stop flag aborts the stage", func(t *testing.T) {
		llm := &routedLLM{identify: identifyReplyJSON}
		rt := newRuntime(llm, nil)
		rt.Stop()
		a := New(rt)

		_, err := a.Run(context.Background(), Input{Items: sampleItems()})

		assert.ErrorIs(t, err, agent.ErrStopped)
	})

	t.Run("no translatable items means an empty table", func(t *testing.T) {
		llm := &routedLLM{}
		a := New(newRuntime(llm, nil))

		res, err := a.Run(context.Background(), Input{Items: []*models.Item{{SourceText: "   "}}})

		require.NoError(t, err)
		assert.Empty(t, res.Table)
		assert.Empty(t, res.Terms)
		assert.Zero(t, llm.callCount())
	})
}

func TestRunReview(t *testing.T) {
	newAgent := func(intervene func(context.Context, string, any) (any, error)) (*Agent, Input) {
		llm := &routedLLM{
			identify: identifyReplyJSON,
			verify:   "<textarea>\n1. 爱丽丝\n2. 量子纠缠\n</textarea>",
		}
		ner := fakeNER{entities: []agent.Entity{{Text: "Alice", Label: "PERSON"}}}
		a := New(newRuntime(llm, ner))
		return a, Input{WorkID: 7, Items: sampleItems(), Intervene: intervene}
	}

	t.Run("approved terms rebuild the table", func(t *testing.T) {
		var payload ReviewPayload
		a, in := newAgent(func(_ context.Context, taskType string, body any) (any, error) {
			assert.Equal(t, models.TaskTerminologyReview, taskType)
			payload = body.(ReviewPayload)
			return models.TermReviewResult{ApprovedTerms: []models.ApprovedTerm{
				{Term: "quantum entanglement", Translation: "量子纠缠态"},
			}}, nil
		})

		res, err := a.Run(context.Background(), in)

		require.NoError(t, err)
		assert.Len(t, payload.Terms, 2)
		assert.Equal(t, models.TermTable{"quantum entanglement": "量子纠缠态"}, res.Table)

		qe := termByKey(t, res.Terms, "quantum entanglement")
		assert.True(t, qe.HumanConfirmed)
		assert.Equal(t, "量子纠缠态", qe.EntryVal)

		alice := termByKey(t, res.Terms, "Alice")
		assert.False(t, alice.HumanConfirmed)
		assert.Equal(t, "爱丽丝", alice.EntryVal)
	})

	t.Run("nil reply keeps machine renderings", func(t *testing.T) {
		a, in := newAgent(func(context.Context, string, any) (any, error) { return nil, nil })

		res, err := a.Run(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, models.TermTable{
			"Alice":                "爱丽丝",
			"quantum entanglement": "量子纠缠",
		}, res.Table)
		for _, term := range res.Terms {
			assert.False(t, term.HumanConfirmed)
		}
	})

	t.Run("callback error aborts the stage", func(t *testing.T) {
		a, in := newAgent(func(context.Context, string, any) (any, error) {
			return nil, context.Canceled
		})

		_, err := a.Run(context.Background(), in)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseIdentifyReply(t *testing.T) {
	t.Run("object with surrounding prose", func(t *testing.T) {
		raw := "识别结果如下：\n```json\n" + identifyReplyJSON + "\n```\n希望有帮助。"

		cands, err := parseIdentifyReply(raw)

		require.NoError(t, err)
		require.Len(t, cands, 1)
		assert.Equal(t, "quantum entanglement", cands[0].Term)
		assert.Equal(t, "domain_term", cands[0].Category)
		assert.Equal(t, priorityMedium, cands[0].Priority)
	})

	t.Run("bare array form", func(t *testing.T) {
		raw := `[{"term": "灵根", "category": "cultural_expression"}]`

		cands, err := parseIdentifyReply(raw)

		require.NoError(t, err)
		require.Len(t, cands, 1)
		assert.Equal(t, "cultural_expression", cands[0].Category)
	})

	t.Run("trailing commas are repaired", func(t *testing.T) {
		raw := `{"terms": [{"term": "API", "category": "domain_term",},]}`

		cands, err := parseIdentifyReply(raw)

		require.NoError(t, err)
		require.Len(t, cands, 1)
		assert.Equal(t, "API", cands[0].Term)
	})

	t.Run("blank names are dropped and categories defaulted", func(t *testing.T) {
		raw := `{"terms": [{"term": "  "}, {"term": "Mana"}]}`

		cands, err := parseIdentifyReply(raw)

		require.NoError(t, err)
		require.Len(t, cands, 1)
		assert.Equal(t, "Mana", cands[0].Term)
		assert.Equal(t, "domain_term", cands[0].Category)
	})

	t.Run("reply without JSON is an error", func(t *testing.T) {
		_, err := parseIdentifyReply("抱歉，我无法识别术语。")
		assert.Error(t, err)
	})
}

func TestAtomRefs(t *testing.T) {
	t.Run("matches case-insensitively and skips unpersisted items", func(t *testing.T) {
		items := []*models.Item{
			{AtomID: 1, SourceText: "The MANA pool refills."},
			{AtomID: 0, SourceText: "mana everywhere"},
			{AtomID: 3, SourceText: "nothing relevant"},
			{AtomID: 4, SourceText: "Mana again"},
		}

		assert.Equal(t, []int{1, 4}, atomRefs(items, "mana"))
	})

	t.Run("caps the reference list", func(t *testing.T) {
		items := make([]*models.Item, 15)
		for i := range items {
			items[i] = &models.Item{AtomID: i + 1, SourceText: "mana"}
		}

		assert.Len(t, atomRefs(items, "mana"), atomRefCap)
	})
}

func TestBuildTermsLexiconSource(t *testing.T) {
	cands := []*candidate{{
		Term:        "Mana",
		Category:    "domain_term",
		Translation: "法力",
		FromLexicon: true,
	}}

	terms := buildTerms(cands, nil, "literary")

	require.Len(t, terms, 1)
	require.Len(t, terms[0].Translations, 1)
	assert.Equal(t, "lexicon", terms[0].Translations[0].Source)
}
