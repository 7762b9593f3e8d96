package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/planner"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/ratelimit"
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// scriptedLLM answers by prompt kind: batch drafts, single-line calls,
// back-translation, estimation and refinement each route on their system
// prompt. Chunks can run in parallel, so the stub locks.
type scriptedLLM struct {
	mu sync.Mutex

	draft       string
	draftErr    error
	single      func(user string) string
	singleErr   error
	back        string
	backErr     error
	estimate    string
	estimateErr error
	refine      string
	refineErr   error

	draftSystems []string
	draftReqs    []string
	singleReqs   []string
	backReqs     []string
	estimateReqs []string
	refineReqs   []string
	calls        int
}

func (s *scriptedLLM) Send(_ context.Context, req *agent.Request) (*agent.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	var user string
	if len(req.Messages) > 0 {
		user = req.Messages[0].Content
	}
	reply := func(content string) (*agent.Response, error) {
		return &agent.Response{Content: content, PromptTokens: 10, CompletionTokens: 5}, nil
	}

	switch {
	case strings.Contains(req.SystemPrompt, "回译专家"):
		s.backReqs = append(s.backReqs, user)
		if s.backErr != nil {
			return nil, s.backErr
		}
		return reply(s.back)
	case strings.Contains(req.SystemPrompt, "质量评估专家"):
		s.estimateReqs = append(s.estimateReqs, user)
		if s.estimateErr != nil {
			return nil, s.estimateErr
		}
		return reply(s.estimate)
	case strings.Contains(req.SystemPrompt, "修正专家"):
		s.refineReqs = append(s.refineReqs, user)
		if s.refineErr != nil {
			return nil, s.refineErr
		}
		return reply(s.refine)
	case strings.Contains(req.SystemPrompt, "逐行翻译"):
		s.draftSystems = append(s.draftSystems, req.SystemPrompt)
		s.draftReqs = append(s.draftReqs, user)
		if s.draftErr != nil {
			return nil, s.draftErr
		}
		return reply(s.draft)
	case strings.Contains(req.SystemPrompt, "直接输出译文"):
		s.singleReqs = append(s.singleReqs, user)
		if s.singleErr != nil {
			return nil, s.singleErr
		}
		if s.single != nil {
			return reply(s.single(user))
		}
		return reply("单行译文")
	}
	return nil, fmt.Errorf("unexpected system prompt: %.30s", req.SystemPrompt)
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// happyLLM scripts a clean three-line run: full draft, faithful
// back-translation, passing scores.
func happyLLM() *scriptedLLM {
	return &scriptedLLM{
		draft:    "<textarea>\n1. 爱丽丝回家了。\n2. 鲍勃留下了。\n3. 卡罗尔睡了。\n</textarea>",
		back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n3. Carol slept.\n</textarea>",
		estimate: "<textarea>\n1. 评分：9.0\n2. 评分：8.5\n3. 评分：9.5\n</textarea>",
	}
}

func newRuntime(llm agent.LLMClient) *agent.Runtime {
	return &agent.Runtime{
		RunID:    "run-translate",
		Stats:    stats.NewTracker(nil),
		Limiter:  ratelimit.New(0, 0),
		LLM:      llm,
		NER:      agent.NoopNER{},
		Embedder: agent.NoopEmbedder{},
		Platform: config.PlatformConfig{Provider: "openai", Model: "gpt-4o"},
	}
}

func sampleItems() []*models.Item {
	return []*models.Item{
		{RowIndex: 0, AtomID: 11, SourceText: "Alice went home.", FilePath: "ch1.txt"},
		{RowIndex: 1, AtomID: 12, SourceText: "Bob stayed.", FilePath: "ch1.txt"},
		{RowIndex: 2, AtomID: 13, SourceText: "Carol slept.", FilePath: "ch1.txt"},
	}
}

func baseInput(items []*models.Item) Input {
	return Input{
		Items:          items,
		SourceLanguage: "en",
		TargetLanguage: "zh",
		Retry:          agent.RetryPolicy{Attempts: 1},
	}
}

func TestRun(t *testing.T) {
	t.Run("translates a chunk through the full loop", func(t *testing.T) {
		llm := happyLLM()
		items := sampleItems()
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), baseInput(items))

		require.NoError(t, err)
		require.Len(t, res.Chunks, 1)
		assert.Equal(t, 3, res.Translated)

		ch := res.Chunks[0]
		assert.Equal(t, []string{"爱丽丝回家了。", "鲍勃留下了。", "卡罗尔睡了。"}, ch.Translations)
		assert.Equal(t, []string{"Alice went home.", "Bob stayed.", "Carol slept."}, ch.Backs)
		assert.Equal(t, []float64{9.0, 8.5, 9.5}, ch.Scores)
		assert.Equal(t, models.StrategyFree, ch.Strategy)

		assert.Equal(t, "爱丽丝回家了。", items[0].TranslatedText)
		assert.Equal(t, models.AtomFinalized, items[0].Status)
		assert.Equal(t, models.AtomFinalized, items[2].Status)

		assert.Len(t, llm.draftReqs, 1)
		assert.Empty(t, llm.singleReqs)
		assert.Contains(t, llm.draftReqs[0], "###待翻译文本（共3行）")
		assert.Contains(t, llm.draftReqs[0], "1.Alice went home.")
	})

	t.Run("injects the strategy and filtered term table", func(t *testing.T) {
		llm := happyLLM()
		in := baseInput(sampleItems())
		in.Table = models.TermTable{"Alice": "爱丽丝", "Zebra": "斑马"}
		in.Strategies = []planner.ChunkStrategy{{ChunkIndex: 0, Strategy: models.StrategyLiteral}}
		in.Domain = "科幻小说"
		a := New(newRuntime(llm))

		_, err := a.Run(context.Background(), in)

		require.NoError(t, err)
		require.Len(t, llm.draftSystems, 1)
		system := llm.draftSystems[0]
		assert.Contains(t, system, "直译策略")
		assert.Contains(t, system, "Alice|爱丽丝")
		assert.NotContains(t, system, "Zebra|斑马")
		assert.Contains(t, system, "文本领域：科幻小说")
	})

	t.Run("falls back line by line when the batch underdelivers", func(t *testing.T) {
		llm := happyLLM()
		llm.draft = "<textarea>\n1. 爱丽丝回家了。\n2. 鲍勃留下了。\n</textarea>"
		llm.single = func(user string) string {
			switch {
			case strings.Contains(user, "Alice"):
				return "译文甲"
			case strings.Contains(user, "Bob"):
				return "译文乙"
			default:
				return "译文丙"
			}
		}
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), baseInput(sampleItems()))

		require.NoError(t, err)
		assert.Len(t, llm.draftReqs, 1)
		assert.Len(t, llm.singleReqs, 3)
		assert.Equal(t, []string{"译文甲", "译文乙", "译文丙"}, res.Chunks[0].Translations)
		assert.Equal(t, 3, res.Translated)
	})

	t.Run("retries a truncated line individually", func(t *testing.T) {
		long := strings.Repeat("a", 150)
		items := sampleItems()
		items[1].SourceText = long
		recovered := strings.Repeat("好", 50)

		llm := happyLLM()
		llm.draft = "<textarea>\n1. 爱丽丝回家了。\n2. 短\n3. 卡罗尔睡了。\n</textarea>"
		llm.single = func(string) string { return recovered }
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), baseInput(items))

		require.NoError(t, err)
		assert.Len(t, llm.singleReqs, 1)
		assert.Contains(t, llm.singleReqs[0], long)
		assert.Equal(t, recovered, res.Chunks[0].Translations[1])
	})

	t.Run("marks a line failed when the retry stays truncated", func(t *testing.T) {
		long := strings.Repeat("a", 150)
		items := sampleItems()
		items[1].SourceText = long

		llm := happyLLM()
		llm.draft = "<textarea>\n1. 爱丽丝回家了。\n2. 短\n3. 卡罗尔睡了。\n</textarea>"
		llm.single = func(string) string { return "仍短" }
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), baseInput(items))

		require.NoError(t, err)
		assert.Len(t, llm.singleReqs, 1)
		assert.Equal(t, FailedPrefix+long, res.Chunks[0].Translations[1])
		assert.Equal(t, FailedPrefix+long, items[1].TranslatedText)
	})

	t.Run("marks failures during line-by-line fallback", func(t *testing.T) {
		llm := happyLLM()
		llm.draft = "<textarea>\n1. 只有一行\n</textarea>"
		llm.singleErr = &agent.ProviderError{Message: "boom", Code: "500"}
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), baseInput(sampleItems()))

		require.NoError(t, err)
		ch := res.Chunks[0]
		assert.Equal(t, FailedPrefix+"Alice went home.", ch.Translations[0])
		assert.Equal(t, FailedPrefix+"Bob stayed.", ch.Translations[1])
		assert.Equal(t, FailedPrefix+"Carol slept.", ch.Translations[2])
	})

	t.Run("applies term renderings in the final pass", func(t *testing.T) {
		items := []*models.Item{
			{RowIndex: 0, AtomID: 21, SourceText: "Beclin regulates autophagy.", FilePath: "p.txt"},
		}
		llm := &scriptedLLM{
			draft:    "<textarea>\n1. Beclin调控自噬。\n</textarea>",
			back:     "<textarea>\n1. Beclin regulates autophagy.\n</textarea>",
			estimate: "<textarea>\n1. 评分：9.0\n</textarea>",
		}
		in := baseInput(items)
		in.Table = models.TermTable{"Beclin": "贝可林"}
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), in)

		require.NoError(t, err)
		require.NotNil(t, res.Consistency)
		assert.Equal(t, 1, res.Consistency.AutoFixed)
		assert.Equal(t, "贝可林调控自噬。", res.Chunks[0].Translations[0])
		assert.Equal(t, "贝可林调控自噬。", items[0].TranslatedText)
	})

	t.Run("draft only skips the quality loop", func(t *testing.T) {
		llm := happyLLM()
		items := sampleItems()
		in := baseInput(items)
		in.DraftOnly = true
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, 3, res.Translated)
		ch := res.Chunks[0]
		assert.Equal(t, []string{"爱丽丝回家了。", "鲍勃留下了。", "卡罗尔睡了。"}, ch.Translations)
		assert.Equal(t, []string{"", "", ""}, ch.Backs)
		assert.Equal(t, []float64{8.0, 8.0, 8.0}, ch.Scores)

		assert.Equal(t, 1, llm.callCount())
		assert.Empty(t, llm.backReqs)
		assert.Empty(t, llm.estimateReqs)
		require.NotNil(t, res.Consistency)
		assert.Zero(t, res.Consistency.Checked)

		assert.Equal(t, "爱丽丝回家了。", items[0].TranslatedText)
		assert.Equal(t, models.AtomFinalized, items[0].Status)
	})

	t.Run("stop flag aborts the stage", func(t *testing.T) {
		llm := happyLLM()
		rt := newRuntime(llm)
		rt.Stop()
		a := New(rt)

		_, err := a.Run(context.Background(), baseInput(sampleItems()))

		assert.ErrorIs(t, err, agent.ErrStopped)
	})

	t.Run("nothing untranslated means an empty result", func(t *testing.T) {
		items := sampleItems()
		for _, it := range items {
			it.Status = models.AtomFinalized
		}
		llm := happyLLM()
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), baseInput(items))

		require.NoError(t, err)
		assert.Empty(t, res.Chunks)
		assert.Zero(t, res.Translated)
		assert.Zero(t, llm.callCount())
	})
}

func TestRunReview(t *testing.T) {
	reviewInput := func(items []*models.Item, intervene func(context.Context, string, any) (any, error)) Input {
		in := baseInput(items)
		in.ReviewEnabled = true
		in.ReviewThreshold = 7.0
		in.Intervene = intervene
		return in
	}

	t.Run("applies accept, custom and retranslate decisions", func(t *testing.T) {
		items := sampleItems()
		llm := happyLLM()
		llm.single = func(string) string { return "重译卡罗尔" }

		var gotTask string
		var gotBatch models.ReviewBatch
		intervene := func(_ context.Context, taskType string, payload any) (any, error) {
			gotTask = taskType
			gotBatch = payload.(models.ReviewBatch)
			return models.ReviewResult{Results: []models.ReviewDecision{
				{Index: 0, Action: models.ReviewActionAccept},
				{Index: 1, Action: models.ReviewActionCustom, Translation: "人工鲍勃"},
				{Index: 2, Action: models.ReviewActionRetranslate},
			}}, nil
		}
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), reviewInput(items, intervene))

		require.NoError(t, err)
		assert.Equal(t, models.TaskBatchTranslationReview, gotTask)

		// Nothing scores below threshold, so the fallback picks the lowest
		// scorers, lowest first.
		require.Len(t, gotBatch.Items, 3)
		assert.Equal(t, 1, gotBatch.Items[0].Index)
		assert.Equal(t, 8.5, gotBatch.Items[0].Score)
		assert.Equal(t, "Bob stayed.", gotBatch.Items[0].SourceText)
		assert.Equal(t, "Alice went home.", gotBatch.Items[0].ContextBefore)
		assert.Equal(t, "Carol slept.", gotBatch.Items[0].ContextAfter)
		assert.NotEmpty(t, gotBatch.Items[0].BackTranslation)

		ch := res.Chunks[0]
		assert.Equal(t, "爱丽丝回家了。", ch.Translations[0])
		assert.Equal(t, "人工鲍勃", ch.Translations[1])
		assert.Equal(t, "重译卡罗尔", ch.Translations[2])
		assert.Len(t, llm.singleReqs, 1)

		assert.Equal(t, "人工鲍勃", items[1].TranslatedText)
		assert.Equal(t, models.AtomFinalized, items[1].Status)
	})

	t.Run("nil reply keeps machine output", func(t *testing.T) {
		llm := happyLLM()
		intervene := func(context.Context, string, any) (any, error) { return nil, nil }
		a := New(newRuntime(llm))

		res, err := a.Run(context.Background(), reviewInput(sampleItems(), intervene))

		require.NoError(t, err)
		assert.Equal(t, []string{"爱丽丝回家了。", "鲍勃留下了。", "卡罗尔睡了。"}, res.Chunks[0].Translations)
	})

	t.Run("callback error aborts the stage", func(t *testing.T) {
		llm := happyLLM()
		intervene := func(context.Context, string, any) (any, error) { return nil, context.Canceled }
		a := New(newRuntime(llm))

		_, err := a.Run(context.Background(), reviewInput(sampleItems(), intervene))

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, err.Error(), "translation review failed")
	})

	t.Run("review disabled skips the pass entirely", func(t *testing.T) {
		llm := happyLLM()
		called := false
		in := baseInput(sampleItems())
		in.Intervene = func(context.Context, string, any) (any, error) {
			called = true
			return nil, nil
		}
		a := New(newRuntime(llm))

		_, err := a.Run(context.Background(), in)

		require.NoError(t, err)
		assert.False(t, called)
	})
}

func TestPrepareJobs(t *testing.T) {
	a := New(newRuntime(happyLLM()))

	t.Run("packs per file and carries context windows", func(t *testing.T) {
		items := []*models.Item{
			{RowIndex: 0, SourceText: "aaaaaaaaaa", FilePath: "one.txt"},
			{RowIndex: 1, SourceText: "bbbbbbbbbb", FilePath: "one.txt"},
			{RowIndex: 2, SourceText: "cccccccccc", FilePath: "one.txt"},
			{RowIndex: 3, SourceText: "dddddddddd", FilePath: "one.txt"},
			{RowIndex: 4, SourceText: "eeeeeeeeee", FilePath: "two.txt"},
		}
		in := baseInput(items)
		in.Budget = 25
		in.ContextLines = 2

		jobs := a.prepareJobs(in)

		require.Len(t, jobs, 3)
		assert.Equal(t, "one.txt", jobs[0].filePath)
		assert.Len(t, jobs[0].items, 2)
		assert.Empty(t, jobs[0].context)

		assert.Equal(t, "one.txt", jobs[1].filePath)
		assert.Len(t, jobs[1].items, 2)
		assert.Equal(t, []string{"aaaaaaaaaa", "bbbbbbbbbb"}, jobs[1].context)

		assert.Equal(t, "two.txt", jobs[2].filePath)
		assert.Len(t, jobs[2].items, 1)
		assert.Empty(t, jobs[2].context)
	})

	t.Run("oversize lines become singleton chunks", func(t *testing.T) {
		items := []*models.Item{
			{RowIndex: 0, SourceText: strings.Repeat("a", 200), FilePath: "doc.txt"},
			{RowIndex: 1, SourceText: strings.Repeat("b", 200), FilePath: "doc.txt"},
			{RowIndex: 2, SourceText: strings.Repeat("c", 8000), FilePath: "doc.txt"},
			{RowIndex: 3, SourceText: strings.Repeat("d", 200), FilePath: "doc.txt"},
		}

		jobs := a.prepareJobs(baseInput(items))

		require.Len(t, jobs, 3)
		assert.Len(t, jobs[0].items, 2)
		assert.Len(t, jobs[1].items, 1)
		assert.Len(t, jobs[2].items, 1)
		assert.Equal(t, 8000, len(jobs[1].items[0].SourceText))
	})

	t.Run("skips translated and blank items", func(t *testing.T) {
		items := []*models.Item{
			{RowIndex: 0, SourceText: "keep me", FilePath: "doc.txt"},
			{RowIndex: 1, SourceText: "done", Status: models.AtomFinalized, FilePath: "doc.txt"},
			{RowIndex: 2, SourceText: "   ", FilePath: "doc.txt"},
		}

		jobs := a.prepareJobs(baseInput(items))

		require.Len(t, jobs, 1)
		require.Len(t, jobs[0].items, 1)
		assert.Equal(t, "keep me", jobs[0].items[0].SourceText)
	})
}

func TestStrategyFor(t *testing.T) {
	strategies := []planner.ChunkStrategy{
		{ChunkIndex: 0, Strategy: models.StrategyLiteral},
		{ChunkIndex: 2, Strategy: models.StrategyStylized},
	}

	assert.Equal(t, models.StrategyLiteral, strategyFor(strategies, 0))
	assert.Equal(t, models.StrategyFree, strategyFor(strategies, 1))
	assert.Equal(t, models.StrategyStylized, strategyFor(strategies, 2))
	assert.Equal(t, models.StrategyFree, strategyFor(strategies, 9))
	assert.Equal(t, models.StrategyFree, strategyFor(nil, 0))
}

func TestLooksLikeReference(t *testing.T) {
	assert.True(t, looksLikeReference("Brown, W.J. et al. (1995) Nature 377, 525-528."))
	assert.True(t, looksLikeReference("see doi:10.1038/377525a0 for details"))
	assert.True(t, looksLikeReference(strings.Repeat("word, ", 100)))
	assert.False(t, looksLikeReference("a long sentence, with, a few, commas, only"))
	assert.False(t, looksLikeReference("Alice went home."))
}

func TestTermTablePrompt(t *testing.T) {
	table := models.TermTable{"Beclin": "贝可林", "Autophagy": "自噬"}

	prompt := termTablePrompt(table, []string{"Beclin binds the membrane."})

	assert.Contains(t, prompt, "Beclin|贝可林")
	assert.NotContains(t, prompt, "Autophagy")
	assert.Empty(t, termTablePrompt(table, []string{"nothing relevant"}))
	assert.Empty(t, termTablePrompt(nil, []string{"Beclin"}))
}

func TestBackTermTablePrompt(t *testing.T) {
	table := models.TermTable{"Beclin": "贝可林", "Autophagy": "自噬"}

	prompt := backTermTablePrompt(table, []string{"贝可林与膜结合。"})

	assert.Contains(t, prompt, "贝可林|Beclin")
	assert.NotContains(t, prompt, "自噬")
	assert.Empty(t, backTermTablePrompt(table, []string{"无关译文"}))
}

func TestNumberLines(t *testing.T) {
	assert.Equal(t, "1.alpha\n2.beta", numberLines([]string{"alpha", "beta"}))
	assert.Equal(t, "1.first\nrest\n2.second", numberLines([]string{"first\nrest", "second"}))
	assert.Equal(t, "", numberLines(nil))
}

func TestProblemLine(t *testing.T) {
	long := strings.Repeat("a", 150)

	assert.True(t, problemLine("anything", "   "))
	assert.True(t, problemLine(long, "太短"))
	assert.False(t, problemLine(long, strings.Repeat("好", 50)))
	assert.False(t, problemLine("short source", "短"))
}
