package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/translator"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/project"
	"github.com/linguaflow/linguaflow/pkg/ratelimit"
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// pipelineLLM scripts every prompt family the workflow can reach. Routing
// keys on the system prompt, the same way the per-agent stubs do.
type pipelineLLM struct {
	mu sync.Mutex

	identify string
	verify   string
	draft    string
	single   string
	back     string
	estimate string
	refine   string

	identifyReqs []string
	verifyReqs   []string
	draftReqs    []string
	singleReqs   []string
	backReqs     []string
	estimateReqs []string
	calls        int
}

func (s *pipelineLLM) Send(_ context.Context, req *agent.Request) (*agent.Response, error) {
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
	case strings.Contains(req.SystemPrompt, "术语识别专家"):
		s.identifyReqs = append(s.identifyReqs, user)
		return reply(s.identify)
	case strings.Contains(req.SystemPrompt, "术语翻译专家"):
		s.verifyReqs = append(s.verifyReqs, user)
		return reply(s.verify)
	case strings.Contains(req.SystemPrompt, "回译专家"):
		s.backReqs = append(s.backReqs, user)
		return reply(s.back)
	case strings.Contains(req.SystemPrompt, "质量评估专家"):
		s.estimateReqs = append(s.estimateReqs, user)
		return reply(s.estimate)
	case strings.Contains(req.SystemPrompt, "修正专家"):
		return reply(s.refine)
	case strings.Contains(req.SystemPrompt, "逐行翻译"):
		s.draftReqs = append(s.draftReqs, user)
		return reply(s.draft)
	case strings.Contains(req.SystemPrompt, "直接输出译文"):
		s.singleReqs = append(s.singleReqs, user)
		return reply(s.single)
	}
	return nil, fmt.Errorf("unexpected system prompt: %.30s", req.SystemPrompt)
}

func (s *pipelineLLM) Close() error { return nil }

func (s *pipelineLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// happyPipeline scripts a clean three-line run end to end: one term, full
// draft, faithful back-translation, passing scores.
func happyPipeline() *pipelineLLM {
	return &pipelineLLM{
		identify: `{"terms": [{"term": "Alice", "category": "named_entity", "context": "Alice went home.", "meaning": "人名", "translation_strategy": "音译"}]}`,
		verify:   "<textarea>\n1. 爱丽丝\n</textarea>",
		draft:    "<textarea>\n1. 爱丽丝回家了。\n2. 鲍勃留下了。\n3. 卡罗尔睡了。\n</textarea>",
		back:     "<textarea>\n1. Alice went home.\n2. Bob stayed.\n3. Carol slept.\n</textarea>",
		estimate: "<textarea>\n1. 评分：9.0\n2. 评分：8.5\n3. 评分：9.5\n</textarea>",
	}
}

// stageLog collects the distinct stage sequence from published snapshots.
type stageLog struct {
	mu     sync.Mutex
	stages []models.Stage
}

func (l *stageLog) hook(snap stats.Snapshot) {
	if snap.AgentStage == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if n := len(l.stages); n == 0 || l.stages[n-1] != snap.AgentStage.Stage {
		l.stages = append(l.stages, snap.AgentStage.Stage)
	}
}

func (l *stageLog) sequence() []models.Stage {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Stage(nil), l.stages...)
}

func newRuntime(llm agent.LLMClient, cfg *config.PipelineConfig, publish func(stats.Snapshot)) *agent.Runtime {
	return &agent.Runtime{
		RunID:    "run-flow",
		Stats:    stats.NewTracker(publish),
		Limiter:  ratelimit.New(0, 0),
		LLM:      llm,
		NER:      agent.NoopNER{},
		Embedder: agent.NoopEmbedder{},
		Pipeline: cfg,
		Platform: config.PlatformConfig{Provider: "openai", Model: "gpt-4o"},
	}
}

func multiAgentConfig() *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.UseMultiAgentMode = true
	return cfg
}

func draftOnlyConfig() *config.PipelineConfig {
	cfg := config.DefaultPipelineConfig()
	cfg.UseMultiAgentMode = false
	return cfg
}

func writeProject(t *testing.T, lines string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ch1.txt"), []byte(lines), 0o644))
	return dir
}

func readArtifact(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestRunMultiAgent(t *testing.T) {
	llm := happyPipeline()
	src := writeProject(t, "Alice went home.\nBob stayed.\nCarol slept.\n")
	out := t.TempDir()
	log := &stageLog{}
	m := New(newRuntime(llm, multiAgentConfig(), log.hook), Input{ProjectPath: src, OutputPath: out})

	err := m.Run(context.Background())
	require.NoError(t, err)

	// One identify, one verify, one draft, one back-translation, one
	// estimation; nothing scored low enough to refine.
	assert.Equal(t, 5, llm.callCount())
	assert.Len(t, llm.identifyReqs, 1)
	assert.Len(t, llm.verifyReqs, 1)
	assert.Len(t, llm.draftReqs, 1)
	assert.Len(t, llm.backReqs, 1)
	assert.Len(t, llm.estimateReqs, 1)

	assert.Equal(t, models.OrderedStages(), log.sequence())

	assert.Equal(t, "爱丽丝回家了。\n鲍勃留下了。\n卡罗尔睡了。\n", readArtifact(t, out, "ch1_translated.txt"))
	assert.Equal(t,
		"Alice went home.\n爱丽丝回家了。\n\nBob stayed.\n鲍勃留下了。\n\nCarol slept.\n卡罗尔睡了。\n",
		readArtifact(t, out, "ch1_bilingual.txt"))

	state := m.State()
	assert.Equal(t, models.TermTable{"Alice": "爱丽丝"}, state.Table)
	require.NotNil(t, state.Translation)
	assert.Equal(t, 3, state.Translation.Translated)
	assert.Len(t, state.Strategies, 1)

	restored, err := project.Load(out)
	require.NoError(t, err)
	assert.Equal(t, models.TermTable{"Alice": "爱丽丝"}, restored.TermTable())
	assert.Zero(t, restored.PendingCount())
	for _, it := range restored.Items() {
		assert.Equal(t, models.AtomFinalized, it.Status)
	}
}

func TestRunDraftOnly(t *testing.T) {
	llm := happyPipeline()
	src := writeProject(t, "Alice went home.\nBob stayed.\nCarol slept.\n")
	out := t.TempDir()
	log := &stageLog{}
	m := New(newRuntime(llm, draftOnlyConfig(), log.hook), Input{ProjectPath: src, OutputPath: out})

	err := m.Run(context.Background())
	require.NoError(t, err)

	// The draft is the only model call: no terminology identification and
	// no back-translation loop.
	assert.Equal(t, 1, llm.callCount())
	assert.Len(t, llm.draftReqs, 1)
	assert.Empty(t, llm.identifyReqs)
	assert.Empty(t, llm.backReqs)
	assert.Empty(t, llm.estimateReqs)

	assert.Equal(t, []models.Stage{
		models.StagePlanning,
		models.StagePreprocessing,
		models.StageTerminology,
		models.StageTranslating,
		models.StageSaving,
		models.StageCompleted,
	}, log.sequence())

	assert.Equal(t, "爱丽丝回家了。\n鲍勃留下了。\n卡罗尔睡了。\n", readArtifact(t, out, "ch1_translated.txt"))
	assert.Empty(t, m.State().Strategies)
}

func TestRunResume(t *testing.T) {
	src := writeProject(t, "Alice went home.\nBob stayed.\n")
	out := t.TempDir()

	// A previous run translated the first line, fixed the term table and
	// saved state into the output directory.
	prev, err := project.Load(src)
	require.NoError(t, err)
	prev.Documents[0].Items[0].TranslatedText = "爱丽丝回家了。"
	prev.Documents[0].Items[0].Status = models.AtomFinalized
	prev.SetTermTable(models.TermTable{"Alice": "爱丽丝"})
	prev.SetMemory(map[string]string{"domain": "general", "style": "neutral"})
	require.NoError(t, project.SaveState(prev, out))

	llm := happyPipeline()
	llm.draft = "<textarea>\n1. 鲍勃留下了。\n</textarea>"
	llm.back = "<textarea>\n1. Bob stayed.\n</textarea>"
	llm.estimate = "<textarea>\n1. 评分：9.0\n</textarea>"
	m := New(newRuntime(llm, multiAgentConfig(), nil), Input{ProjectPath: src, OutputPath: out})

	err = m.Run(context.Background())
	require.NoError(t, err)

	// Terminology reused the stored table, and only the pending line was
	// drafted.
	assert.Empty(t, llm.identifyReqs)
	assert.Empty(t, llm.verifyReqs)
	require.Len(t, llm.draftReqs, 1)
	assert.Contains(t, llm.draftReqs[0], "共1行")
	assert.Contains(t, llm.draftReqs[0], "Bob stayed.")

	assert.Equal(t, "爱丽丝回家了。\n鲍勃留下了。\n", readArtifact(t, out, "ch1_translated.txt"))
	assert.Equal(t, 1, m.State().Translation.Translated)
}

func TestRunEverythingAlreadyTranslated(t *testing.T) {
	src := writeProject(t, "Alice went home.\nBob stayed.\n")
	out := t.TempDir()

	prev, err := project.Load(src)
	require.NoError(t, err)
	for _, it := range prev.Items() {
		it.TranslatedText = "已翻译。"
		it.Status = models.AtomFinalized
	}
	prev.SetTermTable(models.TermTable{"Alice": "爱丽丝"})
	require.NoError(t, project.SaveState(prev, out))

	llm := happyPipeline()
	m := New(newRuntime(llm, multiAgentConfig(), nil), Input{ProjectPath: src, OutputPath: out})

	err = m.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, llm.callCount())
	assert.Equal(t, "已翻译。\n已翻译。\n", readArtifact(t, out, "ch1_translated.txt"))
}

func TestRunStopAndCancel(t *testing.T) {
	t.Run("stop flag unwinds before the first stage", func(t *testing.T) {
		llm := happyPipeline()
		src := writeProject(t, "Alice went home.\n")
		rt := newRuntime(llm, multiAgentConfig(), nil)
		rt.Stop()
		m := New(rt, Input{ProjectPath: src, OutputPath: t.TempDir()})

		err := m.Run(context.Background())

		assert.ErrorIs(t, err, agent.ErrStopped)
		assert.Zero(t, llm.callCount())
	})

	t.Run("cancelled context unwinds at the stage boundary", func(t *testing.T) {
		llm := happyPipeline()
		src := writeProject(t, "Alice went home.\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		m := New(newRuntime(llm, multiAgentConfig(), nil), Input{ProjectPath: src, OutputPath: t.TempDir()})

		err := m.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("project load failure is fatal", func(t *testing.T) {
		m := New(newRuntime(happyPipeline(), multiAgentConfig(), nil), Input{
			ProjectPath: filepath.Join(t.TempDir(), "absent"),
			OutputPath:  t.TempDir(),
		})

		err := m.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load project")
	})
}

func TestRunReviewWiring(t *testing.T) {
	llm := happyPipeline()
	src := writeProject(t, "Alice went home.\nBob stayed.\nCarol slept.\n")
	cfg := multiAgentConfig()
	cfg.EnableHumanReview = true

	var mu sync.Mutex
	var tasks []string
	intervene := func(_ context.Context, taskType string, _ any) (any, error) {
		mu.Lock()
		defer mu.Unlock()
		tasks = append(tasks, taskType)
		return nil, nil
	}
	m := New(newRuntime(llm, cfg, nil), Input{ProjectPath: src, OutputPath: t.TempDir(), Intervene: intervene})

	err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{models.TaskTerminologyReview, models.TaskBatchTranslationReview}, tasks)
}

func TestPlanStrategiesNumbersChunksAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	// First file needs two chunks under the default budget, second fits in
	// one; indices must keep counting across the file boundary.
	big := strings.Repeat("a", 4000)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte(big+"\n"+big+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("short line\n"), 0o644))

	proj, err := project.Load(dir)
	require.NoError(t, err)
	m := New(newRuntime(happyPipeline(), multiAgentConfig(), nil), Input{})
	m.state.Project = proj

	strategies := m.planStrategies()

	require.Len(t, strategies, 3)
	for i, cs := range strategies {
		assert.Equal(t, i, cs.ChunkIndex)
	}
}

func TestKnowledgePairs(t *testing.T) {
	long := strings.Repeat("s", 150)
	res := &translator.Result{Chunks: []*translator.ChunkResult{{
		Sources:      []string{"Alice went home.", "Bob stayed.", "Carol slept.", long, "Dan ran."},
		Translations: []string{"爱丽丝回家了。", "低分译文", translator.FailedPrefix + "Carol slept.", strings.Repeat("译", 150), "   "},
		Scores:       []float64{9.0, 7.5, 9.0, 8.5, 9.0},
	}}}

	pairs := knowledgePairs(res)

	require.Len(t, pairs, 2)
	assert.Equal(t, "Alice went home. => 爱丽丝回家了。", pairs[0])
	// Both sides truncate to 100 runes.
	assert.Equal(t, strings.Repeat("s", 100)+" => "+strings.Repeat("译", 100), pairs[1])
}

func TestInterveneGating(t *testing.T) {
	cfg := multiAgentConfig()
	called := func(context.Context, string, any) (any, error) { return nil, nil }

	cfg.EnableHumanReview = false
	m := New(newRuntime(happyPipeline(), cfg, nil), Input{Intervene: called})
	assert.Nil(t, m.intervene())

	cfg.EnableHumanReview = true
	assert.NotNil(t, m.intervene())
}
