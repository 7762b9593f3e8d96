package e2e

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// TestRunPipelineCompletes drives one run end to end through the HTTP API:
// enqueue, poll to completion, then verify the event-sourced persistence
// (atom, traces, quality verdict), the published stage sequence and the
// written artifacts.
func TestRunPipelineCompletes(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteIdentify, LLMScriptEntry{Text: `{"terms": []}`})
	llm.AddRouted(RouteDraft, LLMScriptEntry{Text: numbered("你好，世界。")})
	llm.AddRouted(RouteBack, LLMScriptEntry{Text: numbered("Hello world.")})
	llm.AddRouted(RouteEstimate, LLMScriptEntry{Text: scores(9.0)})

	app := NewTestApp(t, WithLLMClient(llm))
	projectDir := WriteProjectDir(t, map[string]string{"story.txt": "Hello world.\n"})
	outDir := t.TempDir()

	created := app.CreateRun(t, projectDir, outDir, nil)
	runID := created["id"].(string)
	require.NotEmpty(t, runID)
	assert.Equal(t, "pending", created["status"])

	app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, 4, llm.CallCount(), "identify, draft, back-translate, estimate")

	// Persistence: one work, one doc, one atom carried to finalized.
	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	assert.Equal(t, "en", work.SourceLang)
	assert.Equal(t, "zh", work.TargetLang)

	atoms := app.DocAtoms(t, work.ID, "story.txt")
	require.Len(t, atoms, 1)
	atom := atoms[0]
	assert.Equal(t, "Hello world.", atom.SourceText)
	require.NotNil(t, atom.TranslatedText)
	assert.Equal(t, "你好，世界。", *atom.TranslatedText)
	assert.Equal(t, models.AtomFinalized, atom.StatusCode)
	require.NotNil(t, atom.QualityScore)
	assert.InDelta(t, 9.0, *atom.QualityScore, 1e-9)
	assert.Equal(t, "low", atom.Examination["warning_level"])
	assert.Equal(t, "backtranslation", atom.Examination["algorithm"])
	assert.InDelta(t, 0.9, atom.Examination["semantic_similarity"].(float64), 1e-9)

	// Trace log: the draft stays the active version; the evaluation is an
	// inactive annotation carrying the verdict.
	traces := app.Traces(t, atom.ID)
	require.Len(t, traces, 2)
	assert.Equal(t, agenttrace.ActionTypeDraft, traces[0].ActionType)
	assert.Equal(t, agenttrace.AgentRoleTranslator, traces[0].AgentRole)
	assert.True(t, traces[0].IsActive)
	assert.Equal(t, "你好，世界。", traces[0].Content)

	assert.Equal(t, agenttrace.ActionTypeEvaluate, traces[1].ActionType)
	assert.Equal(t, agenttrace.AgentRoleQualityAssessor, traces[1].AgentRole)
	assert.False(t, traces[1].IsActive)
	assert.Equal(t, "pass", traces[1].QualityReport["status"])
	assert.InDelta(t, 9.0, traces[1].QualityReport["score"].(float64), 1e-9)
	assert.Equal(t, "Hello world.", traces[1].QualityReport["back_translation"])

	// Progress events walked the whole stage graph in order.
	assert.Equal(t, stageNames(models.OrderedStages()), app.StageSequence(t, runID))

	// Artifacts.
	assert.Equal(t, "你好，世界。\n", ReadArtifact(t, outDir, "story_translated.txt"))
	assert.Equal(t, "Hello world.\n你好，世界。\n", ReadArtifact(t, outDir, "story_bilingual.txt"))

	detail := app.GetRun(t, runID)
	assert.Equal(t, "completed", detail["status"])
	assert.NotNil(t, detail["latest_update"], "latest progress snapshot exposed on the run")
}

// TestRunDraftLineCountFallback breaks the batch contract on purpose: the
// draft reply drops a line, so the chunk must degrade to per-line calls and
// still deliver every translation.
func TestRunDraftLineCountFallback(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteDraft, LLMScriptEntry{Text: numbered("一。", "二。")})
	llm.AddRouted(RouteSingle,
		LLMScriptEntry{Text: "一。"},
		LLMScriptEntry{Text: "二。"},
		LLMScriptEntry{Text: "三。"},
	)

	app := NewTestApp(t, WithLLMClient(llm))
	projectDir := WriteProjectDir(t, map[string]string{"list.txt": "One.\nTwo.\nThree.\n"})
	outDir := t.TempDir()

	created := app.CreateRun(t, projectDir, outDir, map[string]any{
		"use_multi_agent_mode": false,
	})
	runID := created["id"].(string)

	app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, 4, llm.CallCount(), "one failed batch, three per-line retries")

	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	atoms := app.DocAtoms(t, work.ID, "list.txt")
	require.Len(t, atoms, 3)
	for i, want := range []string{"一。", "二。", "三。"} {
		require.NotNil(t, atoms[i].TranslatedText)
		assert.Equal(t, want, *atoms[i].TranslatedText)
		assert.Equal(t, models.AtomFinalized, atoms[i].StatusCode)
	}

	// Draft-only mode records the draft trace and nothing else.
	traces := app.Traces(t, atoms[0].ID)
	require.Len(t, traces, 1)
	assert.Equal(t, agenttrace.ActionTypeDraft, traces[0].ActionType)
	assert.True(t, traces[0].IsActive)

	artifact := ReadArtifact(t, outDir, "list_translated.txt")
	assert.Equal(t, "一。\n二。\n三。\n", artifact)
	assert.NotContains(t, artifact, "[FAILED]")
}

// TestRunTermConsistencyAutoFix pins a term rendering during terminology and
// has the draft ignore it. The consistency pass must rewrite the line and
// record the enforcement as the final active trace.
func TestRunTermConsistencyAutoFix(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteIdentify, LLMScriptEntry{
		Text: `{"terms": [{"term": "Beclin", "category": "technical_term", "context": "Beclin regulates autophagy.", "meaning": "自噬相关蛋白", "translation_strategy": "保留原文"}]}`,
	})
	llm.AddRouted(RouteVerify, LLMScriptEntry{Text: numbered("Beclin1")})
	llm.AddRouted(RouteDraft, LLMScriptEntry{Text: numbered("Beclin调节自噬。")})
	llm.AddRouted(RouteBack, LLMScriptEntry{Text: numbered("Beclin regulates autophagy.")})
	llm.AddRouted(RouteEstimate, LLMScriptEntry{Text: scores(8.5)})

	app := NewTestApp(t, WithLLMClient(llm))
	projectDir := WriteProjectDir(t, map[string]string{"bio.txt": "Beclin regulates autophagy.\n"})
	outDir := t.TempDir()

	created := app.CreateRun(t, projectDir, outDir, nil)
	runID := created["id"].(string)

	app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, 5, llm.CallCount(), "identify, verify, draft, back-translate, estimate")

	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	atoms := app.DocAtoms(t, work.ID, "bio.txt")
	require.Len(t, atoms, 1)
	atom := atoms[0]
	require.NotNil(t, atom.TranslatedText)
	assert.Equal(t, "Beclin1调节自噬。", *atom.TranslatedText)
	assert.Equal(t, models.AtomFinalized, atom.StatusCode)

	// The enforcement is the active version and remembers what it replaced.
	active := app.ActiveTrace(t, atom.ID)
	assert.Equal(t, agenttrace.ActionTypeFinal, active.ActionType)
	assert.Equal(t, agenttrace.AgentRoleConsistencyChecker, active.AgentRole)
	assert.Equal(t, "Beclin1调节自噬。", active.Content)
	assert.Equal(t, "Beclin调节自噬。", active.MetaData["before"])
	assert.Equal(t, "entity consistency check", active.MetaData["reason"])

	traces := app.Traces(t, atom.ID)
	require.Len(t, traces, 3, "draft, evaluate, consistency fix")
	assert.False(t, traces[0].IsActive, "draft superseded by the fix")

	assert.Equal(t, "Beclin1调节自噬。\n", ReadArtifact(t, outDir, "bio_translated.txt"))
}

// TestRunChunkingIsolatesLongLines checks the batching contract: lines pack
// into a chunk until the budget is hit, and a line too large for any chunk
// travels alone instead of dragging neighbours into an oversized prompt.
func TestRunChunkingIsolatesLongLines(t *testing.T) {
	shortA := strings.Repeat("The tide rises. ", 5) + "One."
	shortB := strings.Repeat("The tide falls. ", 5) + "Two."
	longLine := strings.TrimSpace(strings.Repeat("All work and no play makes Jack a dull boy. ", 182))
	shortC := strings.Repeat("The gulls call. ", 5) + "Three."

	// Long enough relative to the source that it is not mistaken for a
	// truncated reply.
	longReply := strings.Repeat("很长的句子翻译。", 340)

	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteDraft,
		LLMScriptEntry{Text: numbered("潮起。", "潮落。")},
		LLMScriptEntry{Text: numbered(longReply)},
		LLMScriptEntry{Text: numbered("鸥鸣。")},
	)

	app := NewTestApp(t, WithLLMClient(llm))
	content := shortA + "\n" + shortB + "\n" + longLine + "\n" + shortC + "\n"
	projectDir := WriteProjectDir(t, map[string]string{"lines.txt": content})
	outDir := t.TempDir()

	created := app.CreateRun(t, projectDir, outDir, map[string]any{
		"use_multi_agent_mode": false,
		"user_thread_counts":   1,
	})
	runID := created["id"].(string)

	app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, 3, llm.CallCount(), "two short lines batched, long line alone, trailing line alone")

	drafts := llm.Prompts(RouteDraft)
	require.Len(t, drafts, 3)
	assert.Contains(t, drafts[0], "共2行")
	assert.Contains(t, drafts[0], shortA)
	assert.Contains(t, drafts[0], shortB)
	assert.Contains(t, drafts[1], "共1行")
	assert.Contains(t, drafts[1], "All work and no play makes Jack a dull boy.")
	assert.Contains(t, drafts[2], "共1行")
	assert.Contains(t, drafts[2], shortC)
	assert.Empty(t, llm.Prompts(RouteSingle), "no per-line fallback fired")

	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	atoms := app.DocAtoms(t, work.ID, "lines.txt")
	require.Len(t, atoms, 4)
	for i, want := range []string{"潮起。", "潮落。", longReply, "鸥鸣。"} {
		require.NotNil(t, atoms[i].TranslatedText)
		assert.Equal(t, want, *atoms[i].TranslatedText)
		assert.Equal(t, models.AtomFinalized, atoms[i].StatusCode)
	}

	assert.Equal(t, "潮起。\n潮落。\n"+longReply+"\n鸥鸣。\n",
		ReadArtifact(t, outDir, "lines_translated.txt"))
}
