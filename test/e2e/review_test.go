package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// TestRunHumanReviewCustomDecision parks a low-scoring line on the review
// bridge and answers through the API with the reviewer's own wording. The
// run must hold in review state while parked, record the human edit as the
// active trace and ship the reviewer's text in the artifact.
func TestRunHumanReviewCustomDecision(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteIdentify, LLMScriptEntry{Text: `{"terms": []}`})
	llm.AddRouted(RouteDraft, LLMScriptEntry{Text: numbered("低质量译文。")})
	llm.AddRouted(RouteBack, LLMScriptEntry{Text: numbered("A low quality translation.")})
	llm.AddRouted(RouteEstimate, LLMScriptEntry{Text: scores(5.0)})
	llm.AddRouted(RouteRefine, LLMScriptEntry{Text: numbered("修正后的译文。")})

	app := NewTestApp(t, WithLLMClient(llm))
	projectDir := WriteProjectDir(t, map[string]string{"draft.txt": "The weather held for the crossing.\n"})
	outDir := t.TempDir()

	created := app.CreateRun(t, projectDir, outDir, map[string]any{
		"enable_human_review": true,
	})
	runID := created["id"].(string)

	task := app.WaitForReviewTask(t, runID)
	assert.Equal(t, models.TaskBatchTranslationReview, task["task_type"])
	assert.Equal(t, "review", app.GetRun(t, runID)["status"], "run holds while parked")

	payload, ok := task["payload"].(map[string]any)
	require.True(t, ok, "task payload: %v", task["payload"])
	items, ok := payload["review_items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "The weather held for the crossing.", item["source_text"])
	assert.Equal(t, "修正后的译文。", item["translated_text"], "reviewer sees the refined text")
	assert.Equal(t, "A low quality translation.", item["back_translation"])
	assert.InDelta(t, 5.0, item["score"].(float64), 1e-9)

	answer := app.AnswerReview(t, runID, map[string]any{
		"task_id": task["id"],
		"review_results": []map[string]any{
			{"index": toInt(item["index"]), "action": "custom", "translation": "手改译文。"},
		},
	})
	assert.Equal(t, "answered", answer["status"])

	app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, 5, llm.CallCount(), "identify, draft, back-translate, estimate, refine")

	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	atoms := app.DocAtoms(t, work.ID, "draft.txt")
	require.Len(t, atoms, 1)
	atom := atoms[0]
	require.NotNil(t, atom.TranslatedText)
	assert.Equal(t, "手改译文。", *atom.TranslatedText)
	assert.Equal(t, models.AtomFinalized, atom.StatusCode)

	active := app.ActiveTrace(t, atom.ID)
	assert.Equal(t, agenttrace.ActionTypeHumanEdit, active.ActionType)
	assert.Equal(t, agenttrace.AgentRoleHuman, active.AgentRole)
	assert.Equal(t, "手改译文。", active.Content)

	traces := app.Traces(t, atom.ID)
	require.Len(t, traces, 4, "draft, evaluate, refine, human edit")
	assert.Equal(t, agenttrace.ActionTypeDraft, traces[0].ActionType)
	assert.False(t, traces[0].IsActive)
	assert.Equal(t, agenttrace.ActionTypeRefine, traces[2].ActionType)
	assert.False(t, traces[2].IsActive)

	assert.Equal(t, "手改译文。\n", ReadArtifact(t, outDir, "draft_translated.txt"))
}

// TestRunTerminologyReviewApproval exercises both review rounds of one run:
// the terminology table is rebuilt from the approved entries alone (the
// rejected term vanishes), and the passing translation is accepted as-is in
// the fallback batch round without growing the trace log.
func TestRunTerminologyReviewApproval(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteIdentify, LLMScriptEntry{
		Text: `{"terms": [
			{"term": "Aurora", "category": "named_entity", "context": "Aurora lights the sky.", "meaning": "极光", "translation_strategy": "意译"},
			{"term": "Boreas", "category": "named_entity", "context": "Boreas answers.", "meaning": "北风神", "translation_strategy": "意译"}
		]}`,
	})
	llm.AddRouted(RouteVerify, LLMScriptEntry{Text: numbered("极光", "北风神")})
	llm.AddRouted(RouteDraft, LLMScriptEntry{Text: numbered("北极光照亮天空，北风回应。")})
	llm.AddRouted(RouteBack, LLMScriptEntry{Text: numbered("Aurora lights the sky. Boreas answers.")})
	llm.AddRouted(RouteEstimate, LLMScriptEntry{Text: scores(9.0)})

	app := NewTestApp(t, WithLLMClient(llm))
	projectDir := WriteProjectDir(t, map[string]string{"sky.txt": "Aurora lights the sky. Boreas answers.\n"})
	outDir := t.TempDir()

	created := app.CreateRun(t, projectDir, outDir, map[string]any{
		"enable_human_review": true,
	})
	runID := created["id"].(string)

	// Round one: the identified terms with their machine renderings.
	termTask := app.WaitForReviewTask(t, runID)
	require.Equal(t, models.TaskTerminologyReview, termTask["task_type"])
	payload := termTask["payload"].(map[string]any)
	terms, ok := payload["terms"].([]any)
	require.True(t, ok)
	require.Len(t, terms, 2)
	first := terms[0].(map[string]any)
	assert.Equal(t, "Aurora", first["entry_key"])
	assert.Equal(t, "极光", first["entry_val"])
	second := terms[1].(map[string]any)
	assert.Equal(t, "Boreas", second["entry_key"])

	// Approve Aurora with an edited rendering, drop Boreas entirely.
	app.AnswerReview(t, runID, map[string]any{
		"task_id": termTask["id"],
		"approved_terms": []map[string]any{
			{"term": "Aurora", "translation": "北极光"},
		},
	})

	// Round two: nothing scores below the threshold, so the fallback offers
	// the lowest-scoring lines for a final look.
	batchTask := app.WaitForReviewTask(t, runID)
	require.Equal(t, models.TaskBatchTranslationReview, batchTask["task_type"])
	require.NotEqual(t, termTask["id"], batchTask["id"])
	items := batchTask["payload"].(map[string]any)["review_items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "北极光照亮天空，北风回应。", item["translated_text"])
	assert.InDelta(t, 9.0, item["score"].(float64), 1e-9)

	app.AnswerReview(t, runID, map[string]any{
		"task_id": batchTask["id"],
		"review_results": []map[string]any{
			{"index": toInt(item["index"]), "action": "accept"},
		},
	})

	app.WaitForRunStatus(t, runID, "completed")
	assert.Equal(t, 5, llm.CallCount(), "identify, verify, draft, back-translate, estimate")

	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	atoms := app.DocAtoms(t, work.ID, "sky.txt")
	require.Len(t, atoms, 1)
	atom := atoms[0]
	require.NotNil(t, atom.TranslatedText)
	assert.Equal(t, "北极光照亮天空，北风回应。", *atom.TranslatedText)
	assert.Equal(t, models.AtomFinalized, atom.StatusCode)

	// Accepting adds no trace; the draft stays the active version.
	traces := app.Traces(t, atom.ID)
	require.Len(t, traces, 2, "draft and evaluate only")
	assert.Equal(t, agenttrace.ActionTypeDraft, traces[0].ActionType)
	assert.True(t, traces[0].IsActive)

	// The resumable state carries the approved table, not the rejected term.
	state, err := os.ReadFile(filepath.Join(outDir, "project.json"))
	require.NoError(t, err)
	assert.Contains(t, string(state), "北极光")
	assert.NotContains(t, string(state), "北风神")
}
