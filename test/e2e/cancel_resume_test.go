package e2e

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// TestRunCancelAndResume cancels a run mid-translation and resumes it with a
// second run over the same output directory. The first run's finished doc
// must not be retranslated: its atom keeps the first run's text, the second
// run reuses the persisted term table without re-identifying, and only the
// interrupted doc costs new model calls.
func TestRunCancelAndResume(t *testing.T) {
	blocked := make(chan struct{}, 1)

	llm := NewScriptedLLMClient()
	llm.AddRouted(RouteIdentify, LLMScriptEntry{
		Text: `{"terms": [{"term": "Aurora", "category": "named_entity", "context": "Aurora lights the north.", "meaning": "极光", "translation_strategy": "意译"}]}`,
	})
	llm.AddRouted(RouteVerify, LLMScriptEntry{Text: numbered("极光")})
	llm.AddRouted(RouteDraft,
		LLMScriptEntry{Text: numbered("极光照亮北方。")},
		LLMScriptEntry{BlockUntilCancelled: true, OnBlock: blocked},
	)
	llm.AddRouted(RouteBack, LLMScriptEntry{Text: numbered("Aurora lights the north.")})
	llm.AddRouted(RouteEstimate, LLMScriptEntry{Text: scores(9.0)})

	app := NewTestApp(t, WithLLMClient(llm))
	projectDir := WriteProjectDir(t, map[string]string{
		"alpha.txt": "Aurora lights the north.\n",
		"beta.txt":  "The journey continues.\n",
	})
	outDir := t.TempDir()

	// Serialize the two docs so alpha finishes before beta blocks.
	overrides := map[string]any{"user_thread_counts": 1}

	created := app.CreateRun(t, projectDir, outDir, overrides)
	runID := created["id"].(string)

	select {
	case <-blocked:
	case <-time.After(30 * time.Second):
		t.Fatal("translation never reached the blocking call")
	}

	cancelResp := app.CancelRun(t, runID, http.StatusAccepted)
	assert.Equal(t, "cancelling", cancelResp["status"])
	assert.Equal(t, runID, cancelResp["run_id"])
	app.WaitForRunStatus(t, runID, "cancelled")

	// Alpha finished drafting before the cancel; beta never started.
	work := app.WorkByName(t, filepath.Base(projectDir)+"_en2zh")
	alpha := app.DocAtoms(t, work.ID, "alpha.txt")
	require.Len(t, alpha, 1)
	require.NotNil(t, alpha[0].TranslatedText)
	assert.Equal(t, "极光照亮北方。", *alpha[0].TranslatedText)
	assert.Equal(t, models.AtomDrafted, alpha[0].StatusCode)

	beta := app.DocAtoms(t, work.ID, "beta.txt")
	require.Len(t, beta, 1)
	assert.Nil(t, beta[0].TranslatedText)
	assert.Equal(t, models.AtomUntranslated, beta[0].StatusCode)

	// The state file went down before translation, so the resume has both
	// the row mapping and the term table.
	state, err := os.ReadFile(filepath.Join(outDir, "project.json"))
	require.NoError(t, err)
	assert.Contains(t, string(state), "db_atom_map")
	assert.Contains(t, string(state), "Aurora")

	// Second run over the same output directory picks up where the first
	// stopped: no identification, one draft, one back-translation round.
	llm.AddRouted(RouteDraft, LLMScriptEntry{Text: numbered("旅程继续。")})
	llm.AddRouted(RouteBack, LLMScriptEntry{Text: numbered("The journey continues.")})
	llm.AddRouted(RouteEstimate, LLMScriptEntry{Text: scores(9.0)})

	resumed := app.CreateRun(t, projectDir, outDir, overrides)
	resumedID := resumed["id"].(string)
	require.NotEqual(t, runID, resumedID)
	app.WaitForRunStatus(t, resumedID, "completed")

	assert.Equal(t, 9, llm.CallCount(),
		"run one: identify, verify, two drafts, back, estimate; run two: draft, back, estimate")

	drafts := llm.Prompts(RouteDraft)
	require.Len(t, drafts, 3)
	assert.Contains(t, drafts[2], "The journey continues.")
	assert.NotContains(t, drafts[2], "Aurora lights the north.", "restored doc not retranslated")

	// Alpha was restored in memory and skipped; its atom still carries the
	// first run's state. Beta went through the full loop.
	alpha = app.DocAtoms(t, work.ID, "alpha.txt")
	require.NotNil(t, alpha[0].TranslatedText)
	assert.Equal(t, "极光照亮北方。", *alpha[0].TranslatedText)
	assert.Equal(t, models.AtomDrafted, alpha[0].StatusCode)

	beta = app.DocAtoms(t, work.ID, "beta.txt")
	require.NotNil(t, beta[0].TranslatedText)
	assert.Equal(t, "旅程继续。", *beta[0].TranslatedText)
	assert.Equal(t, models.AtomFinalized, beta[0].StatusCode)

	// Artifacts cover both docs, the restored one from its saved text.
	assert.Equal(t, "极光照亮北方。\n", ReadArtifact(t, outDir, "alpha_translated.txt"))
	assert.Equal(t, "旅程继续。\n", ReadArtifact(t, outDir, "beta_translated.txt"))
}
