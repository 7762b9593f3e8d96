package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/agenttrace"
	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/ent/processingatom"
	"github.com/linguaflow/linguaflow/ent/projectwork"
	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

// CreateRun enqueues a run and returns the parsed response.
func (app *TestApp) CreateRun(t *testing.T, projectPath, outputPath string, overrides map[string]any) map[string]any {
	t.Helper()
	body := map[string]any{
		"project_path": projectPath,
		"output_path":  outputPath,
	}
	if len(overrides) > 0 {
		body["config_overrides"] = overrides
	}
	return app.postJSON(t, "/api/v1/runs", body, http.StatusCreated)
}

// GetRun retrieves a run with its latest progress snapshot.
func (app *TestApp) GetRun(t *testing.T, runID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/runs/"+runID, http.StatusOK)
}

// CancelRun posts a cancellation. The expected status distinguishes a
// pending run flipped directly (200) from a processing run signalled to
// stop cooperatively (202).
func (app *TestApp) CancelRun(t *testing.T, runID string, expectedStatus int) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/runs/"+runID+"/cancel", nil, expectedStatus)
}

// AnswerReview delivers a review decision for the run's pending task.
func (app *TestApp) AnswerReview(t *testing.T, runID string, body map[string]any) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/runs/"+runID+"/review", body, http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// ────────────────────────────────────────────────────────────
// Polling Helpers
// ────────────────────────────────────────────────────────────

// WaitForRunStatus polls the DB until the run reaches one of the expected
// statuses and returns it.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID string, expected ...string) string {
	t.Helper()
	var actual, lastError string
	require.Eventually(t, func() bool {
		run, err := app.EntClient.TranslationRun.Get(context.Background(), runID)
		if err != nil {
			return false
		}
		actual = string(run.Status)
		if run.ErrorMessage != nil {
			lastError = *run.ErrorMessage
		}
		for _, exp := range expected {
			if actual == exp {
				return true
			}
		}
		return false
	}, 30*time.Second, 100*time.Millisecond,
		"run %s did not reach status %v (last: %s, error: %s)", runID, expected, actual, lastError)
	return actual
}

// WaitForReviewTask polls GET /runs/:id/review until the pipeline parks a
// task on the bridge, and returns it parsed.
func (app *TestApp) WaitForReviewTask(t *testing.T, runID string) map[string]any {
	t.Helper()
	var task map[string]any
	require.Eventually(t, func() bool {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet,
			app.BaseURL+"/api/v1/runs/"+runID+"/review", nil)
		if err != nil {
			return false
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return false
		}
		task = map[string]any{}
		return json.NewDecoder(resp.Body).Decode(&task) == nil
	}, 30*time.Second, 100*time.Millisecond,
		"no review task appeared for run %s", runID)
	return task
}

// ────────────────────────────────────────────────────────────
// Fixture Helpers
// ────────────────────────────────────────────────────────────

// WriteProjectDir creates a project directory of source files under
// t.TempDir(). files maps file name to content.
func WriteProjectDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

// ReadArtifact reads one produced output file.
func ReadArtifact(t *testing.T, outDir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, name))
	require.NoError(t, err)
	return string(data)
}

// numbered renders a canned reply in the strict numbered-line format the
// batch prompts demand.
func numbered(lines ...string) string {
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}

// scores renders a quality-estimate reply, one score per line.
func scores(vals ...float64) string {
	var b strings.Builder
	for i, v := range vals {
		fmt.Fprintf(&b, "%d. 评分：%.1f\n", i+1, v)
	}
	return b.String()
}

// ────────────────────────────────────────────────────────────
// DB Query Helpers
// ────────────────────────────────────────────────────────────

// WorkByName returns the work registered under the derived project name.
func (app *TestApp) WorkByName(t *testing.T, name string) *ent.ProjectWork {
	t.Helper()
	work, err := app.EntClient.ProjectWork.Query().
		Where(projectwork.WorkNameEQ(name)).
		Only(context.Background())
	require.NoError(t, err, "work %q not found", name)
	return work
}

// DocAtoms returns one document's atoms ordered by position.
func (app *TestApp) DocAtoms(t *testing.T, workID int, relPath string) []*ent.ProcessingAtom {
	t.Helper()
	doc, err := app.EntClient.SourceDoc.Query().
		Where(sourcedoc.WorkIDEQ(workID), sourcedoc.FilePathEQ(relPath)).
		Only(context.Background())
	require.NoError(t, err, "doc %q not found in work %d", relPath, workID)
	atoms, err := app.EntClient.ProcessingAtom.Query().
		Where(processingatom.DocIDEQ(doc.ID)).
		Order(ent.Asc(processingatom.FieldPosition)).
		All(context.Background())
	require.NoError(t, err)
	return atoms
}

// Traces returns all traces of an atom in creation order.
func (app *TestApp) Traces(t *testing.T, atomID int) []*ent.AgentTrace {
	t.Helper()
	traces, err := app.EntClient.AgentTrace.Query().
		Where(agenttrace.AtomIDEQ(atomID)).
		Order(ent.Asc(agenttrace.FieldCreatedAt), ent.Asc(agenttrace.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return traces
}

// ActiveTrace returns the single active trace of an atom.
func (app *TestApp) ActiveTrace(t *testing.T, atomID int) *ent.AgentTrace {
	t.Helper()
	trace, err := app.EntClient.AgentTrace.Query().
		Where(agenttrace.AtomIDEQ(atomID), agenttrace.IsActiveEQ(true)).
		Only(context.Background())
	require.NoError(t, err, "no active trace for atom %d", atomID)
	return trace
}

// StageSequence decodes the run's published progress snapshots and returns
// the stage transitions with consecutive duplicates collapsed.
func (app *TestApp) StageSequence(t *testing.T, runID string) []string {
	t.Helper()
	rows, err := app.EntClient.Event.Query().
		Where(event.RunIDEQ(runID), event.ChannelEQ(events.TaskUpdatesChannel)).
		Order(ent.Asc(event.FieldID)).
		All(context.Background())
	require.NoError(t, err)

	var seq []string
	for _, row := range rows {
		var snap stats.Snapshot
		if err := json.Unmarshal(row.Payload, &snap); err != nil || snap.AgentStage == nil {
			continue
		}
		stage := string(snap.AgentStage.Stage)
		if len(seq) == 0 || seq[len(seq)-1] != stage {
			seq = append(seq, stage)
		}
	}
	return seq
}

// stageNames renders a stage list as the strings published in snapshots.
func stageNames(stages []models.Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = string(s)
	}
	return out
}

// toInt converts a JSON-decoded numeric value (typically float64) to int.
func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}
