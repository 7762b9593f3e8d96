package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/events"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/queue"
)

// createRun enqueues a run through the API and returns the decoded row.
func createRun(t *testing.T, s *Server) *ent.TranslationRun {
	t.Helper()
	rec := doRequest(t, s, http.MethodPost, "/api/v1/runs", models.CreateRunRequest{
		ProjectPath: "/data/projects/novel.json",
		OutputPath:  "/data/output/novel",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	run := new(ent.TranslationRun)
	unmarshalBody(t, rec, run)
	return run
}

func TestCreateRunEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("queues a new run", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs", models.CreateRunRequest{
			ProjectPath:     "/data/projects/novel.json",
			OutputPath:      "/data/output/novel",
			ConfigOverrides: map[string]any{"target_language": "ja"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var run ent.TranslationRun
		unmarshalBody(t, rec, &run)
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, translationrun.StatusPending, run.Status)
		assert.Equal(t, "/data/projects/novel.json", run.ProjectPath)
		assert.Equal(t, "ja", run.ConfigOverrides["target_language"])
	})

	t.Run("missing project path", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs", models.CreateRunRequest{
			OutputPath: "/data/output/novel",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		unmarshalBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "project_path")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/runs", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		unmarshalBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "invalid request body")
	})
}

func TestGetRunEndpoint(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("includes the latest progress snapshot", func(t *testing.T) {
		run := createRun(t, s)

		for _, payload := range []string{
			`{"status":"processing","current_stage":"translating","completed_chunks":1}`,
			`{"status":"processing","current_stage":"translating","completed_chunks":2}`,
		} {
			_, err := client.Event.Create().
				SetRunID(run.ID).
				SetChannel(events.TaskUpdatesChannel).
				SetPayload(json.RawMessage(payload)).
				Save(ctx)
			require.NoError(t, err)
		}

		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/"+run.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var detail struct {
			ID           string          `json:"id"`
			Status       string          `json:"status"`
			LatestUpdate json.RawMessage `json:"latest_update"`
		}
		unmarshalBody(t, rec, &detail)
		assert.Equal(t, run.ID, detail.ID)
		assert.Equal(t, string(translationrun.StatusPending), detail.Status)
		assert.JSONEq(t,
			`{"status":"processing","current_stage":"translating","completed_chunks":2}`,
			string(detail.LatestUpdate))
	})

	t.Run("omits the snapshot when no events exist", func(t *testing.T) {
		run := createRun(t, s)

		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/"+run.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "latest_update")
	})
}

func TestListRunsEndpoint(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	runs := make([]*ent.TranslationRun, 3)
	for i := range runs {
		runs[i] = createRun(t, s)
	}
	require.NoError(t, client.TranslationRun.UpdateOneID(runs[0].ID).
		SetStatus(translationrun.StatusCompleted).
		Exec(ctx))

	t.Run("all runs", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RunListResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Runs, 3)
	})

	t.Run("status filter", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs?status=pending", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RunListResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, 2, resp.TotalCount)
		for _, run := range resp.Runs {
			assert.Equal(t, translationrun.StatusPending, run.Status)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs?status=paused", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pagination", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs?limit=1&offset=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RunListResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Runs, 1)
		assert.Equal(t, 1, resp.Limit)
		assert.Equal(t, 1, resp.Offset)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs?limit=abc", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp ErrorResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, "invalid limit", resp.Error)
	})
}

func TestCancelRunEndpoint(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	t.Run("pending run cancels immediately", func(t *testing.T) {
		run := createRun(t, s)

		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CancelResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, run.ID, resp.RunID)
		assert.Equal(t, "cancelled", resp.Status)

		reloaded, err := client.TranslationRun.Get(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusCancelled, reloaded.Status)
		assert.NotNil(t, reloaded.CompletedAt)
	})

	t.Run("terminal run conflicts", func(t *testing.T) {
		run := createRun(t, s)
		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, s, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown run", func(t *testing.T) {
		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/"+uuid.NewString()+"/cancel", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("processing on this instance signals the worker", func(t *testing.T) {
		run := createRun(t, s)
		require.NoError(t, client.TranslationRun.UpdateOneID(run.ID).
			SetStatus(translationrun.StatusProcessing).
			Exec(ctx))

		pool := queue.NewPool("api-test-pod", client.Client, config.DefaultQueueConfig(), nil, nil)
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		pool.RegisterRun(run.ID, cancel)
		s.SetWorkerPool(pool)
		defer s.SetWorkerPool(nil)

		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp CancelResponse
		unmarshalBody(t, rec, &resp)
		assert.Equal(t, "cancelling", resp.Status)

		select {
		case <-runCtx.Done():
		default:
			t.Fatal("run context was not cancelled")
		}
	})

	t.Run("processing on another instance conflicts", func(t *testing.T) {
		run := createRun(t, s)
		require.NoError(t, client.TranslationRun.UpdateOneID(run.ID).
			SetStatus(translationrun.StatusProcessing).
			Exec(ctx))

		rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/"+run.ID+"/cancel", nil)
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp ErrorResponse
		unmarshalBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "another instance")
	})
}
