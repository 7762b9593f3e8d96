package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/agent/review"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// stubBridges serves a fixed bridge map in place of the worker executor.
type stubBridges struct {
	bridges map[string]*review.Bridge
}

func (s *stubBridges) Bridge(runID string) (*review.Bridge, bool) {
	bridge, ok := s.bridges[runID]
	return bridge, ok
}

// askInBackground blocks a fake worker on bridge.Ask and returns the channel
// its reply arrives on. The worker is released at test end via the context.
func askInBackground(t *testing.T, bridge *review.Bridge, taskType string, payload any) <-chan any {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	replyCh := make(chan any, 1)
	go func() {
		reply, err := bridge.Ask(ctx, taskType, payload)
		if err != nil {
			replyCh <- err
			return
		}
		replyCh <- reply
	}()
	return replyCh
}

// awaitPendingTask polls GET review until the worker's task surfaces.
func awaitPendingTask(t *testing.T, s *Server, runID string) review.Task {
	t.Helper()
	var task review.Task
	require.Eventually(t, func() bool {
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/"+runID+"/review", nil)
		if rec.Code != http.StatusOK {
			return false
		}
		return json.Unmarshal(rec.Body.Bytes(), &task) == nil
	}, time.Second, 10*time.Millisecond, "review task never surfaced")
	return task
}

func TestReviewEndpointAvailability(t *testing.T) {
	t.Run("no executor attached", func(t *testing.T) {
		s := newTestRouter(nil)
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1/review", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("run not executing on this instance", func(t *testing.T) {
		s := newTestRouter(&stubBridges{})
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1/review", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("nothing pending", func(t *testing.T) {
		s := newTestRouter(&stubBridges{bridges: map[string]*review.Bridge{
			"run-1": review.NewBridge(),
		}})
		rec := doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1/review", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTranslationReviewRoundTrip(t *testing.T) {
	bridge := review.NewBridge()
	s := newTestRouter(&stubBridges{bridges: map[string]*review.Bridge{"run-1": bridge}})

	replyCh := askInBackground(t, bridge, models.TaskBatchTranslationReview, models.ReviewBatch{
		Items: []models.ReviewItem{{
			Index:          4,
			SourceText:     "The wand chose the wizard.",
			TranslatedText: "魔杖选择了巫师。",
			Score:          5.5,
		}},
	})

	task := awaitPendingTask(t, s, "run-1")
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.TaskBatchTranslationReview, task.TaskType)

	payload, err := json.Marshal(task.Payload)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "review_items")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/run-1/review", ReviewDecisionRequest{
		TaskID: task.ID,
		ReviewResults: []models.ReviewDecision{{
			Index:       4,
			Action:      models.ReviewActionCustom,
			Translation: "那根魔杖挑中了巫师。",
		}},
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp ReviewAnswerResponse
	unmarshalBody(t, rec, &resp)
	assert.Equal(t, task.ID, resp.TaskID)
	assert.Equal(t, "answered", resp.Status)

	select {
	case got := <-replyCh:
		result, ok := got.(models.ReviewResult)
		require.True(t, ok, "unexpected reply type %T", got)
		require.Len(t, result.Results, 1)
		assert.Equal(t, models.ReviewActionCustom, result.Results[0].Action)
		assert.Equal(t, "那根魔杖挑中了巫师。", result.Results[0].Translation)
	case <-time.After(time.Second):
		t.Fatal("worker never received the decision")
	}

	rec = doRequest(t, s, http.MethodGet, "/api/v1/runs/run-1/review", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "answered task should be gone")
}

func TestTerminologyReviewRoundTrip(t *testing.T) {
	bridge := review.NewBridge()
	s := newTestRouter(&stubBridges{bridges: map[string]*review.Bridge{"run-9": bridge}})

	replyCh := askInBackground(t, bridge, models.TaskTerminologyReview, map[string]any{
		"terms": []map[string]string{
			{"term": "Horcrux", "translation": "魂器"},
			{"term": "Muggle", "translation": "麻瓜"},
		},
	})

	task := awaitPendingTask(t, s, "run-9")
	assert.Equal(t, models.TaskTerminologyReview, task.TaskType)

	// Empty task_id answers the pending task.
	rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/run-9/review", ReviewDecisionRequest{
		ApprovedTerms: []models.ApprovedTerm{
			{Term: "Horcrux", Translation: "魂器"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	select {
	case got := <-replyCh:
		result, ok := got.(models.TermReviewResult)
		require.True(t, ok, "unexpected reply type %T", got)
		require.Len(t, result.ApprovedTerms, 1)
		assert.Equal(t, "Horcrux", result.ApprovedTerms[0].Term)
	case <-time.After(time.Second):
		t.Fatal("worker never received the decision")
	}
}

func TestReviewStaleTaskRejected(t *testing.T) {
	bridge := review.NewBridge()
	s := newTestRouter(&stubBridges{bridges: map[string]*review.Bridge{"run-1": bridge}})

	replyCh := askInBackground(t, bridge, models.TaskBatchTranslationReview, models.ReviewBatch{})
	task := awaitPendingTask(t, s, "run-1")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/run-1/review", ReviewDecisionRequest{
		TaskID:        "someone-elses-task",
		ReviewResults: []models.ReviewDecision{{Index: 0, Action: models.ReviewActionAccept}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The worker is still parked; a correct answer releases it.
	rec = doRequest(t, s, http.MethodPost, "/api/v1/runs/run-1/review", ReviewDecisionRequest{
		TaskID:        task.ID,
		ReviewResults: []models.ReviewDecision{{Index: 0, Action: models.ReviewActionAccept}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case got := <-replyCh:
		_, ok := got.(models.ReviewResult)
		assert.True(t, ok, "unexpected reply type %T", got)
	case <-time.After(time.Second):
		t.Fatal("worker never received the decision")
	}
}

func TestReviewUnsupportedTaskType(t *testing.T) {
	bridge := review.NewBridge()
	s := newTestRouter(&stubBridges{bridges: map[string]*review.Bridge{"run-1": bridge}})

	askInBackground(t, bridge, models.TaskErrorCorrection, map[string]any{"error": "boom"})
	task := awaitPendingTask(t, s, "run-1")

	rec := doRequest(t, s, http.MethodPost, "/api/v1/runs/run-1/review", ReviewDecisionRequest{
		TaskID: task.ID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
