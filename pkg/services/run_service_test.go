package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/models"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

// claimForTest simulates a worker claim so lifecycle transitions can be
// exercised without the queue package.
func claimForTest(t *testing.T, client *ent.Client, runID, workerID string) {
	t.Helper()
	err := client.TranslationRun.UpdateOneID(runID).
		SetStatus(translationrun.StatusProcessing).
		SetWorkerID(workerID).
		SetClaimedAt(time.Now()).
		SetStartedAt(time.Now()).
		SetHeartbeatAt(time.Now()).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("enqueues pending run", func(t *testing.T) {
		run, err := service.CreateRun(ctx, models.CreateRunRequest{
			ProjectPath:     "/data/projects/novel.json",
			OutputPath:      "/data/out",
			ConfigOverrides: map[string]any{"round_limit": float64(2)},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, translationrun.StatusPending, run.Status)
		assert.Equal(t, "/data/projects/novel.json", run.ProjectPath)
		assert.Nil(t, run.WorkID)
		assert.Nil(t, run.WorkerID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{OutputPath: "/out"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{
			ProjectPath: "/p.json",
			OutputPath:  "/out",
		})
		require.NoError(t, err)
	}
	failed, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
	require.NoError(t, err)
	claimForTest(t, client.Client, failed.ID, "worker-1")
	require.NoError(t, service.MarkFailed(ctx, failed.ID, "llm unreachable"))

	t.Run("lists all with pagination", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.TotalCount)
		assert.Len(t, resp.Runs, 2)

		next, err := service.ListRuns(ctx, models.RunFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, next.Runs, 2)
		assert.NotEqual(t, resp.Runs[0].ID, next.Runs[0].ID)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{Status: "failed"})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, failed.ID, resp.Runs[0].ID)
		require.NotNil(t, resp.Runs[0].ErrorMessage)
		assert.Equal(t, "llm unreachable", *resp.Runs[0].ErrorMessage)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := service.ListRuns(ctx, models.RunFilters{Status: "bogus"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("records work id and stage", func(t *testing.T) {
		work := createTestWork(t, client.Client)
		run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)

		require.NoError(t, service.SetWorkID(ctx, run.ID, work.ID))
		require.NoError(t, service.SetStage(ctx, run.ID, models.StageTranslating))

		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		require.NotNil(t, got.WorkID)
		assert.Equal(t, work.ID, *got.WorkID)
		assert.Equal(t, string(models.StageTranslating), got.CurrentStage)
	})

	t.Run("terminal writes are idempotent", func(t *testing.T) {
		run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)
		claimForTest(t, client.Client, run.ID, "worker-1")

		require.NoError(t, service.MarkCompleted(ctx, run.ID))
		// A retry after a crash must not flip the status again
		require.NoError(t, service.MarkFailed(ctx, run.ID, "late failure"))

		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusCompleted, got.Status)
		assert.Nil(t, got.ErrorMessage)
		assert.NotNil(t, got.CompletedAt)
		assert.Nil(t, got.HeartbeatAt)
	})

	t.Run("review state flips between processing and review", func(t *testing.T) {
		run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)
		claimForTest(t, client.Client, run.ID, "worker-1")

		require.NoError(t, service.SetReviewState(ctx, run.ID, true))
		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusReview, got.Status)

		// Entering review twice is a state error
		assert.ErrorIs(t, service.SetReviewState(ctx, run.ID, true), ErrInvalidState)

		require.NoError(t, service.SetReviewState(ctx, run.ID, false))
		got, err = service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusProcessing, got.Status)
	})
}

func TestRunService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
	require.NoError(t, err)
	claimForTest(t, client.Client, run.ID, "worker-1")

	t.Run("owner heartbeats successfully", func(t *testing.T) {
		require.NoError(t, service.Heartbeat(ctx, run.ID, "worker-1"))
	})

	t.Run("foreign worker is rejected", func(t *testing.T) {
		assert.ErrorIs(t, service.Heartbeat(ctx, run.ID, "worker-2"), ErrInvalidState)
	})

	t.Run("terminal run rejects heartbeat", func(t *testing.T) {
		require.NoError(t, service.MarkCompleted(ctx, run.ID))
		assert.ErrorIs(t, service.Heartbeat(ctx, run.ID, "worker-1"), ErrInvalidState)
	})
}

func TestRunService_CancelPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("pending run cancels directly", func(t *testing.T) {
		run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)

		transitioned, err := service.CancelPending(ctx, run.ID)
		require.NoError(t, err)
		assert.True(t, transitioned)

		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("processing run needs the stop flag", func(t *testing.T) {
		run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)
		claimForTest(t, client.Client, run.ID, "worker-1")

		transitioned, err := service.CancelPending(ctx, run.ID)
		require.NoError(t, err)
		assert.False(t, transitioned)

		// Status untouched; the executor will observe the flag and finish
		got, err := service.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, translationrun.StatusProcessing, got.Status)
	})

	t.Run("terminal run returns ErrInvalidState", func(t *testing.T) {
		run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)
		claimForTest(t, client.Client, run.ID, "worker-1")
		require.NoError(t, service.MarkCancelled(ctx, run.ID))

		_, err = service.CancelPending(ctx, run.ID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("missing run returns ErrNotFound", func(t *testing.T) {
		_, err := service.CancelPending(ctx, "no-such-run")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_CountByStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
		require.NoError(t, err)
	}
	run, err := service.CreateRun(ctx, models.CreateRunRequest{ProjectPath: "/p.json", OutputPath: "/out"})
	require.NoError(t, err)
	claimForTest(t, client.Client, run.ID, "worker-1")

	counts, err := service.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["pending"])
	assert.Equal(t, 1, counts["processing"])
}
