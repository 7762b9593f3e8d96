package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

func TestWorkService_GetOrCreateWork(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkService(client.Client)
	ctx := context.Background()

	t.Run("creates work on first use", func(t *testing.T) {
		work, err := service.GetOrCreateWork(ctx, "novel-v1", "en", "zh", map[string]any{"domain": "literary"})
		require.NoError(t, err)
		assert.Equal(t, "novel-v1", work.WorkName)
		assert.Equal(t, "en", work.SourceLang)
		assert.Equal(t, "zh", work.TargetLang)
		assert.Equal(t, "literary", work.Config["domain"])
	})

	t.Run("returns existing work on repeat call", func(t *testing.T) {
		first, err := service.GetOrCreateWork(ctx, "repeat-work", "en", "zh", nil)
		require.NoError(t, err)

		second, err := service.GetOrCreateWork(ctx, "repeat-work", "ja", "ko", nil)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		// First writer wins; languages are not overwritten
		assert.Equal(t, "en", second.SourceLang)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.GetOrCreateWork(ctx, "", "en", "zh", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = service.GetOrCreateWork(ctx, "no-langs", "", "zh", nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestWorkService_GetWork(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkService(client.Client)
	ctx := context.Background()

	t.Run("retrieves by id and by name", func(t *testing.T) {
		created := createTestWork(t, client.Client)

		byID, err := service.GetWork(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.WorkName, byID.WorkName)

		byName, err := service.GetWorkByName(ctx, created.WorkName)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)
	})

	t.Run("returns ErrNotFound for missing work", func(t *testing.T) {
		_, err := service.GetWork(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.GetWorkByName(ctx, "no-such-work")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWorkService_Updates(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)

	t.Run("stores topic info", func(t *testing.T) {
		err := service.UpdateTopicInfo(ctx, work.ID, map[string]any{"domain": "technical", "style": "formal"})
		require.NoError(t, err)

		got, err := service.GetWork(ctx, work.ID)
		require.NoError(t, err)
		assert.Equal(t, "technical", got.TopicInfo["domain"])
	})

	t.Run("stores translation guide", func(t *testing.T) {
		err := service.UpdateTranslationGuide(ctx, work.ID, "Keep sentences short.")
		require.NoError(t, err)

		got, err := service.GetWork(ctx, work.ID)
		require.NoError(t, err)
		require.NotNil(t, got.TranslationGuide)
		assert.Equal(t, "Keep sentences short.", *got.TranslationGuide)
	})

	t.Run("replaces resume map", func(t *testing.T) {
		err := service.UpdateExtra(ctx, work.ID, map[string]any{"db_work_id": float64(work.ID)})
		require.NoError(t, err)

		got, err := service.GetWork(ctx, work.ID)
		require.NoError(t, err)
		assert.Contains(t, got.Extra, "db_work_id")
	})

	t.Run("missing work returns ErrNotFound", func(t *testing.T) {
		err := service.UpdateTopicInfo(ctx, 999999, map[string]any{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWorkService_Stats(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWorkService(client.Client)
	ctx := context.Background()

	t.Run("empty work has zero stats", func(t *testing.T) {
		work := createTestWork(t, client.Client)

		stats, err := service.Stats(ctx, work.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalAtoms)
		assert.Equal(t, 0, stats.DocCount)
		assert.Zero(t, stats.MeanScore)
		assert.Zero(t, stats.InputTokens)
	})

	t.Run("aggregates across documents", func(t *testing.T) {
		work := createTestWork(t, client.Client)
		docA := createTestDoc(t, client.Client, work.ID, "a.json")
		docB := createTestDoc(t, client.Client, work.ID, "b.json")
		atomsA := createTestAtoms(t, client.Client, docA.ID, "one", "two")
		atomsB := createTestAtoms(t, client.Client, docB.ID, "three")

		atomSvc := NewAtomService(client.Client)
		require.NoError(t, atomSvc.UpdateTranslation(ctx, atomsA[0].ID, "一", models.AtomFinalized))
		require.NoError(t, atomSvc.SetQuality(ctx, atomsA[0].ID, 8.0, nil))
		require.NoError(t, atomSvc.SetQuality(ctx, atomsB[0].ID, 6.0, nil))

		traceSvc := NewTraceService(client.Client)
		_, err := traceSvc.AddTrace(ctx, models.AddTraceRequest{
			AtomID:       atomsA[0].ID,
			Role:         models.RoleTranslator,
			Action:       models.ActionDraft,
			Content:      "一",
			InputTokens:  100,
			OutputTokens: 20,
		})
		require.NoError(t, err)
		_, err = traceSvc.AddTrace(ctx, models.AddTraceRequest{
			AtomID:       atomsA[1].ID,
			Role:         models.RoleTranslator,
			Action:       models.ActionDraft,
			Content:      "二",
			InputTokens:  50,
			OutputTokens: 10,
		})
		require.NoError(t, err)

		stats, err := service.Stats(ctx, work.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalAtoms)
		assert.Equal(t, 2, stats.DocCount)
		assert.Equal(t, 1, stats.ByStatus["finalized"])
		assert.Equal(t, 2, stats.ByStatus["untranslated"])
		assert.InDelta(t, 7.0, stats.MeanScore, 0.001)
		assert.Equal(t, 150, stats.InputTokens)
		assert.Equal(t, 30, stats.OutputTokens)
	})

	t.Run("missing work returns ErrNotFound", func(t *testing.T) {
		_, err := service.Stats(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
