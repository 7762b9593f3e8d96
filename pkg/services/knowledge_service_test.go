package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/linguaflow/linguaflow/test/database"
)

func TestKnowledgeService_AddEntry(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)

	t.Run("stores entry with vector and tags", func(t *testing.T) {
		vec := unitVector(0)
		entry, err := service.AddEntry(ctx, work.ID, "魔杖 is the established rendering of wand", "glossary", &vec, []string{"fantasy"})
		require.NoError(t, err)
		assert.Equal(t, work.ID, entry.WorkID)
		assert.Equal(t, []string{"fantasy"}, entry.Tags)
	})

	t.Run("vector is optional", func(t *testing.T) {
		entry, err := service.AddEntry(ctx, work.ID, "Prefer short sentences.", "style_guide", nil, nil)
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
	})

	t.Run("validates content", func(t *testing.T) {
		_, err := service.AddEntry(ctx, work.ID, "", "glossary", nil, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown entry type", func(t *testing.T) {
		_, err := service.AddEntry(ctx, work.ID, "text", "scratchpad", nil, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestKnowledgeService_SearchSimilar(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)

	exact := unitVector(0)
	near := blendVector(0, 1)
	far := unitVector(1)
	_, err := service.AddEntry(ctx, work.ID, "exact match", "tm", &exact, nil)
	require.NoError(t, err)
	_, err = service.AddEntry(ctx, work.ID, "close match", "tm", &near, nil)
	require.NoError(t, err)
	_, err = service.AddEntry(ctx, work.ID, "far match", "tm", &far, nil)
	require.NoError(t, err)
	// Unembedded entries never appear in similarity results
	_, err = service.AddEntry(ctx, work.ID, "style note", "style_guide", nil, nil)
	require.NoError(t, err)

	t.Run("orders by cosine distance", func(t *testing.T) {
		results, err := service.SearchSimilar(ctx, work.ID, unitVector(0), 10)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "exact match", results[0].Content)
		assert.Equal(t, "close match", results[1].Content)
		assert.Equal(t, "far match", results[2].Content)
	})

	t.Run("default limit is three", func(t *testing.T) {
		results, err := service.SearchSimilar(ctx, work.ID, unitVector(0), 0)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("scoped to the work", func(t *testing.T) {
		other := createTestWork(t, client.Client)
		results, err := service.SearchSimilar(ctx, other.ID, unitVector(0), 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestKnowledgeService_ListByType(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewKnowledgeService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	_, err := service.AddEntry(ctx, work.ID, "term A", "glossary", nil, nil)
	require.NoError(t, err)
	_, err = service.AddEntry(ctx, work.ID, "term B", "glossary", nil, nil)
	require.NoError(t, err)
	_, err = service.AddEntry(ctx, work.ID, "note", "style_guide", nil, nil)
	require.NoError(t, err)

	entries, err := service.ListByType(ctx, work.ID, "glossary")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "term A", entries[0].Content)

	count, err := service.CountEntries(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
