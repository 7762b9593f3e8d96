package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/sourcedoc"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

func TestDocService_UpsertDoc(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)

	t.Run("creates then reuses", func(t *testing.T) {
		first, err := service.UpsertDoc(ctx, work.ID, "data/chapter1.json")
		require.NoError(t, err)
		assert.Equal(t, sourcedoc.StatusPending, first.Status)

		second, err := service.UpsertDoc(ctx, work.ID, "data/chapter1.json")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("same path under another work is a new doc", func(t *testing.T) {
		other := createTestWork(t, client.Client)

		doc, err := service.UpsertDoc(ctx, work.ID, "data/shared.json")
		require.NoError(t, err)
		otherDoc, err := service.UpsertDoc(ctx, other.ID, "data/shared.json")
		require.NoError(t, err)
		assert.NotEqual(t, doc.ID, otherDoc.ID)
	})

	t.Run("validates file path", func(t *testing.T) {
		_, err := service.UpsertDoc(ctx, work.ID, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestDocService_MarkProcessed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)

	t.Run("records status and atom count", func(t *testing.T) {
		doc, err := service.UpsertDoc(ctx, work.ID, "processed.json")
		require.NoError(t, err)

		require.NoError(t, service.MarkProcessed(ctx, doc.ID, 42))

		got, err := service.GetDoc(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, sourcedoc.StatusProcessed, got.Status)
		assert.Equal(t, 42, got.AtomCount)
	})

	t.Run("missing doc returns ErrNotFound", func(t *testing.T) {
		err := service.MarkProcessed(ctx, 999999, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocService_ListDocs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDocService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	paths := []string{"01.json", "02.json", "03.json"}
	for _, p := range paths {
		_, err := service.UpsertDoc(ctx, work.ID, p)
		require.NoError(t, err)
	}

	docs, err := service.ListDocs(ctx, work.ID)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, p := range paths {
		assert.Equal(t, p, docs[i].FilePath)
	}
}
