package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

func TestAtomService_CreateAtomsBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAtomService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "chapter1.json")

	t.Run("returned atoms align with input order", func(t *testing.T) {
		items := []*models.Item{
			{RowIndex: 0, SourceText: "The quick brown fox."},
			{RowIndex: 1, SourceText: "Jumps over the lazy dog."},
			{RowIndex: 2, SourceText: "And runs away."},
		}

		atoms, err := service.CreateAtomsBatch(ctx, doc.ID, items)
		require.NoError(t, err)
		require.Len(t, atoms, 3)
		for i, atom := range atoms {
			assert.Equal(t, items[i].RowIndex, atom.Position)
			assert.Equal(t, items[i].SourceText, atom.SourceText)
			assert.Equal(t, SourceHash(items[i].SourceText), atom.SourceHash)
			assert.Equal(t, models.AtomUntranslated, atom.StatusCode)
		}
	})

	t.Run("duplicate positions in same doc are rejected", func(t *testing.T) {
		_, err := service.CreateAtomsBatch(ctx, doc.ID, []*models.Item{
			{RowIndex: 0, SourceText: "Duplicate position."},
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		atoms, err := service.CreateAtomsBatch(ctx, doc.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, atoms)
	})
}

func TestAtomService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAtomService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "listing.json")

	// Insert out of position order to prove ordering comes from the query
	_, err := service.CreateAtomsBatch(ctx, doc.ID, []*models.Item{
		{RowIndex: 2, SourceText: "third"},
		{RowIndex: 0, SourceText: "first"},
		{RowIndex: 1, SourceText: "second"},
	})
	require.NoError(t, err)

	t.Run("ListAtoms returns position order", func(t *testing.T) {
		atoms, err := service.ListAtoms(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, atoms, 3)
		assert.Equal(t, []string{"first", "second", "third"},
			[]string{atoms[0].SourceText, atoms[1].SourceText, atoms[2].SourceText})
	})

	t.Run("ListByStatus filters", func(t *testing.T) {
		atoms, err := service.ListAtoms(ctx, doc.ID)
		require.NoError(t, err)
		require.NoError(t, service.UpdateTranslation(ctx, atoms[1].ID, "第二", models.AtomDrafted))

		pending, err := service.ListByStatus(ctx, doc.ID, models.AtomUntranslated)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "first", pending[0].SourceText)
		assert.Equal(t, "third", pending[1].SourceText)
	})
}

func TestAtomService_UpdateTranslation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAtomService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "status.json")
	atoms := createTestAtoms(t, client.Client, doc.ID, "line")
	atomID := atoms[0].ID

	t.Run("status only advances", func(t *testing.T) {
		require.NoError(t, service.UpdateTranslation(ctx, atomID, "草稿", models.AtomDrafted))
		require.NoError(t, service.UpdateTranslation(ctx, atomID, "定稿", models.AtomFinalized))

		// A late write with a lower code keeps the content but not the regression
		require.NoError(t, service.UpdateTranslation(ctx, atomID, "迟到的修改", models.AtomRefined))

		atom, err := service.GetAtom(ctx, atomID)
		require.NoError(t, err)
		require.NotNil(t, atom.TranslatedText)
		assert.Equal(t, "迟到的修改", *atom.TranslatedText)
		assert.Equal(t, models.AtomFinalized, atom.StatusCode)
	})

	t.Run("missing atom returns ErrNotFound", func(t *testing.T) {
		err := service.UpdateTranslation(ctx, 999999, "x", models.AtomDrafted)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAtomService_Quality(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAtomService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "quality.json")
	atoms := createTestAtoms(t, client.Client, doc.ID, "line")

	t.Run("stores score and examination", func(t *testing.T) {
		err := service.SetQuality(ctx, atoms[0].ID, 6.5, map[string]any{"issues": []any{"terminology drift"}})
		require.NoError(t, err)

		atom, err := service.GetAtom(ctx, atoms[0].ID)
		require.NoError(t, err)
		require.NotNil(t, atom.QualityScore)
		assert.InDelta(t, 6.5, *atom.QualityScore, 0.001)
		assert.Contains(t, atom.Examination, "issues")
	})

	t.Run("stores context info", func(t *testing.T) {
		err := service.SetContextInfo(ctx, atoms[0].ID, map[string]any{"window_start": float64(0)})
		require.NoError(t, err)

		atom, err := service.GetAtom(ctx, atoms[0].ID)
		require.NoError(t, err)
		assert.Contains(t, atom.ContextInfo, "window_start")
	})
}

func TestAtomService_FindSimilar(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAtomService(client.Client)
	ctx := context.Background()

	work := createTestWork(t, client.Client)
	doc := createTestDoc(t, client.Client, work.ID, "vectors.json")
	atoms := createTestAtoms(t, client.Client, doc.ID, "exact", "close", "far", "unembedded")

	require.NoError(t, service.SetSemanticVec(ctx, atoms[0].ID, unitVector(0)))
	require.NoError(t, service.SetSemanticVec(ctx, atoms[1].ID, blendVector(0, 1)))
	require.NoError(t, service.SetSemanticVec(ctx, atoms[2].ID, unitVector(1)))

	t.Run("orders by cosine distance and skips unembedded", func(t *testing.T) {
		results, err := service.FindSimilar(ctx, doc.ID, unitVector(0), 10)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "exact", results[0].SourceText)
		assert.Equal(t, "close", results[1].SourceText)
		assert.Equal(t, "far", results[2].SourceText)
	})

	t.Run("respects limit", func(t *testing.T) {
		results, err := service.FindSimilar(ctx, doc.ID, unitVector(0), 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "exact", results[0].SourceText)
	})
}
