package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/pkg/models"
)

var workSeq int

// createTestWork creates a work with a unique name for test isolation.
func createTestWork(t *testing.T, client *ent.Client) *ent.ProjectWork {
	t.Helper()
	workSeq++
	work, err := NewWorkService(client).GetOrCreateWork(
		context.Background(),
		fmt.Sprintf("%s-work-%d", t.Name(), workSeq),
		"en", "zh", nil,
	)
	require.NoError(t, err)
	return work
}

// createTestDoc registers a document under the given work.
func createTestDoc(t *testing.T, client *ent.Client, workID int, filePath string) *ent.SourceDoc {
	t.Helper()
	doc, err := NewDocService(client).UpsertDoc(context.Background(), workID, filePath)
	require.NoError(t, err)
	return doc
}

// createTestAtoms registers one atom per source line, in position order.
func createTestAtoms(t *testing.T, client *ent.Client, docID int, lines ...string) []*ent.ProcessingAtom {
	t.Helper()
	items := make([]*models.Item, len(lines))
	for i, line := range lines {
		items[i] = &models.Item{RowIndex: i, SourceText: line}
	}
	atoms, err := NewAtomService(client).CreateAtomsBatch(context.Background(), docID, items)
	require.NoError(t, err)
	return atoms
}

// unitVector returns a 768-dim vector with a single 1.0 component. Cosine
// distance between different unit vectors is 1, between equal ones 0, which
// makes nearest-neighbor ordering deterministic in tests.
func unitVector(component int) pgvector.Vector {
	values := make([]float32, 768)
	values[component%768] = 1.0
	return pgvector.NewVector(values)
}

// blendVector returns a 768-dim vector dominated by one component with a
// small contribution from another, for middle-distance test cases.
func blendVector(major, minor int) pgvector.Vector {
	values := make([]float32, 768)
	values[major%768] = 0.9
	values[minor%768] = 0.1
	return pgvector.NewVector(values)
}
