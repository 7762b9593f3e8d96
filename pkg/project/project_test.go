package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/output"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b_second.txt"), "Second line one.\nSecond line two.\n")
	writeFile(t, filepath.Join(dir, "a_first.txt"), "First line one.\n\nFirst line three.\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored")

	p, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), p.Name)
	require.Len(t, p.Documents, 2)
	assert.Equal(t, "a_first.txt", p.Documents[0].Path)
	assert.Equal(t, "b_second.txt", p.Documents[1].Path)

	first := p.Documents[0].Items
	require.Len(t, first, 3)
	assert.Equal(t, "First line one.", first[0].SourceText)
	assert.Equal(t, "", first[1].SourceText)
	assert.Equal(t, "First line three.", first[2].SourceText)
	for i, it := range first {
		assert.Equal(t, i, it.RowIndex)
		assert.Equal(t, "a_first.txt", it.FilePath)
		assert.True(t, it.Untranslated())
	}

	assert.Equal(t, 4, p.PendingCount(), "blank line is not pending")
	assert.Len(t, p.Items(), 5)
}

func TestLoadJSONDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bare.json"),
		`[{"row_index": 0, "source_text": "Hello."}, {"row_index": 1, "source_text": "Bye."}]`)
	writeFile(t, filepath.Join(dir, "wrapped.json"),
		`{"items": [{"row_index": 0, "source_text": "Wrapped."}]}`)

	p, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, p.Documents, 2)

	assert.Equal(t, "bare.json", p.Documents[0].Path)
	require.Len(t, p.Documents[0].Items, 2)
	assert.Equal(t, "Hello.", p.Documents[0].Items[0].SourceText)
	assert.Equal(t, "bare.json", p.Documents[0].Items[0].FilePath)

	assert.Equal(t, "wrapped.json", p.Documents[1].Path)
	require.Len(t, p.Documents[1].Items, 1)
	assert.Equal(t, "Wrapped.", p.Documents[1].Items[0].SourceText)
}

func TestLoadSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "story.txt")
	writeFile(t, path, "Only line.\n")

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "story", p.Name)
	require.Len(t, p.Documents, 1)
	assert.Equal(t, "story.txt", p.Documents[0].Path)
	require.Len(t, p.Documents[0].Items, 1)
	assert.Equal(t, "Only line.", p.Documents[0].Items[0].SourceText)
}

func TestLoadRepairsRowIndices(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doc.json"),
		`[{"source_text": "A."}, {"source_text": "B."}, {"source_text": "C."}]`)

	p, err := Load(dir)
	require.NoError(t, err)
	items := p.Documents[0].Items
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, i, it.RowIndex)
	}
}

func TestLoadRejectsEmptyAndMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorContains(t, err, "project not found")

	empty := t.TempDir()
	_, err = Load(empty)
	assert.ErrorContains(t, err, "no documents")
}

func TestStateRoundTrip(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "ch1.txt"), "Alice went home.\nBob stayed.\n")

	p, err := Load(src)
	require.NoError(t, err)

	items := p.Documents[0].Items
	items[0].TranslatedText = "爱丽丝回家了。"
	items[0].Status = models.AtomFinalized

	p.SetWorkID(7)
	p.SetDocMap(map[string]int{"ch1.txt": 12})
	p.SetAtomMap(map[string]map[int]int{"ch1.txt": {0: 101, 1: 102}})
	p.SetTermTable(models.TermTable{"Alice": "爱丽丝"})
	p.SetMemory(map[string]string{"domain": "literary", "style": "narrative"})

	out := t.TempDir()
	require.NoError(t, SaveState(p, out))
	assert.True(t, HasState(out))

	restored, err := Load(out)
	require.NoError(t, err)

	assert.Equal(t, p.Name, restored.Name)
	require.Len(t, restored.Documents, 1)
	got := restored.Documents[0].Items
	require.Len(t, got, 2)
	assert.Equal(t, "爱丽丝回家了。", got[0].TranslatedText)
	assert.Equal(t, models.AtomFinalized, got[0].Status)
	assert.False(t, got[0].Untranslated())
	assert.True(t, got[1].Untranslated())
	assert.Equal(t, "ch1.txt", got[0].FilePath, "file path restored from document")
	assert.Equal(t, 1, restored.PendingCount())

	assert.Equal(t, 7, restored.WorkID())
	assert.Equal(t, map[string]int{"ch1.txt": 12}, restored.DocMap())
	assert.Equal(t, map[string]map[int]int{"ch1.txt": {0: 101, 1: 102}}, restored.AtomMap())
	assert.Equal(t, models.TermTable{"Alice": "爱丽丝"}, restored.TermTable())
	assert.Equal(t, map[string]string{"domain": "literary", "style": "narrative"}, restored.Memory())
}

func TestTermTableAcceptsObjectValues(t *testing.T) {
	p := &Project{Extra: map[string]any{
		extraTerms: map[string]any{
			"Alice":  "爱丽丝",
			"Bob":    map[string]any{"translation": "鲍勃", "word_type": "entity"},
			"Banner": map[string]any{"note": "no rendering"},
			"Blank":  "",
		},
	}}

	table := p.TermTable()
	assert.Equal(t, models.TermTable{"Alice": "爱丽丝", "Bob": "鲍勃"}, table)
}

func TestAccessorsOnFreshProject(t *testing.T) {
	p := &Project{Extra: map[string]any{}}
	assert.Zero(t, p.WorkID())
	assert.Empty(t, p.DocMap())
	assert.Empty(t, p.AtomMap())
	assert.Empty(t, p.TermTable())
	assert.Empty(t, p.Memory())
}

func TestSaveWritesArtifactsAndState(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "ch1.txt"), "Alice went home.\n")
	writeFile(t, filepath.Join(src, "ch2.txt"), "Bob stayed.\n")

	p, err := Load(src)
	require.NoError(t, err)
	for _, doc := range p.Documents {
		for _, it := range doc.Items {
			it.TranslatedText = "译文"
			it.Status = models.AtomFinalized
		}
	}

	out := t.TempDir()
	type call struct {
		done, total int
		file        string
	}
	var calls []call
	err = Save(p, out, src, output.Config{}, func(done, total int, file string) {
		calls = append(calls, call{done, total, file})
	})
	require.NoError(t, err)

	assert.Equal(t, []call{{1, 2, "ch1.txt"}, {2, 2, "ch2.txt"}}, calls)
	assert.True(t, HasState(out))
	assert.FileExists(t, filepath.Join(out, "ch1_translated.txt"))
	assert.FileExists(t, filepath.Join(out, "ch1_bilingual.txt"))
	assert.FileExists(t, filepath.Join(out, "ch2_translated.txt"))

	data, err := os.ReadFile(filepath.Join(out, "ch1_translated.txt"))
	require.NoError(t, err)
	assert.Equal(t, "译文\n", string(data))
}

func TestStateFileIsValidJSON(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "ch1.txt"), "Alice went home.\n")

	p, err := Load(src)
	require.NoError(t, err)
	p.SetWorkID(3)

	out := t.TempDir()
	require.NoError(t, SaveState(p, out))

	data, err := os.ReadFile(filepath.Join(out, StateFilename))
	require.NoError(t, err)
	var shape map[string]any
	require.NoError(t, json.Unmarshal(data, &shape))
	assert.Contains(t, shape, "files")
	assert.Contains(t, shape, "extra")
}
