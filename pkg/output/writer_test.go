package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/config"
	"github.com/linguaflow/linguaflow/pkg/models"
)

func sampleItems() []*models.Item {
	return []*models.Item{
		{RowIndex: 0, SourceText: "Alice went home.", TranslatedText: "爱丽丝回家了。", Status: models.AtomFinalized},
		{RowIndex: 1, SourceText: "Bob stayed.", TranslatedText: "鲍勃留下了。", Status: models.AtomFinalized},
	}
}

func TestWriteDocument(t *testing.T) {
	t.Run("writes translated and bilingual artifacts", func(t *testing.T) {
		dir := t.TempDir()

		written, err := WriteDocument(dir, "ch1.txt", sampleItems(), Config{})
		require.NoError(t, err)
		require.Len(t, written, 2)

		translated, err := os.ReadFile(filepath.Join(dir, "ch1_translated.txt"))
		require.NoError(t, err)
		assert.Equal(t, "爱丽丝回家了。\n鲍勃留下了。\n", string(translated))

		bilingual, err := os.ReadFile(filepath.Join(dir, "ch1_bilingual.txt"))
		require.NoError(t, err)
		assert.Equal(t,
			"Alice went home.\n爱丽丝回家了。\n\nBob stayed.\n鲍勃留下了。\n",
			string(bilingual))
	})

	t.Run("translation first ordering", func(t *testing.T) {
		dir := t.TempDir()

		_, err := WriteDocument(dir, "ch1.txt", sampleItems(), Config{
			BilingualOrder: config.BilingualTranslationFirst,
		})
		require.NoError(t, err)

		bilingual, err := os.ReadFile(filepath.Join(dir, "ch1_bilingual.txt"))
		require.NoError(t, err)
		assert.Equal(t,
			"爱丽丝回家了。\nAlice went home.\n\n鲍勃留下了。\nBob stayed.\n",
			string(bilingual))
	})

	t.Run("custom suffix and extension preserved", func(t *testing.T) {
		dir := t.TempDir()

		written, err := WriteDocument(dir, "story.md", sampleItems(), Config{TranslatedSuffix: "_zh"})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "story_zh.md"), written[0])
		assert.Equal(t, filepath.Join(dir, "story_bilingual.md"), written[1])
	})

	t.Run("untranslated lines fall back to source", func(t *testing.T) {
		dir := t.TempDir()
		items := []*models.Item{
			{RowIndex: 0, SourceText: "Alice went home.", TranslatedText: "爱丽丝回家了。"},
			{RowIndex: 1, SourceText: "Bob stayed."},
		}

		_, err := WriteDocument(dir, "ch1.txt", items, Config{})
		require.NoError(t, err)

		translated, err := os.ReadFile(filepath.Join(dir, "ch1_translated.txt"))
		require.NoError(t, err)
		assert.Equal(t, "爱丽丝回家了。\nBob stayed.\n", string(translated))
	})

	t.Run("mirrors subdirectories", func(t *testing.T) {
		dir := t.TempDir()

		written, err := WriteDocument(dir, filepath.Join("book", "ch2.txt"), sampleItems(), Config{})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "book", "ch2_translated.txt"), written[0])
		_, err = os.Stat(written[0])
		assert.NoError(t, err)
	})
}
