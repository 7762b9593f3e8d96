package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

func makeItems(lengths ...int) []*models.Item {
	items := make([]*models.Item, len(lengths))
	for i, n := range lengths {
		items[i] = &models.Item{
			RowIndex:   i,
			SourceText: strings.Repeat("a", n),
		}
	}
	return items
}

// indexGroups flattens batches into groups of original row indexes.
func indexGroups(batches []Batch) [][]int {
	groups := make([][]int, 0, len(batches))
	for _, b := range batches {
		g := make([]int, 0, len(b.Items))
		for _, it := range b.Items {
			g = append(g, it.RowIndex)
		}
		groups = append(groups, g)
	}
	return groups
}

func TestSplit(t *testing.T) {
	t.Run("empty input yields no batches", func(t *testing.T) {
		assert.Empty(t, Split(nil, 100))
		assert.Empty(t, Split([]*models.Item{}, 100))
	})

	t.Run("single item under budget", func(t *testing.T) {
		batches := Split(makeItems(50), 100)
		require.Len(t, batches, 1)
		assert.Equal(t, 0, batches[0].Start)
		assert.Len(t, batches[0].Items, 1)
	})

	t.Run("greedy packing up to budget", func(t *testing.T) {
		// 40+40 fits in 100, the third 40 starts a new batch.
		batches := Split(makeItems(40, 40, 40), 100)
		assert.Equal(t, [][]int{{0, 1}, {2}}, indexGroups(batches))
		assert.Equal(t, 0, batches[0].Start)
		assert.Equal(t, 2, batches[1].Start)
	})

	t.Run("oversize item is isolated", func(t *testing.T) {
		batches := Split(makeItems(200, 200, 8000, 200), 6000)
		assert.Equal(t, [][]int{{0, 1}, {2}, {3}}, indexGroups(batches))
		assert.Equal(t, 0, batches[0].Start)
		assert.Equal(t, 2, batches[1].Start)
		assert.Equal(t, 3, batches[2].Start)
	})

	t.Run("oversize item first", func(t *testing.T) {
		batches := Split(makeItems(8000, 100, 100), 6000)
		assert.Equal(t, [][]int{{0}, {1, 2}}, indexGroups(batches))
	})

	t.Run("concatenation preserves input order", func(t *testing.T) {
		items := makeItems(10, 90, 30, 70, 120, 5, 5, 5)
		batches := Split(items, 100)

		var flat []*models.Item
		for _, b := range batches {
			flat = append(flat, b.Items...)
		}
		require.Len(t, flat, len(items))
		for i, it := range flat {
			assert.Same(t, items[i], it, "item %d out of place", i)
			assert.Equal(t, i, it.RowIndex)
		}
		for _, b := range batches {
			if len(b.Items) > 1 {
				assert.LessOrEqual(t, b.Chars(), 100)
			}
		}
	})

	t.Run("zero budget falls back to default", func(t *testing.T) {
		batches := Split(makeItems(100, 100), 0)
		assert.Equal(t, [][]int{{0, 1}}, indexGroups(batches))
	})

	t.Run("multibyte text is counted in runes", func(t *testing.T) {
		items := []*models.Item{
			{RowIndex: 0, SourceText: strings.Repeat("译", 60)},
			{RowIndex: 1, SourceText: strings.Repeat("文", 60)},
		}
		// 60+60 runes exceed a 100-rune budget even though a byte count
		// would already have split after the first item.
		batches := Split(items, 100)
		assert.Equal(t, [][]int{{0}, {1}}, indexGroups(batches))
	})
}

func TestSplitByText(t *testing.T) {
	identity := func(s string) string { return s }

	t.Run("packs strings under the budget", func(t *testing.T) {
		groups := SplitByText([]string{"aaaa", "bbbb", "cccc"}, 8, identity)
		assert.Equal(t, [][]string{{"aaaa", "bbbb"}, {"cccc"}}, groups)
	})

	t.Run("oversize element is isolated", func(t *testing.T) {
		groups := SplitByText([]string{"aa", strings.Repeat("x", 20), "bb"}, 10, identity)
		require.Len(t, groups, 3)
		assert.Equal(t, []string{"aa"}, groups[0])
		assert.Len(t, groups[1], 1)
		assert.Equal(t, []string{"bb"}, groups[2])
	})

	t.Run("measures runes through the accessor", func(t *testing.T) {
		type term struct{ name string }
		terms := []term{{strings.Repeat("术", 6)}, {strings.Repeat("语", 6)}}

		groups := SplitByText(terms, 10, func(tm term) string { return tm.name })

		require.Len(t, groups, 2)
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, SplitByText(nil, 10, identity))
	})
}

func TestContextWindow(t *testing.T) {
	items := makeItems(1, 1, 1, 1, 1, 1)

	t.Run("start of sequence has no context", func(t *testing.T) {
		assert.Nil(t, ContextWindow(items, 0, 3))
	})

	t.Run("window is clamped at the beginning", func(t *testing.T) {
		win := ContextWindow(items, 2, 3)
		require.Len(t, win, 2)
		assert.Same(t, items[0], win[0])
		assert.Same(t, items[1], win[1])
	})

	t.Run("full window", func(t *testing.T) {
		win := ContextWindow(items, 5, 3)
		require.Len(t, win, 3)
		assert.Same(t, items[2], win[0])
		assert.Same(t, items[4], win[2])
	})

	t.Run("zero k disables context", func(t *testing.T) {
		assert.Nil(t, ContextWindow(items, 5, 0))
	})
}
