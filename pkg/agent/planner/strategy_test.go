package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/chunk"
	"github.com/linguaflow/linguaflow/pkg/models"
)

func itemsFromLines(lines ...string) []*models.Item {
	items := make([]*models.Item, len(lines))
	for i, line := range lines {
		items[i] = &models.Item{RowIndex: i, SourceText: line, Status: models.AtomUntranslated}
	}
	return items
}

func TestPlanChunkStrategies(t *testing.T) {
	t.Run("technical text gets literal strategy", func(t *testing.T) {
		items := itemsFromLines(
			"The HTTP-Server MUST reject TLS-1.0 handshakes.",
			"Set Max-Connections and Keep-Alive in the Config-File.",
			"Restart the API-Gateway after updating DNS-Records.",
		)
		strategies := PlanChunkStrategies(items, 6000)
		require.Len(t, strategies, 1)

		cs := strategies[0]
		assert.Equal(t, models.StrategyLiteral, cs.Strategy)
		assert.Greater(t, cs.TerminologyDensity, 0.3)
		assert.Contains(t, cs.Reason, "literal")
	})

	t.Run("formal register gets literal strategy", func(t *testing.T) {
		items := itemsFromLines(
			"the party hereby agrees, whereas the terms stand; furthermore the deposit is due.",
			"therefore the agreement binds both signatories, moreover without exception.",
		)
		strategies := PlanChunkStrategies(items, 6000)
		require.Len(t, strategies, 1)
		assert.Equal(t, StyleFormal, strategies[0].Style)
		assert.Equal(t, models.StrategyLiteral, strategies[0].Strategy)
	})

	t.Run("chinese literary text gets stylized strategy", func(t *testing.T) {
		items := itemsFromLines(
			"月光洒在湖面上，泛起粼粼波光。她轻声叹息，望向远方……",
			"风吹过竹林，沙沙作响；他停下脚步，回头张望。",
		)
		strategies := PlanChunkStrategies(items, 6000)
		require.Len(t, strategies, 1)
		assert.Equal(t, StyleLiterary, strategies[0].Style)
		assert.Equal(t, models.StrategyStylized, strategies[0].Strategy)
	})

	t.Run("casual dialogue gets free strategy", func(t *testing.T) {
		items := itemsFromLines(
			"hey, you coming to the party tonight?",
			"yeah, i guess so. see you at eight then.",
		)
		strategies := PlanChunkStrategies(items, 6000)
		require.Len(t, strategies, 1)
		assert.Equal(t, models.StrategyFree, strategies[0].Strategy)
		assert.Equal(t, StyleInformal, strategies[0].Style)
	})

	t.Run("indices align with chunker batches", func(t *testing.T) {
		items := itemsFromLines(
			strings.Repeat("a", 90),
			strings.Repeat("b", 90),
			strings.Repeat("c", 90),
		)
		budget := 100

		strategies := PlanChunkStrategies(items, budget)
		batches := chunk.Split(items, budget)
		require.Len(t, strategies, len(batches))
		for i, cs := range strategies {
			assert.Equal(t, i, cs.ChunkIndex)
		}
	})

	t.Run("sample is truncated", func(t *testing.T) {
		items := itemsFromLines(strings.Repeat("长", 80))
		strategies := PlanChunkStrategies(items, 6000)
		require.Len(t, strategies, 1)
		assert.Equal(t, strings.Repeat("长", 50)+"...", strategies[0].TextSample)
	})

	t.Run("empty input yields no strategies", func(t *testing.T) {
		assert.Empty(t, PlanChunkStrategies(nil, 6000))
	})
}

func TestBuildStyleGuide(t *testing.T) {
	t.Run("defaults to informal when nothing signals", func(t *testing.T) {
		guide := BuildStyleGuide(itemsFromLines("a plain line", "another plain line"))
		assert.Equal(t, StyleInformal, guide.OverallStyle)
		assert.Equal(t, "casual", guide.Tone)
		assert.True(t, guide.Preferences.PreserveFormatting)
		assert.False(t, guide.Preferences.UseHonorifics)
		assert.False(t, guide.Preferences.MaintainRhythm)
	})

	t.Run("formal markers produce professional tone", func(t *testing.T) {
		guide := BuildStyleGuide(itemsFromLines(
			"therefore the committee shall convene",
			"furthermore, the budget is hereby approved",
		))
		assert.Equal(t, StyleFormal, guide.OverallStyle)
		assert.Equal(t, "professional", guide.Tone)
		assert.True(t, guide.Preferences.UseHonorifics)
	})

	t.Run("cjk punctuation produces literary tone", func(t *testing.T) {
		guide := BuildStyleGuide(itemsFromLines(
			"夜色如墨，繁星点点。",
			"他说：“明天见。”然后转身离去……",
		))
		assert.Equal(t, StyleLiterary, guide.OverallStyle)
		assert.Equal(t, "artistic", guide.Tone)
		assert.True(t, guide.Preferences.MaintainRhythm)
	})

	t.Run("empty input keeps defaults", func(t *testing.T) {
		guide := BuildStyleGuide(nil)
		assert.Equal(t, StyleInformal, guide.OverallStyle)
		assert.True(t, guide.Preferences.PreserveFormatting)
	})

	t.Run("only untranslated items are sampled", func(t *testing.T) {
		items := itemsFromLines(
			"夜色如墨，繁星点点，月光如水。",
			"他说：“明天见。”然后转身离去……",
		)
		items[0].Status = models.AtomFinalized
		items[1].Status = models.AtomFinalized

		guide := BuildStyleGuide(items)
		assert.Equal(t, StyleInformal, guide.OverallStyle)
	})
}
