package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

func TestCheck(t *testing.T) {
	table := models.TermTable{
		"Beclin":    "贝可林",
		"autophagy": "自噬",
	}

	t.Run("verifies lines that already carry the rendering", func(t *testing.T) {
		sources := []string{"Beclin regulates autophagy."}
		translations := []string{"贝可林调控自噬。"}

		out, report := Check(sources, translations, table)

		assert.Equal(t, translations, out)
		assert.Equal(t, 2, report.Verified)
		assert.Zero(t, report.AutoFixed)
		assert.Empty(t, report.Fixes)
		assert.Empty(t, report.Issues)
	})

	t.Run("normalized comparison tolerates hyphens and spaces", func(t *testing.T) {
		hyphenated := models.TermTable{"cell cycle": "细胞-周期"}
		out, report := Check(
			[]string{"The cell cycle stalls."},
			[]string{"细胞 周期停滞。"},
			hyphenated,
		)

		assert.Equal(t, []string{"细胞 周期停滞。"}, out)
		assert.Equal(t, 1, report.Verified)
		assert.Empty(t, report.Issues)
	})

	t.Run("replaces retained source forms case-insensitively", func(t *testing.T) {
		sources := []string{"BECLIN binds the membrane."}
		translations := []string{"beclin与膜结合。"}

		out, report := Check(sources, translations, table)

		assert.Equal(t, []string{"贝可林与膜结合。"}, out)
		assert.Equal(t, 1, report.AutoFixed)
		require.Len(t, report.Fixes, 1)
		assert.Equal(t, 0, report.Fixes[0].Line)
		assert.Equal(t, "beclin与膜结合。", report.Fixes[0].Before)
		assert.Equal(t, "贝可林与膜结合。", report.Fixes[0].After)
		assert.Equal(t, []string{"Beclin"}, report.Fixes[0].Terms)
	})

	t.Run("reports occurrences it cannot fix", func(t *testing.T) {
		sources := []string{"Beclin binds the membrane."}
		translations := []string{"贝克林与膜结合。"}

		out, report := Check(sources, translations, table)

		assert.Equal(t, translations, out)
		assert.Zero(t, report.AutoFixed)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "Beclin", report.Issues[0].Term)
		assert.Equal(t, "贝可林", report.Issues[0].Expected)
		assert.Equal(t, 0, report.Issues[0].Line)
	})

	t.Run("skips empty translations and unrelated sources", func(t *testing.T) {
		sources := []string{"Beclin here.", "Nothing relevant."}
		translations := []string{"", "无关文本。"}

		out, report := Check(sources, translations, table)

		assert.Equal(t, translations, out)
		assert.Zero(t, report.Verified)
		assert.Empty(t, report.Issues)
		assert.Equal(t, 2, report.Checked)
	})

	t.Run("blank and markdown renderings are cleaned", func(t *testing.T) {
		messy := models.TermTable{
			"Beclin": "**贝可林**",
			"   ":    "值",
			"empty":  "  ",
		}
		out, report := Check(
			[]string{"Beclin binds."},
			[]string{"Beclin与膜结合。"},
			messy,
		)

		assert.Equal(t, []string{"贝可林与膜结合。"}, out)
		assert.Equal(t, 1, report.AutoFixed)
	})

	t.Run("identity renderings are left alone but verified", func(t *testing.T) {
		identity := models.TermTable{"DNA": "DNA"}
		out, report := Check(
			[]string{"DNA replication."},
			[]string{"DNA复制。"},
			identity,
		)

		assert.Equal(t, []string{"DNA复制。"}, out)
		assert.Equal(t, 1, report.Verified)
		assert.Empty(t, report.Issues)
	})

	t.Run("empty table is a no-op", func(t *testing.T) {
		out, report := Check([]string{"a"}, []string{"b"}, nil)
		assert.Equal(t, []string{"b"}, out)
		assert.Zero(t, report.Verified)
	})
}

func TestReportMerge(t *testing.T) {
	total := &Report{}
	total.Merge(&Report{Checked: 2, Verified: 1, AutoFixed: 1, Fixes: []Fix{{Line: 0}}})
	total.Merge(&Report{Checked: 3, Issues: []Issue{{Line: 1, Term: "x"}}})
	total.Merge(nil)

	assert.Equal(t, 5, total.Checked)
	assert.Equal(t, 1, total.Verified)
	assert.Equal(t, 1, total.AutoFixed)
	assert.Len(t, total.Fixes, 1)
	assert.Equal(t, 1, total.Remaining())
	assert.Contains(t, total.Summary(), "checked 5 lines")
}
