package preprocess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

func items(lines ...string) []*models.Item {
	out := make([]*models.Item, len(lines))
	for i, line := range lines {
		out[i] = &models.Item{RowIndex: i, SourceText: line, Status: models.AtomUntranslated}
	}
	return out
}

func TestDetectDomain(t *testing.T) {
	t.Run("technical keywords win", func(t *testing.T) {
		domain, scores := DetectDomain("The system restarts the server when the algorithm finishes. 系统日志保留七天。")
		assert.Equal(t, "technical", domain)
		assert.Greater(t, scores["technical"], 0)
	})

	t.Run("academic markers", func(t *testing.T) {
		domain, _ := DetectDomain("The study follows the methodology of Smith et al. 研究表明此方法有效。doi:10.1000/xyz")
		assert.Equal(t, "academic", domain)
	})

	t.Run("business markers", func(t *testing.T) {
		domain, _ := DetectDomain("本合同条款自签署之日起生效。The agreement covers quarterly revenue.")
		assert.Equal(t, "business", domain)
	})

	t.Run("no signal falls back to general", func(t *testing.T) {
		domain, scores := DetectDomain("just a line about nothing in particular")
		assert.Equal(t, DomainGeneral, domain)
		assert.Empty(t, scores)
	})
}

func TestDetectStyle(t *testing.T) {
	t.Run("formal", func(t *testing.T) {
		style, _ := DetectStyle("尊敬的客户，根据规定，特此通知。Therefore the notice stands.")
		assert.Equal(t, "formal", style)
	})

	t.Run("informal", func(t *testing.T) {
		style, _ := DetectStyle("hey, you gonna come? yeah ok")
		assert.Equal(t, "informal", style)
	})

	t.Run("neutral default", func(t *testing.T) {
		style, scores := DetectStyle("a plain sentence with no tells")
		assert.Equal(t, StyleNeutral, style)
		assert.Empty(t, scores)
	})
}

func TestSplitSentences(t *testing.T) {
	t.Run("cjk terminators split without trailing space", func(t *testing.T) {
		got := SplitSentences("第一句。第二句！第三句？")
		assert.Equal(t, []string{"第一句", "第二句", "第三句"}, got)
	})

	t.Run("ascii terminators need whitespace", func(t *testing.T) {
		got := SplitSentences("Version 2.5 shipped today. It fixes the bug.")
		require.Len(t, got, 2)
		assert.Equal(t, "Version 2.5 shipped today", got[0])
	})
}

func TestLongSentenceSplits(t *testing.T) {
	long := strings.Repeat("这是一个很长的句子。", 60) // well over the threshold

	t.Run("finds overlong multi-sentence items", func(t *testing.T) {
		in := items("短句。", long)
		candidates := LongSentenceSplits(in)
		require.Len(t, candidates, 1)
		assert.Equal(t, 1, candidates[0].RowIndex)
		assert.Len(t, candidates[0].Sentences, 60)
	})

	t.Run("single unbreakable run is not a candidate", func(t *testing.T) {
		in := items(strings.Repeat("长", 600))
		assert.Empty(t, LongSentenceSplits(in))
	})

	t.Run("translated items are skipped", func(t *testing.T) {
		in := items(long)
		in[0].Status = models.AtomFinalized
		assert.Empty(t, LongSentenceSplits(in))
	})
}

func TestAnalyze(t *testing.T) {
	in := items(
		"The system algorithm runs on the server.",
		"尊敬的用户，根据系统日志，特此说明。",
	)

	analysis := Analyze(in)
	assert.Equal(t, "technical", analysis.Domain)
	assert.Equal(t, "formal", analysis.Style)
	assert.Greater(t, analysis.TotalChars, 0)

	info := analysis.TopicInfo()
	assert.Equal(t, "technical", info["domain"])
	assert.Equal(t, "formal", info["style"])
	assert.Contains(t, info, "domain_scores")
	assert.NotContains(t, info, "long_line_candidates")
}
