// Package preprocess runs the deterministic document analysis that precedes
// terminology work: domain and register detection over keyword scores, and
// long-sentence split candidates. No model calls; the output seeds the
// work's topic_info and the translation prompts.
package preprocess

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// Defaults when no keyword signals.
const (
	DomainGeneral = "general"
	StyleNeutral  = "neutral"
)

// longLineThreshold is the rune count above which an item becomes a
// sentence-split candidate.
const longLineThreshold = 500

var domainPatterns = map[string][]*regexp.Regexp{
	"academic": compileAll(
		`(?i)\b(research|study|hypothesis|methodology|abstract)\b`,
		`(?i)\bet al\.`,
		`(?i)\bdoi:`,
		`研究表明`, `数据表明`, `综上所述`, `论文`,
	),
	"technical": compileAll(
		`(?i)\b(system|software|hardware|algorithm|server|protocol|database)\b`,
		`技术`, `系统`, `软件`, `硬件`, `算法`,
	),
	"business": compileAll(
		`(?i)\b(contract|agreement|revenue|invoice|market|quarterly)\b`,
		`合同`, `协议`, `条款`, `市场`, `营收`,
	),
	"literary": compileAll(
		`(?i)\b(novel|poem|prose|chapter)\b`,
		`小说`, `文学`, `诗歌`, `散文`,
	),
}

var stylePatterns = map[string][]*regexp.Regexp{
	"formal": compileAll(
		`(?i)\b(therefore|hereby|furthermore|whereas|pursuant)\b`,
		`尊敬的`, `根据`, `依据`, `特此`,
	),
	"informal": compileAll(
		`(?i)\b(gonna|wanna|yeah|hey|ok)\b`,
		`哥们`, `老铁`,
	),
	"literary": compileAll(
		`[—…“”‘’]`,
	),
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Analysis is the document profile produced before terminology work.
type Analysis struct {
	Domain          string
	Style           string
	DomainScores    map[string]int
	StyleScores     map[string]int
	TotalChars      int
	SplitCandidates []SplitCandidate
}

// SplitCandidate is an overlong item that could be broken at sentence
// boundaries. Candidates are reported, not applied; atom positions are
// immutable once persisted.
type SplitCandidate struct {
	RowIndex  int
	FilePath  string
	Sentences []string
}

// TopicInfo renders the analysis as the work's topic_info payload.
func (a Analysis) TopicInfo() map[string]any {
	info := map[string]any{
		"domain":      a.Domain,
		"style":       a.Style,
		"total_chars": a.TotalChars,
	}
	if len(a.DomainScores) > 0 {
		info["domain_scores"] = a.DomainScores
	}
	if len(a.StyleScores) > 0 {
		info["style_scores"] = a.StyleScores
	}
	if len(a.SplitCandidates) > 0 {
		info["long_line_candidates"] = len(a.SplitCandidates)
	}
	return info
}

// Analyze profiles the whole document set. Translated items participate:
// register is a property of the document, not of the remaining work.
func Analyze(items []*models.Item) Analysis {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.SourceText)
		b.WriteString(" ")
	}
	text := b.String()

	analysis := Analysis{TotalChars: utf8.RuneCountInString(text)}
	analysis.Domain, analysis.DomainScores = DetectDomain(text)
	analysis.Style, analysis.StyleScores = DetectStyle(text)
	analysis.SplitCandidates = LongSentenceSplits(items)
	return analysis
}

// DetectDomain scores the domain keyword sets over text and returns the
// best match, or "general" when nothing scores.
func DetectDomain(text string) (string, map[string]int) {
	return bestMatch(text, domainPatterns, DomainGeneral)
}

// DetectStyle scores the register keyword sets over text and returns the
// best match, or "neutral" when nothing scores.
func DetectStyle(text string) (string, map[string]int) {
	return bestMatch(text, stylePatterns, StyleNeutral)
}

func bestMatch(text string, patterns map[string][]*regexp.Regexp, fallback string) (string, map[string]int) {
	scores := make(map[string]int)
	for label, res := range patterns {
		total := 0
		for _, re := range res {
			total += len(re.FindAllString(text, -1))
		}
		if total > 0 {
			scores[label] = total
		}
	}

	best := fallback
	bestScore := 0
	for label, score := range scores {
		// Ties resolve to the lexicographically smaller label so the
		// result is stable across map iteration order.
		if score > bestScore || (score == bestScore && best != fallback && label < best) {
			best = label
			bestScore = score
		}
	}
	return best, scores
}

var sentenceBoundary = regexp.MustCompile(`[。！？]|[.!?]\s+`)

// LongSentenceSplits finds untranslated items longer than the threshold
// that break into two or more sentences.
func LongSentenceSplits(items []*models.Item) []SplitCandidate {
	var candidates []SplitCandidate
	for _, it := range items {
		if !it.Untranslated() || utf8.RuneCountInString(it.SourceText) <= longLineThreshold {
			continue
		}
		sentences := SplitSentences(it.SourceText)
		if len(sentences) < 2 {
			continue
		}
		candidates = append(candidates, SplitCandidate{
			RowIndex:  it.RowIndex,
			FilePath:  it.FilePath,
			Sentences: sentences,
		})
	}
	return candidates
}

// SplitSentences breaks text at sentence punctuation. CJK terminators split
// unconditionally; ASCII terminators need trailing whitespace so decimals
// and abbreviations survive.
func SplitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
