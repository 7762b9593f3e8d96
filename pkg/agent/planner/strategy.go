package planner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/linguaflow/linguaflow/pkg/chunk"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// Register labels assigned by the style heuristics.
const (
	StyleFormal   = "formal"
	StyleInformal = "informal"
	StyleLiterary = "literary"
)

// ChunkStrategy records the translation approach chosen for one batch. The
// index matches the batch order the translator will produce when chunking
// the same untranslated sequence with the same budget.
type ChunkStrategy struct {
	ChunkIndex         int
	Strategy           models.Strategy
	Complexity         string
	Style              string
	TerminologyDensity float64
	AvgSentenceLength  float64
	Reason             string
	TextSample         string
}

// StyleGuide is the document-level register summary injected into
// translation prompts.
type StyleGuide struct {
	OverallStyle string           `json:"overall_style"`
	Tone         string           `json:"tone"`
	Preferences  StylePreferences `json:"preferences"`
}

// StylePreferences are the rendering choices derived from the register.
type StylePreferences struct {
	UseHonorifics      bool `json:"use_honorifics"`
	PreserveFormatting bool `json:"preserve_formatting"`
	MaintainRhythm     bool `json:"maintain_rhythm"`
}

var (
	sentenceSplit  = regexp.MustCompile(`[.!?。！？]+`)
	formalMarkers  = regexp.MustCompile(`(?i)\b(therefore|thus|furthermore|moreover|whereas|hereby)\b`)
	informalMarker = regexp.MustCompile(`(?i)\b(gonna|wanna|yeah|ok|hey)\b`)
	cjkPunct       = regexp.MustCompile(`[，。！？—…“”‘’；：]`)
)

// PlanChunkStrategies batches the untranslated items under budget and tags
// each batch with a translation strategy. Callers must pass the same
// filtered sequence and budget the translator will use so indices align.
func PlanChunkStrategies(untranslated []*models.Item, budget int) []ChunkStrategy {
	batches := chunk.Split(untranslated, budget)
	strategies := make([]ChunkStrategy, 0, len(batches))
	for i, b := range batches {
		strategies = append(strategies, analyzeChunk(b.Items, i))
	}
	return strategies
}

func analyzeChunk(items []*models.Item, index int) ChunkStrategy {
	texts := make([]string, 0, len(items))
	for _, it := range items {
		texts = append(texts, it.SourceText)
	}
	combined := strings.Join(texts, " ")

	cs := ChunkStrategy{
		ChunkIndex:         index,
		AvgSentenceLength:  avgSentenceLength(combined),
		TerminologyDensity: terminologyDensity(combined),
		Style:              detectStyle(combined),
	}
	if len(texts) > 0 {
		cs.TextSample = sample(texts[0], 50)
	}

	switch {
	case cs.AvgSentenceLength < 50 && cs.TerminologyDensity < 0.1:
		cs.Complexity = TierSimple
	case cs.AvgSentenceLength < 150 && cs.TerminologyDensity < 0.3:
		cs.Complexity = TierMedium
	default:
		cs.Complexity = TierComplex
	}

	switch {
	case cs.TerminologyDensity > 0.3 || cs.Style == StyleFormal:
		cs.Strategy = models.StrategyLiteral
		cs.Reason = fmt.Sprintf("terminology density %.2f or formal register favors literal rendering", cs.TerminologyDensity)
	case cs.Style == StyleLiterary || cs.Complexity == TierComplex:
		cs.Strategy = models.StrategyStylized
		cs.Reason = "literary register or complex sentences favor stylized rendering"
	default:
		cs.Strategy = models.StrategyFree
		cs.Reason = "conversational or narrative text favors free rendering"
	}
	return cs
}

// BuildStyleGuide derives the document register from a sample of the first
// untranslated items. Defaults to informal/casual when nothing signals.
func BuildStyleGuide(items []*models.Item) StyleGuide {
	var sampled []string
	for _, it := range items {
		if !it.Untranslated() {
			continue
		}
		sampled = append(sampled, it.SourceText)
		if len(sampled) >= 50 {
			break
		}
	}

	guide := StyleGuide{
		OverallStyle: StyleInformal,
		Tone:         "casual",
		Preferences:  StylePreferences{PreserveFormatting: true},
	}
	if len(sampled) == 0 {
		return guide
	}
	if len(sampled) > 20 {
		sampled = sampled[:20]
	}
	combined := strings.Join(sampled, " ")

	formal := len(formalMarkers.FindAllString(combined, -1))
	informal := len(informalMarker.FindAllString(combined, -1))
	literary := len(cjkPunct.FindAllString(combined, -1))

	switch {
	case formal > informal && formal > literary:
		guide.OverallStyle = StyleFormal
		guide.Tone = "professional"
		guide.Preferences.UseHonorifics = true
	case literary > formal && literary > informal:
		guide.OverallStyle = StyleLiterary
		guide.Tone = "artistic"
		guide.Preferences.MaintainRhythm = true
	}
	return guide
}

func avgSentenceLength(text string) float64 {
	parts := sentenceSplit.Split(text, -1)
	count, total := 0, 0
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		count++
		total += utf8.RuneCountInString(p)
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// terminologyDensity is a cheap proxy for domain-term load: the share of
// whitespace-separated words that are capitalized or carry connector
// punctuation. CJK text without spaces scores near zero, which is fine;
// its register is caught by the punctuation heuristic instead.
func terminologyDensity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	technical := 0
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) || strings.ContainsAny(w, "_-") {
			technical++
		}
	}
	return float64(technical) / float64(len(words))
}

func detectStyle(text string) string {
	formal := len(formalMarkers.FindAllString(text, -1))
	informal := len(informalMarker.FindAllString(text, -1))
	literary := len(cjkPunct.FindAllString(text, -1))

	switch {
	case formal > informal:
		return StyleFormal
	case float64(literary) > float64(utf8.RuneCountInString(text))*0.05:
		return StyleLiterary
	default:
		return StyleInformal
	}
}

func sample(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
