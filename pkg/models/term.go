package models

import (
	"regexp"
	"strings"
)

// TermTranslation is one candidate rendering of a term.
type TermTranslation struct {
	Translation string  `json:"translation"`
	Source      string  `json:"source"`
	Confidence  float64 `json:"confidence"`
	Rank        int     `json:"rank"`
	Rationale   string  `json:"rationale,omitempty"`
}

// Term is a terminology entry identified during the terminology stage and
// persisted in the lexicon keyed by (workID, entryKey).
type Term struct {
	EntryKey       string            `json:"entry_key"`
	EntryVal       string            `json:"entry_val"`
	WordType       string            `json:"word_type"`
	DomainTag      string            `json:"domain_tag,omitempty"`
	Variants       []string          `json:"variants,omitempty"`
	Examples       []string          `json:"examples,omitempty"`
	Translations   []TermTranslation `json:"translations,omitempty"`
	AtomRefs       []int             `json:"atom_refs,omitempty"`
	Confidence     float64           `json:"confidence"`
	HumanConfirmed bool              `json:"human_confirmed"`
	Priority       string            `json:"priority,omitempty"`
	Context        string            `json:"context,omitempty"`
	Meaning        string            `json:"meaning,omitempty"`
}

// TermTable maps source terms to their chosen target-language renderings.
// It is read-only during translation; mutations happen only in the
// terminology stage and in human-review commits.
type TermTable map[string]string

// FilterBySource returns the subset of entries whose key appears
// case-insensitively in the given source text. Prompts inject only the
// terms a chunk can actually use.
func (t TermTable) FilterBySource(source string) TermTable {
	if len(t) == 0 {
		return nil
	}
	lower := strings.ToLower(source)
	filtered := TermTable{}
	for key, val := range t {
		if strings.Contains(lower, strings.ToLower(key)) {
			filtered[key] = val
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

// Inverse returns the translation→source mapping used by back-translation
// prompts. Duplicate values keep the first key encountered.
func (t TermTable) Inverse() TermTable {
	if len(t) == 0 {
		return nil
	}
	inv := TermTable{}
	for key, val := range t {
		if _, exists := inv[val]; !exists {
			inv[val] = key
		}
	}
	return inv
}

var normalizeRe = regexp.MustCompile(`[\s\-–—]+`)

// NormalizeForMatch collapses whitespace, hyphens and dashes and lowercases,
// the comparison form used when checking whether a translation already
// contains an expected term rendering.
func NormalizeForMatch(s string) string {
	return normalizeRe.ReplaceAllString(strings.ToLower(s), "")
}
