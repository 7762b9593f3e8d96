// Package consistency enforces fixed term renderings over translated lines.
// For every line whose source mentions a term from the table, the translated
// line must carry the term's fixed rendering. Retained source forms are
// replaced in place; anything else is reported so a human can follow up.
package consistency

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/textparse"
)

// snippetRunes bounds the source and translation excerpts kept on an issue.
const snippetRunes = 80

// Fix records one line the checker rewrote.
type Fix struct {
	// Line is the zero-based index within the checked sequence.
	Line   int
	Before string
	After  string
	// Terms lists the term keys whose renderings were enforced on the line.
	Terms []string
}

// Issue is one term occurrence the checker could neither verify nor fix.
type Issue struct {
	Line        int
	Term        string
	Expected    string
	Source      string
	Translation string
}

// Report summarizes one consistency pass.
type Report struct {
	Checked   int
	Verified  int
	AutoFixed int
	Fixes     []Fix
	Issues    []Issue
}

// Remaining returns the count of occurrences left inconsistent.
func (r *Report) Remaining() int {
	return len(r.Issues)
}

// Merge folds another report into r, shifting nothing: line numbers stay
// local to their own chunk, so callers that need global positions resolve
// them through the fix's chunk before merging.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Checked += other.Checked
	r.Verified += other.Verified
	r.AutoFixed += other.AutoFixed
	r.Fixes = append(r.Fixes, other.Fixes...)
	r.Issues = append(r.Issues, other.Issues...)
}

// Check enforces the table's renderings over translations and returns the
// corrected lines with a report. For each line and each term whose key
// occurs case-insensitively in the line's source:
//
//   - the translation already contains the expected rendering (compared
//     with whitespace and hyphens collapsed) → verified;
//   - the source form survived into the translation → replaced in place,
//     case-insensitively;
//   - otherwise the occurrence is reported and the line left alone.
//
// Inputs are not mutated. Terms are processed in sorted key order so runs
// are deterministic.
func Check(sources, translations []string, table models.TermTable) ([]string, *Report) {
	out := make([]string, len(translations))
	copy(out, translations)

	report := &Report{Checked: len(translations)}
	mappings := renderings(table)
	if len(mappings) == 0 {
		return out, report
	}

	keys := make([]string, 0, len(mappings))
	for key := range mappings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i := range sources {
		if i >= len(out) || out[i] == "" {
			continue
		}
		source := strings.ToLower(sources[i])
		before := out[i]
		var fixedTerms []string

		for _, term := range keys {
			if !strings.Contains(source, strings.ToLower(term)) {
				continue
			}
			expected := mappings[term]

			if contains(out[i], expected) {
				report.Verified++
				continue
			}

			if expected != term {
				replaced := replaceTerm(out[i], term, expected)
				if replaced != out[i] {
					out[i] = replaced
					report.AutoFixed++
					report.Verified++
					fixedTerms = append(fixedTerms, term)
					continue
				}
			}

			report.Issues = append(report.Issues, Issue{
				Line:        i,
				Term:        term,
				Expected:    expected,
				Source:      snippet(sources[i]),
				Translation: snippet(out[i]),
			})
		}

		if out[i] != before {
			report.Fixes = append(report.Fixes, Fix{
				Line:   i,
				Before: before,
				After:  out[i],
				Terms:  fixedTerms,
			})
		}
	}
	return out, report
}

// renderings cleans the table into usable term→rendering pairs. Blank keys
// or values are dropped; markdown emphasis left over from model replies is
// stripped so matching works on plain text.
func renderings(table models.TermTable) map[string]string {
	out := make(map[string]string, len(table))
	for key, val := range table {
		term := strings.TrimSpace(key)
		expected := strings.TrimSpace(textparse.CleanMarkdown(val))
		if term == "" || expected == "" {
			continue
		}
		out[term] = expected
	}
	return out
}

// contains reports whether text already carries the expected rendering,
// tolerating whitespace, hyphen and dash differences.
func contains(text, expected string) bool {
	if strings.Contains(strings.ToLower(text), strings.ToLower(expected)) {
		return true
	}
	return strings.Contains(models.NormalizeForMatch(text), models.NormalizeForMatch(expected))
}

func replaceTerm(text, term, expected string) string {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(term))
	if err != nil {
		return text
	}
	return re.ReplaceAllLiteralString(text, expected)
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetRunes {
		return s
	}
	return string(runes[:snippetRunes]) + "..."
}

// Summary renders the report as a short human-readable line for logs.
func (r *Report) Summary() string {
	return fmt.Sprintf("checked %d lines, %d renderings verified, %d auto-fixed, %d unresolved",
		r.Checked, r.Verified, r.AutoFixed, len(r.Issues))
}
