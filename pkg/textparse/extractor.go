// Package textparse recovers structured results from free-form LLM replies.
// Replies are requested as numbered lists but arrive with markdown wrappers,
// label residue, reasoning preambles, and occasional missing entries; the
// extractor is deliberately forgiving and reports only what it could parse.
package textparse

import (
	"regexp"
	"strconv"
	"strings"
)

// boundary matches a numbered-item marker at the start of a line, tolerating
// markdown emphasis around the number ("**1.**") and both ASCII and CJK
// separators ("1.", "1、", "1．").
var boundary = regexp.MustCompile(`(?m)^[ \t>]*[*_]{0,2}(\d{1,4})[.、．][*_]{0,2}[ \t]*`)

// numericPrefix matches a leading item number on an already-isolated line.
var numericPrefix = regexp.MustCompile(`^\s*\d{1,4}\s*[.、．]\s*`)

// residueLabel matches prompt-scaffold labels the model sometimes echoes back
// in front of the actual content.
var residueLabel = regexp.MustCompile(`^(?:原文|译文|回译|修正后译文|翻译|校对后译文)\s*[:：]\s*`)

var emphasis = regexp.MustCompile(`(\*\*|__|\*|_)(.+?)(\*\*|__|\*|_)`)

// textareaTag matches the wrapper tags the output contract asks for. They are
// removed up front so a closing tag never sticks to the last item.
var textareaTag = regexp.MustCompile(`(?i)</?textarea>`)

// Extract parses a numbered reply into a map from zero-based item index to
// cleaned content. Item n in the reply maps to index n-1. Indexes outside
// [0, expected) are dropped when expected > 0; missing numbers are simply
// absent from the map, and the caller decides how to recover. When the same
// number appears twice the later occurrence wins.
func Extract(raw string, expected int) map[int]string {
	raw = textareaTag.ReplaceAllString(raw, "")
	out := make(map[int]string)
	matches := boundary.FindAllStringSubmatchIndex(raw, -1)
	for i, m := range matches {
		n, err := strconv.Atoi(raw[m[2]:m[3]])
		if err != nil || n < 1 {
			continue
		}
		idx := n - 1
		if expected > 0 && idx >= expected {
			continue
		}

		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := raw[m[1]:end]

		// Items occupy consecutive lines; a blank line marks the start
		// of a postamble rather than item content.
		if cut := strings.Index(content, "\n\n"); cut >= 0 {
			content = content[:cut]
		}

		cleaned := CleanLine(content)
		if cleaned == "" {
			continue
		}
		out[idx] = cleaned
	}
	return out
}

// CleanLine normalizes one extracted item: whitespace, echoed labels,
// markdown emphasis, and quotes wrapping the whole line.
func CleanLine(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < 3; i++ {
		stripped := residueLabel.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = strings.TrimSpace(stripped)
	}
	s = CleanMarkdown(s)
	s = stripWrappingQuotes(s)
	return strings.TrimSpace(s)
}

// CleanMarkdown removes emphasis wrappers while keeping their inner text.
func CleanMarkdown(s string) string {
	for i := 0; i < 4; i++ {
		replaced := emphasis.ReplaceAllString(s, "$2")
		if replaced == s {
			return s
		}
		s = replaced
	}
	return s
}

// StripNumericPrefix removes a leading "N." / "N、" marker from a line that
// was split out of a numbered list by other means.
func StripNumericPrefix(s string) string {
	return numericPrefix.ReplaceAllString(s, "")
}

var quotePairs = [][2]string{
	{`"`, `"`},
	{"“", "”"},
	{"「", "」"},
	{"『", "』"},
}

func stripWrappingQuotes(s string) string {
	for _, p := range quotePairs {
		if len(s) > len(p[0])+len(p[1]) && strings.HasPrefix(s, p[0]) && strings.HasSuffix(s, p[1]) {
			inner := s[len(p[0]) : len(s)-len(p[1])]
			// Only unwrap when the pair encloses the whole line, not
			// when quotes also appear inside the content.
			if !strings.Contains(inner, p[0]) && !strings.Contains(inner, p[1]) {
				return strings.TrimSpace(inner)
			}
		}
	}
	return s
}
