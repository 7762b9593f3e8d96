// Package chunk packs translation items into character-budgeted batches,
// one batch per LLM round-trip. The same routine serves translation,
// terminology identification, and term verification with different budgets.
package chunk

import (
	"unicode/utf8"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// Character budgets. Budgets count runes, matching how prompt size is
// perceived by the model for CJK-heavy content.
const (
	// DefaultTranslationBudget bounds one translation batch.
	DefaultTranslationBudget = 6000

	// TermIdentifyBudget bounds one terminology-identification batch.
	TermIdentifyBudget = 6000

	// TermVerifyBudget bounds one term-verification batch. Verification
	// packs term strings, not full lines, so the budget is tighter.
	TermVerifyBudget = 3000

	// DefaultContextLines is the number of preceding items carried as a
	// read-only context window for each batch.
	DefaultContextLines = 3
)

// Batch is an ordered run of items packed under the character budget.
// Start is the index of the first item within the input sequence, so callers
// can recover context windows and map results back to source positions.
type Batch struct {
	Start int
	Items []*models.Item
}

// Chars returns the summed source-text length of the batch in runes.
func (b Batch) Chars() int {
	total := 0
	for _, it := range b.Items {
		total += utf8.RuneCountInString(it.SourceText)
	}
	return total
}

// Split packs items into batches under budget with a single deterministic
// pass. An item longer than the budget is isolated into its own singleton
// batch so one outlier cannot bloat an otherwise small batch. The
// concatenation of all batches equals the input sequence.
func Split(items []*models.Item, budget int) []Batch {
	if budget <= 0 {
		budget = DefaultTranslationBudget
	}

	var batches []Batch
	var current []*models.Item
	chars := 0
	start := 0

	flush := func(next int) {
		if len(current) == 0 {
			return
		}
		batches = append(batches, Batch{Start: start, Items: current})
		current = nil
		chars = 0
		start = next
	}

	for i, it := range items {
		length := utf8.RuneCountInString(it.SourceText)

		if length > budget {
			flush(i)
			batches = append(batches, Batch{Start: i, Items: []*models.Item{it}})
			start = i + 1
			continue
		}

		if len(current) > 0 && chars+length > budget {
			flush(i)
		}
		current = append(current, it)
		chars += length
	}
	flush(len(items))

	return batches
}

// ContextWindow returns up to k items preceding position start in the full
// sequence. The window is read-only reference material for prompts; callers
// must not mutate the returned items.
func ContextWindow(items []*models.Item, start, k int) []*models.Item {
	if k <= 0 || start <= 0 {
		return nil
	}
	from := start - k
	if from < 0 {
		from = 0
	}
	return items[from:start]
}

// SplitByText packs arbitrary elements under the rune budget using text to
// measure each one. Same packing rules as Split: overlong elements become
// singletons, order is preserved, the concatenation of groups equals the
// input. Term verification uses it to batch bare term strings.
func SplitByText[T any](elems []T, budget int, text func(T) string) [][]T {
	if budget <= 0 {
		budget = DefaultTranslationBudget
	}

	var groups [][]T
	var current []T
	chars := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, current)
		current = nil
		chars = 0
	}

	for _, el := range elems {
		length := utf8.RuneCountInString(text(el))

		if length > budget {
			flush()
			groups = append(groups, []T{el})
			continue
		}

		if len(current) > 0 && chars+length > budget {
			flush()
		}
		current = append(current, el)
		chars += length
	}
	flush()

	return groups
}
