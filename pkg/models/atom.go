package models

// Atom status codes. Status advances monotonically as traces land; a human
// edit or refine may overwrite content but never lowers the code.
const (
	AtomUntranslated  = 0
	AtomDrafted       = 1
	AtomRefined       = 2
	AtomHumanReviewed = 3
	AtomFinalized     = 4
)

// AtomStatusName returns the human-readable label for a status code, used
// in stats payloads and API responses.
func AtomStatusName(code int) string {
	switch code {
	case AtomUntranslated:
		return "untranslated"
	case AtomDrafted:
		return "drafted"
	case AtomRefined:
		return "refined"
	case AtomHumanReviewed:
		return "human_reviewed"
	case AtomFinalized:
		return "finalized"
	}
	return "unknown"
}

// Word types stored on terminology entries.
const (
	WordTypeEntity  = "entity"
	WordTypeTerm    = "term"
	WordTypeIdiom   = "idiom"
	WordTypeConcept = "concept"
	WordTypeKeyword = "keyword"
	WordTypeAcronym = "acronym"
)

// wordTypeAliases maps the labels agents emit to the canonical stored types.
var wordTypeAliases = map[string]string{
	"named_entity":        WordTypeEntity,
	"terminology":         WordTypeTerm,
	"domain_term":         WordTypeTerm,
	"cultural_expression": WordTypeIdiom,
}

// NormalizeWordType canonicalizes an agent-emitted word type label. Unknown
// labels pass through unchanged so new categories are not silently dropped.
func NormalizeWordType(label string) string {
	if canonical, ok := wordTypeAliases[label]; ok {
		return canonical
	}
	return label
}
