package models

// Item is one translatable unit as loaded from a project file. Items flow
// through the pipeline in memory; the database atom is their durable twin.
type Item struct {
	RowIndex       int            `json:"row_index"`
	SourceText     string         `json:"source_text"`
	TranslatedText string         `json:"translated_text,omitempty"`
	Status         int            `json:"translation_status"`
	TokenCount     int            `json:"token_count,omitempty"`
	FilePath       string         `json:"-"`
	AtomID         int            `json:"-"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// Untranslated reports whether the item still needs a translation.
func (it Item) Untranslated() bool {
	return it.Status == AtomUntranslated
}

// Strategy selects the translation prompt family for a chunk.
type Strategy string

const (
	StrategyLiteral  Strategy = "literal"
	StrategyFree     Strategy = "free"
	StrategyStylized Strategy = "stylized"
)
