package models

// Human-intervention task types.
const (
	TaskTerminologyReview      = "terminology_review"
	TaskTranslationReview      = "translation_review"
	TaskBatchTranslationReview = "batch_translation_review"
	TaskErrorCorrection        = "error_correction"
)

// Review actions a human may take on one translated line.
const (
	ReviewActionAccept      = "accept"
	ReviewActionCustom      = "custom"
	ReviewActionRetranslate = "retranslate"
)

// ReviewItem is one low-scored line presented for human review.
type ReviewItem struct {
	Index           int     `json:"index"`
	SourceText      string  `json:"source_text"`
	TranslatedText  string  `json:"translated_text"`
	BackTranslation string  `json:"back_translation,omitempty"`
	Score           float64 `json:"score"`
	ContextBefore   string  `json:"context_before,omitempty"`
	ContextAfter    string  `json:"context_after,omitempty"`
}

// ReviewDecision is the human's answer for one review item.
type ReviewDecision struct {
	Index       int    `json:"index"`
	Action      string `json:"action"`
	Translation string `json:"translation,omitempty"`
}

// ReviewBatch is the payload handed to the human-intervention callback for
// batch_translation_review tasks.
type ReviewBatch struct {
	Items []ReviewItem `json:"review_items"`
}

// ReviewResult is the callback's reply. A nil result means the user
// cancelled or no reviewer is attached; callers keep machine decisions.
type ReviewResult struct {
	Results []ReviewDecision `json:"review_results"`
}

// ApprovedTerm is one confirmed entry from a terminology_review task.
type ApprovedTerm struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
}

// TermReviewResult is the callback's reply for terminology_review tasks.
type TermReviewResult struct {
	ApprovedTerms []ApprovedTerm `json:"approved_terms"`
}
