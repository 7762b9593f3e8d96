package api

import "github.com/linguaflow/linguaflow/pkg/models"

// ReviewDecisionRequest answers the pending review task of a run. The field
// that applies depends on the task type: review_results for translation
// review, approved_terms for terminology review. TaskID is optional; when
// empty the currently pending task is answered.
type ReviewDecisionRequest struct {
	TaskID        string                  `json:"task_id,omitempty"`
	ReviewResults []models.ReviewDecision `json:"review_results,omitempty"`
	ApprovedTerms []models.ApprovedTerm   `json:"approved_terms,omitempty"`
}

// ConfirmTermRequest optionally replaces the stored rendering while
// confirming a term.
type ConfirmTermRequest struct {
	Translation string `json:"translation,omitempty"`
}
