package models

import (
	"github.com/linguaflow/linguaflow/ent"
)

// CreateRunRequest contains fields for enqueueing a new translation run
type CreateRunRequest struct {
	ProjectPath     string         `json:"project_path"`
	OutputPath      string         `json:"output_path"`
	ConfigOverrides map[string]any `json:"config_overrides,omitempty"`
}

// RunFilters contains filtering options for listing runs
type RunFilters struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// RunResponse wraps a TranslationRun
type RunResponse struct {
	*ent.TranslationRun
}

// RunListResponse contains a paginated run list
type RunListResponse struct {
	Runs       []*ent.TranslationRun `json:"runs"`
	TotalCount int                   `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}

// WorkStats summarizes translation progress for one project work
type WorkStats struct {
	WorkID       int            `json:"work_id"`
	TotalAtoms   int            `json:"total_atoms"`
	ByStatus     map[string]int `json:"by_status"`
	MeanScore    float64        `json:"mean_score"`
	DocCount     int            `json:"doc_count"`
	TermCount    int            `json:"term_count,omitempty"`
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
}
