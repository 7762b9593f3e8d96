package api

import (
	"encoding/json"

	"github.com/linguaflow/linguaflow/ent"
	"github.com/linguaflow/linguaflow/pkg/models"
)

// ErrorResponse is the JSON error envelope used by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RunDetailResponse is returned by GET /api/v1/runs/:id. LatestUpdate is the
// most recent progress snapshot published for the run, verbatim from the
// events table.
type RunDetailResponse struct {
	*ent.TranslationRun
	LatestUpdate json.RawMessage `json:"latest_update,omitempty"`
}

// CancelResponse is returned by POST /api/v1/runs/:id/cancel. Status is
// "cancelled" when the run was still pending and "cancelling" when a
// processing run was signalled and will stop at the next batch boundary.
type CancelResponse struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

// ReviewAnswerResponse is returned by POST /api/v1/runs/:id/review.
type ReviewAnswerResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TermListResponse is returned by GET /api/v1/works/:id/terms.
type TermListResponse struct {
	Terms []models.Term `json:"terms"`
	Count int           `json:"count"`
}

// ConfirmTermResponse is returned by POST /api/v1/works/:id/terms/:key/confirm.
type ConfirmTermResponse struct {
	EntryKey string `json:"entry_key"`
	Status   string `json:"status"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's contribution to the health report.
type HealthCheck struct {
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	ResponseTimeMS int64  `json:"response_time_ms,omitempty"`
}
