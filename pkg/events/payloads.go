package events

import (
	"github.com/linguaflow/linguaflow/pkg/stats"
)

// TaskUpdatePayload is the payload for task.update events. It carries one
// StatsTracker snapshot; the embedded fields flatten into the JSON object.
type TaskUpdatePayload struct {
	Type    string `json:"type"`     // always EventTypeTaskUpdate
	EventID string `json:"event_id"` // event UUID
	RunID   string `json:"run_id"`   // owning run
	stats.Snapshot
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// RunLifecyclePayload is the payload for run.lifecycle events.
// Published on every run status transition (claimed, review, terminal).
type RunLifecyclePayload struct {
	Type      string `json:"type"`             // always EventTypeRunLifecycle
	EventID   string `json:"event_id"`         // event UUID
	RunID     string `json:"run_id"`           // owning run
	Status    string `json:"status"`           // pending, processing, review, completed, failed, cancelled
	Detail    string `json:"detail,omitempty"` // error message, cancel reason
	Timestamp string `json:"timestamp"`        // RFC3339Nano
}
