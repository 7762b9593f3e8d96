// Package events publishes run progress over PostgreSQL: TaskUpdate
// snapshots are persisted to the events table and broadcast via NOTIFY in
// one transaction; run lifecycle transitions are broadcast only. Consumers
// either LISTEN on the channels or poll the table.
//
// NOTIFY payloads are capped by PostgreSQL at 8000 bytes. Oversized payloads
// are replaced on the wire by a truncation envelope carrying just the
// routing fields; the full payload is always intact in the events table.
package events

// Event types carried in every payload's "type" field.
const (
	// EventTypeTaskUpdate is a progress snapshot (persisted + NOTIFY).
	EventTypeTaskUpdate = "task.update"

	// EventTypeRunLifecycle is a run status transition (NOTIFY only).
	EventTypeRunLifecycle = "run.lifecycle"
)

// NOTIFY channels. Both are global; consumers filter by run_id in the
// payload.
const (
	TaskUpdatesChannel  = "task_updates"
	RunLifecycleChannel = "run_lifecycle"
)

// maxNotifyPayload leaves headroom under PostgreSQL's 8000-byte NOTIFY
// limit for transport overhead.
const maxNotifyPayload = 7900
