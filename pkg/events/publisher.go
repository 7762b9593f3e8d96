package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linguaflow/linguaflow/pkg/stats"
)

// Publisher publishes run progress events. Persistent events are stored in
// the events table then broadcast via NOTIFY; transient events are broadcast
// only. Callers treat publish failures as non-fatal: a run never stops
// because nobody could be told about it.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishTaskUpdate persists and broadcasts one progress snapshot.
func (p *Publisher) PublishTaskUpdate(ctx context.Context, runID string, snapshot stats.Snapshot) error {
	payload := TaskUpdatePayload{
		Type:      EventTypeTaskUpdate,
		EventID:   uuid.New().String(),
		RunID:     runID,
		Snapshot:  snapshot,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskUpdatePayload: %w", err)
	}
	return p.persistAndNotify(ctx, runID, TaskUpdatesChannel, payloadJSON)
}

// PublishRunLifecycle broadcasts a run status transition (no DB persistence;
// the run row itself is the durable record).
func (p *Publisher) PublishRunLifecycle(ctx context.Context, runID, status, detail string) error {
	payload := RunLifecyclePayload{
		Type:      EventTypeRunLifecycle,
		EventID:   uuid.New().String(),
		RunID:     runID,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal RunLifecyclePayload: %w", err)
	}
	return p.notifyOnly(ctx, RunLifecycleChannel, payloadJSON)
}

// persistAndNotify persists a pre-marshaled event and broadcasts via NOTIFY
// in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, runID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (run_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		runID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// NOTIFY carries db_event_id so pollers can resume from the table.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persistence.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds the NOTIFY limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload string as-is when it fits the NOTIFY
// limit, otherwise a minimal truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= maxNotifyPayload {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		RunID     string `json:"run_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"event_id":  routing.EventID,
		"run_id":    routing.RunID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
