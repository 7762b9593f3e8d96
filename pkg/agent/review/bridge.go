package review

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrBusy is returned when a worker asks for review while another task for
// the same run is still waiting. Runs review sequentially, so hitting this
// indicates a driver bug rather than load.
var ErrBusy = errors.New("review task already pending")

// Task is one human decision waiting to be made. Payload is the
// task-specific body (ReviewBatch, term list) and marshals straight into
// the API response.
type Task struct {
	ID       string `json:"id"`
	TaskType string `json:"task_type"`
	Payload  any    `json:"payload"`

	reply chan any
}

// Bridge carries review tasks between a blocked pipeline worker and the
// HTTP API. The worker side calls Ask and sleeps; the API side polls
// Pending and eventually calls Answer. One task at a time per run.
type Bridge struct {
	mu      sync.Mutex
	pending *Task
}

// NewBridge returns an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Ask publishes one task and blocks until a decision arrives or the
// context ends. It satisfies InterventionFunc.
func (b *Bridge) Ask(ctx context.Context, taskType string, payload any) (any, error) {
	task := &Task{
		ID:       uuid.NewString(),
		TaskType: taskType,
		Payload:  payload,
		reply:    make(chan any, 1),
	}

	b.mu.Lock()
	if b.pending != nil {
		b.mu.Unlock()
		return nil, ErrBusy
	}
	b.pending = task
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.pending = nil
		b.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case answer := <-task.reply:
		return answer, nil
	}
}

// Pending returns the task currently waiting for a decision, or nil.
func (b *Bridge) Pending() *Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// Answer delivers the decision for the waiting task and wakes the worker.
// It reports false when no task is pending or the id does not match, so
// stale submissions are rejected instead of answering the wrong batch.
func (b *Bridge) Answer(taskID string, result any) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil || b.pending.ID != taskID {
		return false
	}
	select {
	case b.pending.reply <- result:
	default:
		// Already answered; the worker just has not woken yet.
	}
	return true
}
