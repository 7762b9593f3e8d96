package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/event"
	"github.com/linguaflow/linguaflow/pkg/models"
	"github.com/linguaflow/linguaflow/pkg/stats"
	testdb "github.com/linguaflow/linguaflow/test/database"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(RunLifecyclePayload{
			Type:   EventTypeRunLifecycle,
			RunID:  "run-123",
			Status: "processing",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeRunLifecycle)
		assert.Contains(t, result, "run-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload to routing envelope", func(t *testing.T) {
		payload, _ := json.Marshal(RunLifecyclePayload{
			Type:    EventTypeRunLifecycle,
			EventID: "evt-123",
			RunID:   "run-123",
			Status:  "failed",
			Detail:  strings.Repeat("x", 9000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Less(t, len(result), maxNotifyPayload)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &envelope))
		assert.Equal(t, true, envelope["truncated"])
		assert.Equal(t, EventTypeRunLifecycle, envelope["type"])
		assert.Equal(t, "evt-123", envelope["event_id"])
		assert.Equal(t, "run-123", envelope["run_id"])
		assert.NotContains(t, envelope, "detail")
	})
}

func TestInjectDBEventID(t *testing.T) {
	payload, _ := json.Marshal(TaskUpdatePayload{
		Type:  EventTypeTaskUpdate,
		RunID: "run-1",
	})

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, float64(42), m["db_event_id"])

	t.Run("oversized payload keeps db_event_id in envelope", func(t *testing.T) {
		big, _ := json.Marshal(map[string]any{
			"type":     EventTypeTaskUpdate,
			"event_id": "evt-9",
			"run_id":   "run-9",
			"filler":   strings.Repeat("y", 9000),
		})
		result, err := injectDBEventIDAndTruncate(big, 99)
		require.NoError(t, err)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &envelope))
		assert.Equal(t, true, envelope["truncated"])
		assert.Equal(t, float64(99), envelope["db_event_id"])
	})
}

func TestTaskUpdatePayload_Shape(t *testing.T) {
	// Snapshot fields flatten into the event object; consumers read
	// total_lines etc. at the top level.
	payload := TaskUpdatePayload{
		Type:    EventTypeTaskUpdate,
		EventID: "evt-1",
		RunID:   "run-1",
		Snapshot: stats.Snapshot{
			TotalLines:   120,
			Lines:        30,
			CurrentStage: models.StageTranslating,
			AgentStage:   &models.AgentStage{Stage: models.StageTranslating, BatchInfo: "chunk 3/12"},
		},
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, float64(120), m["total_lines"])
	assert.Equal(t, float64(30), m["lines"])
	assert.Equal(t, "translating", m["current_stage"])
	agentStage, ok := m["agent_stage"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "chunk 3/12", agentStage["batch_info"])
}

func TestPublisher_PublishTaskUpdate(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	ctx := context.Background()

	snapshot := stats.Snapshot{
		TotalLines:   10,
		Lines:        4,
		CurrentStage: models.StageTranslating,
	}

	require.NoError(t, publisher.PublishTaskUpdate(ctx, "run-abc", snapshot))

	// The snapshot is durable in the events table
	events, err := client.Event.Query().
		Where(event.ChannelEQ(TaskUpdatesChannel)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "run-abc", events[0].RunID)

	var payload TaskUpdatePayload
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, EventTypeTaskUpdate, payload.Type)
	assert.Equal(t, "run-abc", payload.RunID)
	assert.Equal(t, 10, payload.TotalLines)
	assert.Equal(t, 4, payload.Lines)
	assert.NotEmpty(t, payload.EventID)
	assert.NotEmpty(t, payload.Timestamp)
}

func TestPublisher_PublishRunLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := NewPublisher(client.DB())
	ctx := context.Background()

	// Lifecycle events are NOTIFY-only; nothing lands in the table
	require.NoError(t, publisher.PublishRunLifecycle(ctx, "run-abc", "completed", ""))

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
