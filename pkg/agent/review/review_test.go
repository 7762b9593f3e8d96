package review

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

func candidate(index int, score float64) models.ReviewItem {
	return models.ReviewItem{
		Index:          index,
		SourceText:     "source",
		TranslatedText: "translated",
		Score:          score,
	}
}

func TestSelect(t *testing.T) {
	t.Run("picks every line below the threshold", func(t *testing.T) {
		items := []models.ReviewItem{
			candidate(0, 9.0),
			candidate(1, 6.5),
			candidate(2, 5.0),
			candidate(3, 8.2),
		}

		picked := Select(items, 7.0)

		require.Len(t, picked, 2)
		assert.Equal(t, 1, picked[0].Index)
		assert.Equal(t, 2, picked[1].Index)
	})

	t.Run("falls back to the three lowest scores", func(t *testing.T) {
		items := []models.ReviewItem{
			candidate(0, 9.5),
			candidate(1, 8.0),
			candidate(2, 9.9),
			candidate(3, 8.4),
			candidate(4, 9.0),
		}

		picked := Select(items, 7.0)

		require.Len(t, picked, 3)
		assert.Equal(t, 1, picked[0].Index)
		assert.Equal(t, 3, picked[1].Index)
		assert.Equal(t, 4, picked[2].Index)
	})

	t.Run("fallback keeps all items when fewer than three", func(t *testing.T) {
		items := []models.ReviewItem{candidate(0, 9.0), candidate(1, 8.0)}

		picked := Select(items, 7.0)

		require.Len(t, picked, 2)
		assert.Equal(t, 1, picked[0].Index)
	})

	t.Run("caps context fields", func(t *testing.T) {
		item := candidate(0, 3.0)
		item.ContextBefore = strings.Repeat("前", 300)
		item.ContextAfter = strings.Repeat("后", 150)

		picked := Select([]models.ReviewItem{item}, 7.0)

		require.Len(t, picked, 1)
		assert.Len(t, []rune(picked[0].ContextBefore), 200)
		assert.Len(t, []rune(picked[0].ContextAfter), 150)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		assert.Empty(t, Select(nil, 7.0))
	})
}

func TestCoordinatorReview(t *testing.T) {
	items := []models.ReviewItem{candidate(0, 4.0), candidate(1, 9.0)}

	t.Run("returns human decisions", func(t *testing.T) {
		var gotType string
		var gotBatch models.ReviewBatch
		coord := &Coordinator{
			Threshold: 7.0,
			Intervene: func(_ context.Context, taskType string, payload any) (any, error) {
				gotType = taskType
				gotBatch = payload.(models.ReviewBatch)
				return models.ReviewResult{Results: []models.ReviewDecision{
					{Index: 0, Action: models.ReviewActionCustom, Translation: "fixed"},
				}}, nil
			},
		}

		decisions, err := coord.Review(context.Background(), items)

		require.NoError(t, err)
		require.Len(t, decisions, 1)
		assert.Equal(t, models.ReviewActionCustom, decisions[0].Action)
		assert.Equal(t, models.TaskBatchTranslationReview, gotType)
		require.Len(t, gotBatch.Items, 1)
		assert.Equal(t, 0, gotBatch.Items[0].Index)
	})

	t.Run("nil callback keeps machine output", func(t *testing.T) {
		coord := &Coordinator{Threshold: 7.0}

		decisions, err := coord.Review(context.Background(), items)

		require.NoError(t, err)
		assert.Nil(t, decisions)
	})

	t.Run("nil reply keeps machine output", func(t *testing.T) {
		coord := &Coordinator{
			Threshold: 7.0,
			Intervene: func(context.Context, string, any) (any, error) { return nil, nil },
		}

		decisions, err := coord.Review(context.Background(), items)

		require.NoError(t, err)
		assert.Nil(t, decisions)
	})

	t.Run("pointer reply is accepted", func(t *testing.T) {
		coord := &Coordinator{
			Threshold: 7.0,
			Intervene: func(context.Context, string, any) (any, error) {
				return &models.ReviewResult{Results: []models.ReviewDecision{
					{Index: 0, Action: models.ReviewActionAccept},
				}}, nil
			},
		}

		decisions, err := coord.Review(context.Background(), items)

		require.NoError(t, err)
		require.Len(t, decisions, 1)
		assert.Equal(t, models.ReviewActionAccept, decisions[0].Action)
	})

	t.Run("callback error propagates", func(t *testing.T) {
		wantErr := errors.New("reviewer went home")
		coord := &Coordinator{
			Threshold: 7.0,
			Intervene: func(context.Context, string, any) (any, error) { return nil, wantErr },
		}

		_, err := coord.Review(context.Background(), items)

		assert.ErrorIs(t, err, wantErr)
	})
}

func TestBridge(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		bridge := NewBridge()
		done := make(chan any, 1)

		go func() {
			answer, err := bridge.Ask(context.Background(), models.TaskTerminologyReview, "payload")
			if err != nil {
				done <- err
				return
			}
			done <- answer
		}()

		var task *Task
		require.Eventually(t, func() bool {
			task = bridge.Pending()
			return task != nil
		}, time.Second, 5*time.Millisecond)

		assert.Equal(t, models.TaskTerminologyReview, task.TaskType)
		assert.Equal(t, "payload", task.Payload)
		require.True(t, bridge.Answer(task.ID, "decision"))

		select {
		case got := <-done:
			assert.Equal(t, "decision", got)
		case <-time.After(time.Second):
			t.Fatal("worker never woke up")
		}

		assert.Eventually(t, func() bool { return bridge.Pending() == nil }, time.Second, 5*time.Millisecond)
	})

	t.Run("context cancellation abandons the task", func(t *testing.T) {
		bridge := NewBridge()
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			_, err := bridge.Ask(ctx, models.TaskTerminologyReview, nil)
			done <- err
		}()

		require.Eventually(t, func() bool { return bridge.Pending() != nil }, time.Second, 5*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("worker never woke up")
		}
	})

	t.Run("answer without a pending task is rejected", func(t *testing.T) {
		bridge := NewBridge()
		assert.False(t, bridge.Answer("nope", "decision"))
	})

	t.Run("answer with a stale id is rejected", func(t *testing.T) {
		bridge := NewBridge()
		go func() {
			_, _ = bridge.Ask(context.Background(), models.TaskTerminologyReview, nil)
		}()

		var task *Task
		require.Eventually(t, func() bool {
			task = bridge.Pending()
			return task != nil
		}, time.Second, 5*time.Millisecond)

		assert.False(t, bridge.Answer("wrong-id", "decision"))
		require.True(t, bridge.Answer(task.ID, nil))
	})

	t.Run("second ask while one is pending fails fast", func(t *testing.T) {
		bridge := NewBridge()
		go func() {
			_, _ = bridge.Ask(context.Background(), models.TaskTerminologyReview, nil)
		}()

		require.Eventually(t, func() bool { return bridge.Pending() != nil }, time.Second, 5*time.Millisecond)

		_, err := bridge.Ask(context.Background(), models.TaskTranslationReview, nil)
		assert.ErrorIs(t, err, ErrBusy)

		require.True(t, bridge.Answer(bridge.Pending().ID, nil))
	})
}
