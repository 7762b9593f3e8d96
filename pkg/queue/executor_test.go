package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/ent/translationrun"
	"github.com/linguaflow/linguaflow/pkg/agent"
	"github.com/linguaflow/linguaflow/pkg/agent/review"
)

func TestOutcomeMapping(t *testing.T) {
	t.Run("nil error means completed", func(t *testing.T) {
		result := outcome(nil)
		assert.Equal(t, translationrun.StatusCompleted, result.Status)
		assert.NoError(t, result.Error)
	})

	t.Run("cooperative stop maps to cancelled", func(t *testing.T) {
		err := fmt.Errorf("translating stage failed: %w", agent.ErrStopped)
		result := outcome(err)
		assert.Equal(t, translationrun.StatusCancelled, result.Status)
		assert.ErrorIs(t, result.Error, agent.ErrStopped)
	})

	t.Run("context cancellation maps to cancelled", func(t *testing.T) {
		err := fmt.Errorf("saving stage failed: %w", context.Canceled)
		result := outcome(err)
		assert.Equal(t, translationrun.StatusCancelled, result.Status)
	})

	t.Run("anything else maps to failed", func(t *testing.T) {
		result := outcome(errors.New("provider exploded"))
		assert.Equal(t, translationrun.StatusFailed, result.Status)
		assert.EqualError(t, result.Error, "provider exploded")
	})
}

func TestExecutorBridgeRegistry(t *testing.T) {
	executor := &Executor{bridges: make(map[string]*review.Bridge)}

	// Unknown run has no bridge
	_, ok := executor.Bridge("run-1")
	assert.False(t, ok)

	bridge := review.NewBridge()
	executor.register("run-1", bridge)

	got, ok := executor.Bridge("run-1")
	require.True(t, ok)
	assert.Same(t, bridge, got)

	executor.unregister("run-1")

	_, ok = executor.Bridge("run-1")
	assert.False(t, ok)
}

func TestProgressHookDisabledWithoutPublisher(t *testing.T) {
	executor := &Executor{}
	assert.Nil(t, executor.progressHook("run-1"))
}
