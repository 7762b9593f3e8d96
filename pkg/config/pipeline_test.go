package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridePipeline(t *testing.T) {
	t.Run("no overrides returns an equal copy", func(t *testing.T) {
		base := DefaultPipelineConfig()
		got, err := OverridePipeline(base, nil)
		require.NoError(t, err)
		assert.Equal(t, base, got)
		assert.NotSame(t, base, got)
	})

	t.Run("overrides apply without touching base", func(t *testing.T) {
		base := DefaultPipelineConfig()
		got, err := OverridePipeline(base, map[string]any{
			"target_language":     "ja",
			"user_thread_counts":  8,
			"request_timeout":     120,
			"enable_human_review": true,
		})
		require.NoError(t, err)

		assert.Equal(t, "ja", got.TargetLanguage)
		assert.Equal(t, 8, got.UserThreadCounts)
		assert.Equal(t, 120*time.Second, got.RequestTimeout)
		assert.True(t, got.EnableHumanReview)

		assert.Equal(t, "zh", base.TargetLanguage)
		assert.Equal(t, 0, base.UserThreadCounts)
		assert.False(t, base.EnableHumanReview)
	})

	t.Run("batching switch implies the other is off", func(t *testing.T) {
		base := DefaultPipelineConfig()
		require.True(t, base.TokensLimitSwitch)

		got, err := OverridePipeline(base, map[string]any{
			"lines_limit_switch": true,
			"lines_limit":        24,
		})
		require.NoError(t, err)
		assert.True(t, got.LinesLimitSwitch)
		assert.False(t, got.TokensLimitSwitch)
		assert.Equal(t, 24, got.LinesLimit)
	})

	t.Run("explicit false boolean sticks", func(t *testing.T) {
		got, err := OverridePipeline(DefaultPipelineConfig(), map[string]any{
			"use_multi_agent_mode": false,
		})
		require.NoError(t, err)
		assert.False(t, got.UseMultiAgentMode)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		got, err := OverridePipeline(DefaultPipelineConfig(), map[string]any{
			"definitely_not_a_key": 1,
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultPipelineConfig(), got)
	})

	t.Run("mistyped value is rejected", func(t *testing.T) {
		_, err := OverridePipeline(DefaultPipelineConfig(), map[string]any{
			"user_thread_counts": "many",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config overrides")
	})
}
