package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestInitialize(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	t.Run("full config", func(t *testing.T) {
		t.Setenv("TEST_LF_SIDECAR", "llm-sidecar:50051")
		dir := writeConfig(t, `
pipeline:
  source_language: en
  target_language: zh
  lines_limit_switch: true
  lines_limit: 20
  user_thread_counts: 4
  request_timeout: 120
  rpm_limit: 60
  tpm_limit: 90000
  bilingual_text_order: translation_first
  enable_human_review: true
llm:
  addr: "{{.TEST_LF_SIDECAR}}"
  platform:
    provider: deepseek
    model: deepseek-chat
    temperature: 0.3
  ner:
    enabled: true
    model: onnx-bert-ner
elasticsearch:
  enabled: true
  addresses:
    - http://localhost:9200
  index_name: domain_lexicon
queue:
  worker_count: 3
  run_timeout: 2h
api:
  addr: ":9090"
`)
		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		p := cfg.Pipeline
		assert.True(t, p.LinesLimitSwitch)
		assert.False(t, p.TokensLimitSwitch, "enabling lines batching should disable token batching")
		assert.Equal(t, 20, p.LinesLimit)
		assert.Equal(t, 4, p.UserThreadCounts)
		assert.Equal(t, 120*time.Second, p.RequestTimeout)
		assert.Equal(t, 60, p.RPMLimit)
		assert.Equal(t, BilingualTranslationFirst, p.BilingualTextOrder)
		assert.True(t, p.EnableHumanReview)

		assert.Equal(t, "llm-sidecar:50051", cfg.LLM.Addr)
		assert.Equal(t, "deepseek", cfg.LLM.Platform.Provider)
		assert.InDelta(t, 0.3, cfg.LLM.Platform.Temperature, 1e-9)
		assert.True(t, cfg.LLM.NER.Enabled)

		assert.True(t, cfg.Elasticsearch.Enabled)
		assert.Equal(t, "domain_lexicon", cfg.Elasticsearch.IndexName)

		assert.Equal(t, 3, cfg.Queue.WorkerCount)
		assert.Equal(t, 2*time.Hour, cfg.Queue.RunTimeout)
		// Unset queue fields keep their defaults.
		assert.Equal(t, DefaultQueueConfig().PollInterval, cfg.Queue.PollInterval)
		assert.Equal(t, DefaultQueueConfig().HeartbeatInterval, cfg.Queue.HeartbeatInterval)

		assert.Equal(t, ":9090", cfg.API.Addr)
		assert.Equal(t, dir, cfg.ConfigDir())
	})

	t.Run("minimal config gets defaults", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  platform:
    provider: openai
    model: gpt-4o
`)
		cfg, err := Initialize(context.Background(), dir)
		require.NoError(t, err)

		p := cfg.Pipeline
		assert.True(t, p.UseMultiAgentMode)
		assert.True(t, p.TokensLimitSwitch)
		assert.False(t, p.LinesLimitSwitch)
		assert.Equal(t, 300*time.Second, p.RequestTimeout)
		assert.Equal(t, 3, p.PreLineCounts)
		assert.Equal(t, "_translated", p.OutputFilenameSuffix)
		assert.InDelta(t, 7.0, p.ReviewScoreThreshold, 1e-9)

		assert.False(t, cfg.Elasticsearch.Enabled)
		assert.Equal(t, DefaultRetentionConfig().RunRetentionDays, cfg.Retention.RunRetentionDays)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Initialize(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := writeConfig(t, "pipeline: [unclosed")
		_, err := Initialize(context.Background(), dir)
		assert.ErrorIs(t, err, ErrInvalidYAML)
	})

	t.Run("both batching switches rejected", func(t *testing.T) {
		dir := writeConfig(t, `
pipeline:
  lines_limit_switch: true
  tokens_limit_switch: true
`)
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "exactly one")
	})

	t.Run("same source and target language rejected", func(t *testing.T) {
		dir := writeConfig(t, `
pipeline:
  source_language: zh
  target_language: zh
`)
		_, err := Initialize(context.Background(), dir)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("unset api key environment variable rejected", func(t *testing.T) {
		dir := writeConfig(t, `
llm:
  platform:
    provider: openai
    model: gpt-4o
    api_key_env: TEST_LF_NO_SUCH_KEY
`)
		_, err := Initialize(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_LF_NO_SUCH_KEY")
	})
}
