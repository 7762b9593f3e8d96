package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig builds a configuration that passes all checks; individual
// tests then break one field at a time.
func validConfig() *Config {
	return &Config{
		Pipeline:      DefaultPipelineConfig(),
		LLM:           DefaultLLMConfig(),
		Elasticsearch: DefaultElasticsearchConfig(),
		Queue:         DefaultQueueConfig(),
		Retention:     DefaultRetentionConfig(),
		API:           &APIConfig{Addr: ":8080"},
	}
}

func TestValidateAll(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, NewValidator(validConfig()).ValidateAll())
	})

	t.Run("missing source language", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pipeline.SourceLanguage = ""
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("bad bilingual order", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pipeline.BilingualTextOrder = "interleaved"
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("review threshold out of range", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pipeline.ReviewScoreThreshold = 11
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("no batching switch", func(t *testing.T) {
		cfg := validConfig()
		cfg.Pipeline.LinesLimitSwitch = false
		cfg.Pipeline.TokensLimitSwitch = false
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "pipeline", verr.Section)
	})

	t.Run("missing llm addr", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Addr = ""
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("missing platform model", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Platform.Model = ""
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("enabled lexicon without addresses", func(t *testing.T) {
		cfg := validConfig()
		cfg.Elasticsearch.Enabled = true
		cfg.Elasticsearch.Addresses = nil
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("zero workers", func(t *testing.T) {
		cfg := validConfig()
		cfg.Queue.WorkerCount = 0
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("orphan threshold below heartbeat", func(t *testing.T) {
		cfg := validConfig()
		cfg.Queue.OrphanThreshold = cfg.Queue.HeartbeatInterval - time.Second
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "orphan_threshold")
	})

	t.Run("zero event ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.Retention.EventTTL = 0
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})
}
