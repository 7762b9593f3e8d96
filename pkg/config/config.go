// Package config loads and validates the linguaflow.yaml configuration.
// YAML content goes through {{.VAR}} environment expansion, section structs
// are resolved against built-in defaults, and the result is validated before
// anything else starts.
package config

// Config is the fully resolved runtime configuration.
type Config struct {
	configDir string

	Pipeline      *PipelineConfig
	LLM           *LLMConfig
	Elasticsearch *ElasticsearchConfig
	Queue         *QueueConfig
	Retention     *RetentionConfig
	API           *APIConfig
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Summary holds the headline values logged after a successful load.
type Summary struct {
	SourceLanguage string
	TargetLanguage string
	MultiAgent     bool
	Workers        int
	HumanReview    bool
	LexiconEnabled bool
}

// Stats summarizes the loaded configuration for startup logging.
func (c *Config) Stats() Summary {
	return Summary{
		SourceLanguage: c.Pipeline.SourceLanguage,
		TargetLanguage: c.Pipeline.TargetLanguage,
		MultiAgent:     c.Pipeline.UseMultiAgentMode,
		Workers:        c.Queue.WorkerCount,
		HumanReview:    c.Pipeline.EnableHumanReview,
		LexiconEnabled: c.Elasticsearch.Enabled,
	}
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}

// APIYAML is the raw api section of linguaflow.yaml.
type APIYAML struct {
	Addr string `yaml:"addr,omitempty"`
}

func resolveAPIConfig(y *APIYAML) *APIConfig {
	cfg := &APIConfig{Addr: ":8080"}
	if y != nil && y.Addr != "" {
		cfg.Addr = y.Addr
	}
	return cfg
}
