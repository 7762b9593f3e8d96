package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the single configuration file loaded from the config
// directory.
const ConfigFileName = "linguaflow.yaml"

// YAMLConfig represents the complete linguaflow.yaml file structure.
type YAMLConfig struct {
	Pipeline      *PipelineYAML      `yaml:"pipeline"`
	LLM           *LLMYAML           `yaml:"llm"`
	Elasticsearch *ElasticsearchYAML `yaml:"elasticsearch"`
	Queue         *QueueConfig       `yaml:"queue"`
	Retention     *RetentionConfig   `yaml:"retention"`
	API           *APIYAML           `yaml:"api"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load linguaflow.yaml from configDir
//  2. Expand environment variables ({{.VAR}} syntax)
//  3. Parse YAML into section structs
//  4. Resolve sections against built-in defaults
//  5. Validate the resolved configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"source_language", stats.SourceLanguage,
		"target_language", stats.TargetLanguage,
		"multi_agent", stats.MultiAgent,
		"workers", stats.Workers,
		"human_review", stats.HumanReview,
		"lexicon", stats.LexiconEnabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	raw, err := loader.loadMainYAML()
	if err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}

	// Resolve queue config (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	queueConfig := DefaultQueueConfig()
	if raw.Queue != nil {
		if err := mergo.Merge(queueConfig, raw.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retentionConfig := DefaultRetentionConfig()
	if raw.Retention != nil {
		if err := mergo.Merge(retentionConfig, raw.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:     configDir,
		Pipeline:      resolvePipelineConfig(raw.Pipeline),
		LLM:           resolveLLMConfig(raw.LLM),
		Elasticsearch: resolveElasticsearchConfig(raw.Elasticsearch),
		Queue:         queueConfig,
		Retention:     retentionConfig,
		API:           resolveAPIConfig(raw.API),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, allowing the YAML parser to handle the content (or fail with
	// a clearer error message).
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadMainYAML() (*YAMLConfig, error) {
	var config YAMLConfig
	if err := l.loadYAML(ConfigFileName, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
