package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// ConfigValidator validates configuration comprehensively with clear error
// messages. Struct tags handle per-field rules; cross-field constraints are
// checked explicitly.
type ConfigValidator struct {
	cfg      *Config
	validate *validator.Validate
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{
		cfg:      cfg,
		validate: validator.New(),
	}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("llm validation failed: %w", err)
	}

	if err := v.validateElasticsearch(); err != nil {
		return fmt.Errorf("elasticsearch validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p == nil {
		return NewValidationError("pipeline", "", ErrMissingRequiredField)
	}

	if err := v.validate.Struct(p); err != nil {
		return structError("pipeline", err)
	}

	// Exactly one batching dimension drives planning.
	if p.LinesLimitSwitch == p.TokensLimitSwitch {
		return NewValidationError("pipeline", "lines_limit_switch",
			fmt.Errorf("%w: exactly one of lines_limit_switch and tokens_limit_switch must be enabled", ErrInvalidValue))
	}

	if p.SourceLanguage == p.TargetLanguage {
		return NewValidationError("pipeline", "target_language",
			fmt.Errorf("%w: source and target language must differ", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateLLM() error {
	l := v.cfg.LLM
	if l == nil {
		return NewValidationError("llm", "", ErrMissingRequiredField)
	}

	if err := v.validate.Struct(l); err != nil {
		return structError("llm", err)
	}

	// Validate API key environment variable is set (if specified)
	if l.Platform.APIKeyEnv != "" {
		if value := os.Getenv(l.Platform.APIKeyEnv); value == "" {
			return NewValidationError("llm", "platform.api_key_env",
				fmt.Errorf("environment variable %s is not set", l.Platform.APIKeyEnv))
		}
	}

	return nil
}

func (v *ConfigValidator) validateElasticsearch() error {
	e := v.cfg.Elasticsearch
	if e == nil {
		return NewValidationError("elasticsearch", "", ErrMissingRequiredField)
	}

	if err := v.validate.Struct(e); err != nil {
		return structError("elasticsearch", err)
	}

	if e.Enabled && len(e.Addresses) == 0 {
		return NewValidationError("elasticsearch", "addresses",
			fmt.Errorf("%w: at least one address required when enabled", ErrMissingRequiredField))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q == nil {
		return NewValidationError("queue", "", ErrMissingRequiredField)
	}

	if err := v.validate.Struct(q); err != nil {
		return structError("queue", err)
	}

	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.RunTimeout <= 0 {
		return NewValidationError("queue", "run_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("%w: must exceed heartbeat_interval or healthy runs get requeued", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return NewValidationError("retention", "", ErrMissingRequiredField)
	}

	if err := v.validate.Struct(r); err != nil {
		return structError("retention", err)
	}

	if r.EventTTL <= 0 {
		return NewValidationError("retention", "event_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}

	return nil
}

// structError converts the first validator.v10 failure into a ValidationError.
func structError(section string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewValidationError(section, fe.Field(),
			fmt.Errorf("%w: failed '%s' rule", ErrInvalidValue, fe.Tag()))
	}
	return NewValidationError(section, "", err)
}
