package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Bilingual output line ordering.
const (
	BilingualSourceFirst      = "source_first"
	BilingualTranslationFirst = "translation_first"
)

// PipelineConfig is the resolved translation-pipeline configuration.
type PipelineConfig struct {
	// UseMultiAgentMode enables the full stage graph. When false only the
	// draft translation step runs: no planning analysis, terminology, TEaR
	// refinement, or consistency enforcement.
	UseMultiAgentMode bool

	SourceLanguage string `validate:"required"`
	TargetLanguage string `validate:"required"`

	// Exactly one of the two batching dimensions is active.
	LinesLimitSwitch  bool
	TokensLimitSwitch bool
	LinesLimit        int `validate:"min=1"`
	TokensLimit       int `validate:"min=1"`

	// UserThreadCounts overrides the planner's worker choice when > 0.
	UserThreadCounts int `validate:"min=0"`

	// RequestTimeout bounds one LLM round-trip.
	RequestTimeout time.Duration `validate:"min=1s"`

	// RoundLimit is the number of per-line fallback attempts after a batch
	// result could not be used.
	RoundLimit int `validate:"min=1"`

	// RPMLimit / TPMLimit feed the rate limiter; zero disables a dimension.
	RPMLimit int `validate:"min=0"`
	TPMLimit int `validate:"min=0"`

	// PreLineCounts is the number of preceding source lines carried as
	// context into each translation prompt.
	PreLineCounts int `validate:"min=0"`

	OutputFilenameSuffix string
	BilingualTextOrder   string `validate:"oneof=source_first translation_first"`

	// EnableHumanReview pauses the run after translation for decisions on
	// low-scoring lines and identified terms.
	EnableHumanReview bool

	// ReviewScoreThreshold selects lines for human review: lines scoring
	// strictly below it are queued. Scores run 1-10.
	ReviewScoreThreshold float64 `validate:"min=0,max=10"`
}

// PipelineYAML is the raw pipeline section of linguaflow.yaml. Booleans are
// pointers so an explicit false survives default resolution.
type PipelineYAML struct {
	UseMultiAgentMode    *bool   `yaml:"use_multi_agent_mode,omitempty"`
	SourceLanguage       string  `yaml:"source_language,omitempty"`
	TargetLanguage       string  `yaml:"target_language,omitempty"`
	LinesLimitSwitch     *bool   `yaml:"lines_limit_switch,omitempty"`
	TokensLimitSwitch    *bool   `yaml:"tokens_limit_switch,omitempty"`
	LinesLimit           int     `yaml:"lines_limit,omitempty"`
	TokensLimit          int     `yaml:"tokens_limit,omitempty"`
	UserThreadCounts     int     `yaml:"user_thread_counts,omitempty"`
	RequestTimeoutSec    int     `yaml:"request_timeout,omitempty"`
	RoundLimit           int     `yaml:"round_limit,omitempty"`
	RPMLimit             int     `yaml:"rpm_limit,omitempty"`
	TPMLimit             int     `yaml:"tpm_limit,omitempty"`
	PreLineCounts        *int    `yaml:"pre_line_counts,omitempty"`
	OutputFilenameSuffix string  `yaml:"output_filename_suffix,omitempty"`
	BilingualTextOrder   string  `yaml:"bilingual_text_order,omitempty"`
	EnableHumanReview    *bool   `yaml:"enable_human_review,omitempty"`
	ReviewScoreThreshold float64 `yaml:"review_score_threshold,omitempty"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		UseMultiAgentMode:    true,
		SourceLanguage:       "en",
		TargetLanguage:       "zh",
		LinesLimitSwitch:     false,
		TokensLimitSwitch:    true,
		LinesLimit:           16,
		TokensLimit:          1200,
		UserThreadCounts:     0,
		RequestTimeout:       300 * time.Second,
		RoundLimit:           1,
		RPMLimit:             0,
		TPMLimit:             0,
		PreLineCounts:        3,
		OutputFilenameSuffix: "_translated",
		BilingualTextOrder:   BilingualSourceFirst,
		EnableHumanReview:    false,
		ReviewScoreThreshold: 7.0,
	}
}

// resolvePipelineConfig layers the YAML section over the built-in defaults.
func resolvePipelineConfig(y *PipelineYAML) *PipelineConfig {
	cfg := DefaultPipelineConfig()
	layerPipelineYAML(cfg, y)
	return cfg
}

// OverridePipeline layers run-level overrides onto a copy of base. The
// overrides map uses the same keys as the pipeline section of
// linguaflow.yaml; unknown keys are ignored.
func OverridePipeline(base *PipelineConfig, overrides map[string]any) (*PipelineConfig, error) {
	cfg := *base
	if len(overrides) == 0 {
		return &cfg, nil
	}

	raw, err := yaml.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("encoding config overrides: %w", err)
	}
	var y PipelineYAML
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("parsing config overrides: %w", err)
	}

	layerPipelineYAML(&cfg, &y)
	return &cfg, nil
}

// layerPipelineYAML applies the set fields of y on top of cfg.
func layerPipelineYAML(cfg *PipelineConfig, y *PipelineYAML) {
	if y == nil {
		return
	}

	if y.UseMultiAgentMode != nil {
		cfg.UseMultiAgentMode = *y.UseMultiAgentMode
	}
	if y.SourceLanguage != "" {
		cfg.SourceLanguage = y.SourceLanguage
	}
	if y.TargetLanguage != "" {
		cfg.TargetLanguage = y.TargetLanguage
	}

	// Setting one batching switch implies the other is off unless the user
	// explicitly says otherwise; the validator still insists on exactly one.
	if y.LinesLimitSwitch != nil {
		cfg.LinesLimitSwitch = *y.LinesLimitSwitch
		if y.TokensLimitSwitch == nil {
			cfg.TokensLimitSwitch = !*y.LinesLimitSwitch
		}
	}
	if y.TokensLimitSwitch != nil {
		cfg.TokensLimitSwitch = *y.TokensLimitSwitch
		if y.LinesLimitSwitch == nil {
			cfg.LinesLimitSwitch = !*y.TokensLimitSwitch
		}
	}

	if y.LinesLimit > 0 {
		cfg.LinesLimit = y.LinesLimit
	}
	if y.TokensLimit > 0 {
		cfg.TokensLimit = y.TokensLimit
	}
	if y.UserThreadCounts > 0 {
		cfg.UserThreadCounts = y.UserThreadCounts
	}
	if y.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(y.RequestTimeoutSec) * time.Second
	}
	if y.RoundLimit > 0 {
		cfg.RoundLimit = y.RoundLimit
	}
	if y.RPMLimit > 0 {
		cfg.RPMLimit = y.RPMLimit
	}
	if y.TPMLimit > 0 {
		cfg.TPMLimit = y.TPMLimit
	}
	if y.PreLineCounts != nil && *y.PreLineCounts >= 0 {
		cfg.PreLineCounts = *y.PreLineCounts
	}
	if y.OutputFilenameSuffix != "" {
		cfg.OutputFilenameSuffix = y.OutputFilenameSuffix
	}
	if y.BilingualTextOrder != "" {
		cfg.BilingualTextOrder = y.BilingualTextOrder
	}
	if y.EnableHumanReview != nil {
		cfg.EnableHumanReview = *y.EnableHumanReview
	}
	if y.ReviewScoreThreshold > 0 {
		cfg.ReviewScoreThreshold = y.ReviewScoreThreshold
	}
}
