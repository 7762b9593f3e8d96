package config

// LLMConfig holds everything needed to reach the model sidecar.
type LLMConfig struct {
	// Addr is the gRPC address of the LLM sidecar.
	Addr string `validate:"required"`

	Platform  PlatformConfig
	NER       NERConfig
	Embedding EmbeddingConfig
}

// PlatformConfig selects the upstream provider the sidecar talks to. The
// values are forwarded verbatim on every request so runs on the same sidecar
// can use different models.
type PlatformConfig struct {
	Provider string `yaml:"provider" validate:"required"`
	Model    string `yaml:"model" validate:"required"`

	// APIKeyEnv names the environment variable holding the provider key.
	// The key itself never appears in YAML.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// BaseURL overrides the provider endpoint for proxies and self-hosted
	// gateways.
	BaseURL string `yaml:"base_url,omitempty"`

	Temperature float64 `yaml:"temperature,omitempty" validate:"min=0,max=2"`
}

// NERConfig controls the auxiliary named-entity recognition pass that seeds
// terminology identification.
type NERConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Model       string   `yaml:"model,omitempty"`
	EntityTypes []string `yaml:"entity_types,omitempty"`
}

// EmbeddingConfig controls semantic vectors for translation-memory and
// similarity retrieval. When disabled, vector columns stay NULL and
// retrieval degrades to recency ordering.
type EmbeddingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model,omitempty"`
}

// LLMYAML is the raw llm section of linguaflow.yaml.
type LLMYAML struct {
	Addr      string          `yaml:"addr,omitempty"`
	Platform  *PlatformConfig `yaml:"platform,omitempty"`
	NER       *NERYAML        `yaml:"ner,omitempty"`
	Embedding *EmbeddingYAML  `yaml:"embedding,omitempty"`
}

// NERYAML is the raw ner subsection.
type NERYAML struct {
	Enabled     *bool    `yaml:"enabled,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	EntityTypes []string `yaml:"entity_types,omitempty"`
}

// EmbeddingYAML is the raw embedding subsection.
type EmbeddingYAML struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Addr: "localhost:50051",
		Platform: PlatformConfig{
			Provider:    "openai",
			Model:       "gpt-4o",
			APIKeyEnv:   "LLM_API_KEY",
			Temperature: 0.7,
		},
		NER: NERConfig{
			Enabled:     false,
			EntityTypes: []string{"PERSON", "ORG", "GPE", "PRODUCT", "WORK_OF_ART"},
		},
		Embedding: EmbeddingConfig{
			Enabled: false,
			Model:   "text-embedding-3-small",
		},
	}
}

func resolveLLMConfig(y *LLMYAML) *LLMConfig {
	cfg := DefaultLLMConfig()
	if y == nil {
		return cfg
	}

	if y.Addr != "" {
		cfg.Addr = y.Addr
	}
	if y.Platform != nil {
		p := *y.Platform
		if p.Provider == "" {
			p.Provider = cfg.Platform.Provider
		}
		if p.Model == "" {
			p.Model = cfg.Platform.Model
		}
		if p.APIKeyEnv == "" {
			p.APIKeyEnv = cfg.Platform.APIKeyEnv
		}
		if p.Temperature == 0 {
			p.Temperature = cfg.Platform.Temperature
		}
		cfg.Platform = p
	}
	if y.NER != nil {
		if y.NER.Enabled != nil {
			cfg.NER.Enabled = *y.NER.Enabled
		}
		if y.NER.Model != "" {
			cfg.NER.Model = y.NER.Model
		}
		if len(y.NER.EntityTypes) > 0 {
			cfg.NER.EntityTypes = y.NER.EntityTypes
		}
	}
	if y.Embedding != nil {
		if y.Embedding.Enabled != nil {
			cfg.Embedding.Enabled = *y.Embedding.Enabled
		}
		if y.Embedding.Model != "" {
			cfg.Embedding.Model = y.Embedding.Model
		}
	}

	return cfg
}
