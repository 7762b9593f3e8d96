package config

// ElasticsearchConfig holds the terminology lexicon backend settings. The
// lexicon is optional: with Enabled false the pipeline keeps terminology in
// memory and on the work row only.
type ElasticsearchConfig struct {
	Enabled   bool
	Addresses []string `validate:"required_if=Enabled true,omitempty,dive,url"`
	Username  string
	Password  string

	// IndexName is the lexicon index. One index serves all works; documents
	// are keyed by work and entry.
	IndexName string `validate:"required"`
}

// ElasticsearchYAML is the raw elasticsearch section of linguaflow.yaml.
type ElasticsearchYAML struct {
	Enabled   *bool    `yaml:"enabled,omitempty"`
	Addresses []string `yaml:"addresses,omitempty"`
	Username  string   `yaml:"username,omitempty"`
	Password  string   `yaml:"password,omitempty"`
	IndexName string   `yaml:"index_name,omitempty"`
}

// DefaultElasticsearchConfig returns the built-in lexicon defaults.
func DefaultElasticsearchConfig() *ElasticsearchConfig {
	return &ElasticsearchConfig{
		Enabled:   false,
		Addresses: []string{"http://localhost:9200"},
		IndexName: "domain_lexicon",
	}
}

func resolveElasticsearchConfig(y *ElasticsearchYAML) *ElasticsearchConfig {
	cfg := DefaultElasticsearchConfig()
	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if len(y.Addresses) > 0 {
		cfg.Addresses = y.Addresses
	}
	if y.Username != "" {
		cfg.Username = y.Username
	}
	if y.Password != "" {
		cfg.Password = y.Password
	}
	if y.IndexName != "" {
		cfg.IndexName = y.IndexName
	}

	return cfg
}
