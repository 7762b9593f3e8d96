package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal runs before
	// deleting them.
	RunRetentionDays int `yaml:"run_retention_days" validate:"min=1"`

	// EventTTL is the maximum age of Event rows before deletion. Events
	// exist for live streaming and catch-up, not as history.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 90,
		EventTTL:         24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}
