package config

import (
	"os"
	"strings"
	"time"
)

// Default values for configuration.
const (
	DefaultWeekPolicy     = "complete"
	DefaultOutputFormat   = "text"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvSources    = "PUNCHLOG_SOURCES"
	EnvWeekPolicy = "PUNCHLOG_WEEK_POLICY"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources:    []string{},
		WeekPolicy: DefaultWeekPolicy,
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if sources := os.Getenv(EnvSources); sources != "" {
		c.Sources = c.Sources[:0]
		for _, s := range strings.Split(sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Sources = append(c.Sources, s)
			}
		}
	}

	if policy := os.Getenv(EnvWeekPolicy); policy != "" {
		c.WeekPolicy = policy
	}
}
