// Package config provides configuration loading and validation for punchlog.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists transcript files or glob patterns to process.
	Sources []string `yaml:"sources"`

	// WeekPolicy selects the last-week timesheet policy
	// ("complete" or "calendar"). Defaults to "complete".
	WeekPolicy string `yaml:"week_policy,omitempty"`

	// Output controls default report rendering and export targets.
	Output OutputConfig `yaml:"output,omitempty"`

	// Webhooks are optional endpoints to deliver the report to.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// OutputConfig controls default report rendering and export targets.
type OutputConfig struct {
	// Format is the default stdout format (text or json).
	Format string `yaml:"format,omitempty"`

	// CSVDir, when set, exports the three tables as CSV files into this
	// directory on every report run.
	CSVDir string `yaml:"csv_dir,omitempty"`

	// XLSXFile, when set, exports the report as a workbook at this path
	// on every report run.
	XLSXFile string `yaml:"xlsx_file,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnData fires only when the report contains work
	// intervals (default).
	WebhookTriggerOnData WebhookTrigger = "on_data"
	// WebhookTriggerAlways fires after every report.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	// Supports ${VAR} and $VAR environment expansion.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_data" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
