package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"punchlog/pkg/chat"
	"punchlog/pkg/config"
	"punchlog/pkg/output"
	"punchlog/pkg/timesheet"
	"punchlog/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ReportOptions holds command-line options for the report command.
type ReportOptions struct {
	Config     string
	Output     string
	WeekPolicy string
	ExportCSV  string
	ExportXLSX string
	Verbose    bool
	Quiet      bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report [transcript...]",
		Short: "Build a work-hours report from chat transcripts",
		Long: `Parse exported chat transcripts and build the three report tables:
the daily work log, weekly totals per person, and the last-week timesheet.

Transcripts may be given as arguments (globs allowed) or via a config file.
Multiple transcripts are merged into one chronological timeline before
pairing. Only the 4 most recent weeks present in the data are processed.

Week policies for the last-week timesheet:
  complete - most recent week with work on all seven weekdays (default)
  calendar - the calendar week before the current one, complete or not

Exit codes:
  0 - Report produced
  1 - Format issue (nothing parsed) or no clock in/out pairs found
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file with sources, policy, and webhooks")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.WeekPolicy, "week-policy", "", "Last-week timesheet policy (complete|calendar)")
	cmd.Flags().StringVar(&opts.ExportCSV, "export-csv", "", "Export the three tables as CSV files into this directory")
	cmd.Flags().StringVar(&opts.ExportXLSX, "export-xlsx", "", "Export the report as an XLSX workbook at this path")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show processing statistics")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no tables")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_data", "When to fire webhook (on_data|always|never)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string, opts *ReportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load config if given; flags win over config values.
	var cfg *config.Config
	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}
	applyFlagOverrides(cfg, opts)

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Sources
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no transcripts given (pass files as arguments or set sources in a config file)")
	}

	files, err := chat.ExpandGlobs(patterns)
	if err != nil {
		return fmt.Errorf("expanding transcript sources: %w", err)
	}

	// Build the event source: one file reads directly, several merge into a
	// single chronological timeline.
	var source chat.EventSource
	if len(files) == 1 {
		source = chat.NewFileSource(files)
	} else {
		sources := make([]chat.EventSource, len(files))
		for i, file := range files {
			sources[i] = chat.NewFileSource([]string{file})
		}
		source = chat.NewMergedSource(sources...)
	}
	defer source.Close()

	builder := timesheet.NewBuilder(
		timesheet.WithWeekPolicy(timesheet.WeekPolicy(cfg.WeekPolicy)),
	)

	result, err := builder.Build(ctx, source)
	if err != nil {
		// The two batch-level conditions are outcomes, not failures.
		switch {
		case errors.Is(err, timesheet.ErrNoEvents):
			fmt.Fprintln(os.Stderr, "Format issue: could not extract any messages. Is this an exported chat .txt file?")
			ExitCode = 1
			return nil
		case errors.Is(err, timesheet.ErrNoIntervals):
			fmt.Fprintln(os.Stderr, "No valid clock in/out pairs found in the transcript.")
			ExitCode = 1
			return nil
		}
		return fmt.Errorf("building report: %w", err)
	}

	report := output.NewReport(result, builder.Policy())

	formatter, err := createFormatter(cfg.Output.Format, opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// File exports
	if cfg.Output.CSVDir != "" {
		paths, err := output.ExportCSV(report, cfg.Output.CSVDir)
		if err != nil {
			return fmt.Errorf("exporting CSV: %w", err)
		}
		for _, p := range paths {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", p)
		}
	}
	if cfg.Output.XLSXFile != "" {
		if err := output.ExportXLSX(report, cfg.Output.XLSXFile); err != nil {
			return fmt.Errorf("exporting XLSX: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", cfg.Output.XLSXFile)
	}

	// Send webhooks (errors logged but don't fail the report)
	sendWebhooks(ctx, cfg, report)

	return nil
}

// applyFlagOverrides lets explicit flags win over config file values.
func applyFlagOverrides(cfg *config.Config, opts *ReportOptions) {
	if opts.Output != "" {
		cfg.Output.Format = opts.Output
	}
	if opts.WeekPolicy != "" {
		cfg.WeekPolicy = opts.WeekPolicy
	}
	if opts.ExportCSV != "" {
		cfg.Output.CSVDir = opts.ExportCSV
	}
	if opts.ExportXLSX != "" {
		cfg.Output.XLSXFile = opts.ExportXLSX
	}
	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnData
		}
		cfg.Webhooks = append(cfg.Webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}
}

func createFormatter(format string, opts *ReportOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch format {
	case "", "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the report.
func sendWebhooks(ctx context.Context, cfg *config.Config, report *output.Report) {
	if len(cfg.Webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range cfg.Webhooks {
		if !shouldFireWebhook(wh.Trigger, len(report.DailyLog) > 0) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// shouldFireWebhook determines if a webhook should fire based on trigger and data.
func shouldFireWebhook(trigger config.WebhookTrigger, hasData bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnData:
		return hasData
	default:
		// Default to on_data
		return hasData
	}
}
