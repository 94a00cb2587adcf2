package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"punchlog/pkg/chat"
	"punchlog/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a punchlog configuration file without building a report.

Checks:
  - YAML syntax
  - Required fields
  - Week policy and output format values
  - Webhook endpoint validity
  - Transcript source existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Sources:     %d pattern(s)\n", len(cfg.Sources))
	fmt.Printf("  Week policy: %s\n", cfg.WeekPolicy)
	fmt.Printf("  Output:      %s\n", cfg.Output.Format)
	if cfg.Output.CSVDir != "" {
		fmt.Printf("  CSV export:  %s\n", cfg.Output.CSVDir)
	}
	if cfg.Output.XLSXFile != "" {
		fmt.Printf("  XLSX export: %s\n", cfg.Output.XLSXFile)
	}
	if len(cfg.Webhooks) > 0 {
		fmt.Printf("  Webhooks:    %d\n", len(cfg.Webhooks))
	}

	// Check if transcript sources exist (warnings only)
	files, err := chat.ExpandGlobs(cfg.Sources)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding source patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match source patterns\n")
	} else {
		fmt.Printf("\nTranscripts matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
