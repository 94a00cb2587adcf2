package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"punchlog/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output     string
	SampleSize int
	ShowAll    bool
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <transcript>",
		Short: "Detect the export flavor of a chat transcript",
		Long: `Analyze a transcript file to identify which chat export flavor it uses.

Samples lines from the file and tests against the known bracketed line
shapes. Export flavors differ in whether times carry seconds, the year
width, and the invisible separator character before the AM/PM marker
(plain space, no-break space, or narrow no-break space).

Example:
  punchlog detect chat.txt
  punchlog detect --sample 500 chat.txt
  punchlog detect --all chat.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected flavors, not just the best match")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	transcript := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Check file exists
	if _, err := os.Stat(transcript); os.IsNotExist(err) {
		return fmt.Errorf("transcript not found: %s", transcript)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, transcript)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, transcript)
	default:
		return outputDetectText(result, transcript, opts)
	}
}

func outputDetectText(result *detector.DetectionResult, transcript string, opts *DetectOptions) error {
	fmt.Println("=== Transcript Flavor Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", transcript)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Lines matching: %d\n", result.ParsedLines)
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No known export flavor detected.")
		fmt.Println()
		fmt.Println("Tip: punchlog expects bracketed lines like:")
		fmt.Println("  [01/06/25, 9:00:00 AM] Alice: in")
		fmt.Println("Check the first few lines of the file manually.")
		return nil
	}

	best := result.BestMatch()
	fmt.Printf("Detected flavor: %s\n", best.Format.Name)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)
	fmt.Printf("Parsed as: %s\n", best.ParsedTime.Format("2006-01-02 15:04:05"))
	fmt.Println()

	if result.AmbiguityNote != "" {
		fmt.Printf("Note: %s\n", result.AmbiguityNote)
		fmt.Println()
	}

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println("Other flavors that matched:")
		for _, m := range result.Matches[1:] {
			fmt.Printf("  - %s (%.1f%%)\n", m.Format.Name, m.Confidence*100)
		}
		fmt.Println()
	}

	return nil
}

func outputDetectJSON(result *detector.DetectionResult, transcript string) error {
	type matchJSON struct {
		Flavor     string  `json:"flavor"`
		Confidence float64 `json:"confidence"`
		MatchCount int     `json:"match_count"`
		SampleLine string  `json:"sample_line"`
	}
	out := struct {
		File         string      `json:"file"`
		SampledLines int         `json:"sampled_lines"`
		ParsedLines  int         `json:"parsed_lines"`
		Matches      []matchJSON `json:"matches"`
		Note         string      `json:"note,omitempty"`
	}{
		File:         transcript,
		SampledLines: result.SampledLines,
		ParsedLines:  result.ParsedLines,
		Note:         result.AmbiguityNote,
	}
	for _, m := range result.Matches {
		out.Matches = append(out.Matches, matchJSON{
			Flavor:     m.Format.Name,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
