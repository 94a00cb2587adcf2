package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"punchlog/pkg/chat"
	"punchlog/pkg/detector"
	"punchlog/pkg/timesheet"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <transcript>",
		Short: "Diagnose why a transcript yields no report",
		Long: `Diagnose common problems with a transcript file.

Walks the pipeline stage by stage and reports where data is lost:
- File existence and readability
- Structural line shape (bracketed [date, time] name: message)
- Timestamp parseability
- Clock in/out keyword matches
- Week windowing and interval pairing

Example:
  punchlog diagnose chat.txt
  punchlog diagnose -v chat.txt  # verbose output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(ctx context.Context, transcript string, opts *DiagnoseOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	results := []DiagnosticResult{}

	// 1. Check transcript file
	result := checkTranscriptExists(transcript)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(results, opts)
		return nil
	}

	// 2. Check structural line shape against known flavors
	results = append(results, checkLineShape(ctx, transcript))

	// 3. Walk the pipeline and report where events are lost
	results = append(results, checkPipeline(ctx, transcript, opts)...)

	printDiagnostics(results, opts)
	return nil
}

func checkTranscriptExists(path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Transcript File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Transcript not found: %s", path)
		result.Suggests = []string{
			"Check the file path is correct",
			"Export the group chat as a .txt file and pass its path",
		}
		return result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access transcript: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Transcript file is empty"
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return result
}

func checkLineShape(ctx context.Context, path string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Line Shape",
	}

	d := detector.New(detector.WithSampleSize(100))
	det, err := d.DetectFromFile(ctx, path)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot sample file: %v", err)
		return result
	}

	if !det.HasMatch() {
		result.Status = "error"
		result.Message = "No sampled line matches the bracketed transcript shape"
		result.Suggests = []string{
			"punchlog expects lines like: [01/06/25, 9:00:00 AM] Alice: in",
			"Use 'punchlog detect " + path + "' to inspect the file",
		}
		return result
	}

	best := det.BestMatch()
	result.Status = "ok"
	result.Message = fmt.Sprintf("Detected flavor: %s (%d/%d sampled lines)",
		best.Format.Name, best.MatchCount, det.SampledLines)
	result.Details = []string{
		"Sample match:",
		truncate(best.SampleLine, 80),
	}
	return result
}

// checkPipeline runs the real pipeline and reports counts per stage, so the
// "format issue" and "no data" conditions show up with their cause attached.
func checkPipeline(ctx context.Context, path string, opts *DiagnoseOptions) []DiagnosticResult {
	results := []DiagnosticResult{}

	source := chat.NewFileSource([]string{path})
	defer source.Close()

	builder := timesheet.NewBuilder()
	result, err := builder.Build(ctx, source)

	switch {
	case err == timesheet.ErrNoEvents:
		results = append(results, DiagnosticResult{
			Check:   "Event Extraction",
			Status:  "error",
			Message: "No lines parsed into events (format issue)",
			Suggests: []string{
				"The file structure matched but every timestamp failed to parse",
				"Check the date ordering (punchlog assumes month-first MM/DD)",
			},
		})
		return results
	case err == timesheet.ErrNoIntervals:
		results = append(results,
			DiagnosticResult{
				Check:   "Event Extraction",
				Status:  "ok",
				Message: "Events parsed successfully",
			},
			DiagnosticResult{
				Check:   "Interval Pairing",
				Status:  "error",
				Message: "No clock in/out pairs found (no data)",
				Suggests: []string{
					"Clock-in messages must contain a whole word: in, back, or return",
					"Clock-out messages must contain a whole word: out or lunch",
					"A clock-in must be followed by a clock-out on the same day",
				},
			})
		return results
	case err != nil:
		results = append(results, DiagnosticResult{
			Check:   "Pipeline",
			Status:  "error",
			Message: fmt.Sprintf("Processing failed: %v", err),
		})
		return results
	}

	stats := result.Stats

	totalLines := countLines(path)
	extraction := DiagnosticResult{
		Check:   "Event Extraction",
		Status:  "ok",
		Message: fmt.Sprintf("%d events extracted from %d lines", stats.Events, totalLines),
	}
	if totalLines > 0 && stats.Events < totalLines/2 {
		extraction.Status = "warning"
		extraction.Message += " (more than half the lines were skipped)"
		extraction.Details = []string{
			"Skipped lines are usually multi-line message continuations or system notices",
		}
	}
	results = append(results, extraction)

	keyword := DiagnosticResult{
		Check:   "Keyword Classification",
		Status:  "ok",
		Message: fmt.Sprintf("%d of %d events contain clock vocabulary", stats.ClockEvents, stats.Events),
	}
	results = append(results, keyword)

	window := DiagnosticResult{
		Check:  "Week Window",
		Status: "ok",
		Message: fmt.Sprintf("%d of %d clock events fall in the %d most recent weeks",
			stats.WindowedEvents, stats.ClockEvents, timesheet.WindowWeeks),
	}
	results = append(results, window)

	pairing := DiagnosticResult{
		Check:   "Interval Pairing",
		Status:  "ok",
		Message: fmt.Sprintf("%d intervals paired, %d events unpaired", len(result.DailyLog), stats.UnpairedEvents),
	}
	if stats.UnpairedEvents > len(result.DailyLog) {
		pairing.Status = "warning"
		pairing.Details = []string{
			"Unpaired events are dropped silently (lone clock-ins, doubled clock-outs)",
		}
	}
	results = append(results, pairing)

	sheet := DiagnosticResult{
		Check: "Last-Week Timesheet",
	}
	if len(result.Timesheet) > 0 {
		sheet.Status = "ok"
		sheet.Message = fmt.Sprintf("%d rows in the qualifying week", len(result.Timesheet))
	} else {
		sheet.Status = "warning"
		sheet.Message = "No week has work on all seven weekdays yet"
		sheet.Suggests = []string{
			"The timesheet fills in once a week is complete",
			"Or run report with --week-policy calendar to use last calendar week",
		}
	}
	results = append(results, sheet)

	return results
}

func countLines(path string) int {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return 0
	}
	defer f.Close()

	count := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		count++
	}
	return count
}

func printDiagnostics(results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Println("=== Punchlog Transcript Diagnostics ===")
	fmt.Println()

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		// Status icon
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Printf("[%s] %s\n", icon, r.Check)
		fmt.Printf("    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Printf("      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Printf("      Hint: %s\n", s)
		}

		fmt.Println()
	}

	// Summary
	fmt.Println("---")
	fmt.Printf("Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	if errCount > 0 {
		fmt.Println("\nFix the errors above before running a report.")
	} else if warnCount > 0 {
		fmt.Println("\nTranscript is usable but has warnings.")
	} else {
		fmt.Println("\nTranscript looks good!")
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
