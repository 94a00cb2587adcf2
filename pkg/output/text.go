package output

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
)

// TextFormatter formats reports as human-readable text tables.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "punchlog: %d people, %d intervals, %d weeks, %.2f hours\n",
		report.Summary.People,
		report.Summary.Intervals,
		report.Summary.Weeks,
		report.Summary.TotalHours)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Punchlog Work Hours Report ===")
	fmt.Fprintln(w)

	f.formatDailyLog(report, w)
	f.formatWeeklySummary(report, w)
	f.formatTimesheet(report, w)

	// Summary
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d people, %d intervals, %d weeks, %.2f total hours\n",
		report.Summary.People,
		report.Summary.Intervals,
		report.Summary.Weeks,
		report.Summary.TotalHours)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Events parsed: %d (%d clock events, %d unpaired)\n",
			report.Summary.Events,
			report.Summary.ClockEvents,
			report.Summary.UnpairedEvents)
		fmt.Fprintf(w, "Week policy: %s\n", report.Metadata.WeekPolicy)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatDailyLog(report *Report, w io.Writer) {
	fmt.Fprintln(w, "Daily Work Log")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Name\tDate\tDay\tWeek\tClock In\tClock Out\tHours")
	for _, iv := range report.DailyLog {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			iv.Name,
			iv.Date.Format(dateFormat),
			iv.Day,
			iv.Week,
			iv.ClockIn.Format(clockFormat),
			iv.ClockOut.Format(clockFormat),
			iv.Hours)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatWeeklySummary(report *Report, w io.Writer) {
	fmt.Fprintln(w, "Weekly Total Hours")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Name\tWeek\tTotal Hours")
	for _, wt := range report.WeeklySummary {
		fmt.Fprintf(tw, "  %s\t%s\t%.2f\n", wt.Name, wt.Week, wt.TotalHours)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func (f *TextFormatter) formatTimesheet(report *Report, w io.Writer) {
	if !report.HasTimesheet() {
		fmt.Fprintln(w, "No qualifying week for the last-week timesheet yet.")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, report.TimesheetTitle)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Name\tDate\tDay\tClock In\tClock Out\tHours\tTotal Hours This Week")
	for _, row := range report.Timesheet {
		total := ""
		if row.TotalHours != nil {
			total = fmt.Sprintf("%.2f", *row.TotalHours)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			row.Name,
			row.Date.Format(dateFormat),
			row.Day,
			row.ClockIn.Format(clockFormat),
			row.ClockOut.Format(clockFormat),
			row.Hours,
			total)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
