// Package output provides formatting and export of timesheet reports.
package output

import (
	"fmt"
	"time"

	"punchlog/pkg/timesheet"
)

// Report is the complete report produced from one transcript build.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// DailyLog is the full work interval table.
	DailyLog []timesheet.Interval `json:"daily_log"`

	// WeeklySummary is the per-person per-week totals table.
	WeeklySummary []timesheet.WeeklyTotal `json:"weekly_summary"`

	// Timesheet is the last-week timesheet table. May be empty.
	Timesheet []timesheet.TimesheetRow `json:"timesheet"`

	// TimesheetTitle names the timesheet window, e.g.
	// "Jan 06 - Jan 12 2025 WORKDAY TIMESHEET". Empty when Timesheet is empty.
	TimesheetTitle string `json:"timesheet_title,omitempty"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// People is the number of distinct names in the daily log.
	People int `json:"people"`

	// Intervals is the number of work intervals in the daily log.
	Intervals int `json:"intervals"`

	// Weeks is the number of distinct weeks in the daily log.
	Weeks int `json:"weeks"`

	// TotalHours is the sum of all daily log hours.
	TotalHours float64 `json:"total_hours"`

	// Events is the number of transcript lines parsed into events.
	Events int `json:"events"`

	// ClockEvents is the number of events matching clock vocabulary.
	ClockEvents int `json:"clock_events"`

	// UnpairedEvents is the number of clock events dropped by greedy pairing.
	UnpairedEvents int `json:"unpaired_events"`
}

// Metadata provides context about the report run.
type Metadata struct {
	// Sources lists the transcript files that were processed.
	Sources []string `json:"sources,omitempty"`

	// WeekPolicy is the last-week policy used (complete or calendar).
	WeekPolicy string `json:"week_policy"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// Duration is how long the build took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from a build result.
func NewReport(result *timesheet.Result, policy timesheet.WeekPolicy) *Report {
	report := &Report{
		DailyLog:      result.DailyLog,
		WeeklySummary: result.WeeklySummary,
		Timesheet:     result.Timesheet,
		Metadata: Metadata{
			Sources:     result.Stats.Sources,
			WeekPolicy:  string(policy),
			GeneratedAt: result.Stats.EndTime,
			Duration:    result.Stats.EndTime.Sub(result.Stats.StartTime),
		},
		Summary: Summary{
			Intervals:      len(result.DailyLog),
			Events:         result.Stats.Events,
			ClockEvents:    result.Stats.ClockEvents,
			UnpairedEvents: result.Stats.UnpairedEvents,
		},
	}

	people := make(map[string]bool)
	weeks := make(map[string]bool)
	for _, iv := range result.DailyLog {
		people[iv.Name] = true
		weeks[iv.Week] = true
		report.Summary.TotalHours += iv.Hours
	}
	report.Summary.People = len(people)
	report.Summary.Weeks = len(weeks)

	if len(result.Timesheet) > 0 {
		report.TimesheetTitle = fmt.Sprintf("%s - %s %d WORKDAY TIMESHEET",
			result.TimesheetStart.Format("Jan 02"),
			result.TimesheetEnd.Format("Jan 02"),
			result.TimesheetEnd.Year())
	}

	return report
}

// HasTimesheet returns true if a last-week timesheet window qualified.
func (r *Report) HasTimesheet() bool {
	return len(r.Timesheet) > 0
}
