// Package timesheet derives attendance timesheets from chat transcript events.
package timesheet

import "time"

// Interval is one paired clock-in/clock-out span for one person on one day.
// Both ends fall on the same calendar day because pairing only looks within
// a per-day group. Never mutated after creation.
type Interval struct {
	// Name is the person the interval belongs to.
	Name string `json:"name"`

	// Date is midnight of the clock-in day.
	Date time.Time `json:"date"`

	// Day is the full weekday name of the clock-in day.
	Day string `json:"day"`

	// Week is the human-readable Monday-Sunday label, e.g. "Jan 06 - Jan 12 2025".
	Week string `json:"week"`

	// ISOYear and ISOWeek locate the interval in the ISO-8601 week calendar.
	ISOYear int `json:"iso_year"`
	ISOWeek int `json:"iso_week"`

	// ClockIn and ClockOut are the paired event timestamps.
	ClockIn  time.Time `json:"clock_in"`
	ClockOut time.Time `json:"clock_out"`

	// Hours is the worked duration in hours, rounded to 2 decimal places.
	Hours float64 `json:"hours"`
}

// WeeklyTotal is the summed hours for one person in one labelled week.
type WeeklyTotal struct {
	Name       string  `json:"name"`
	Week       string  `json:"week"`
	ISOYear    int     `json:"iso_year"`
	ISOWeek    int     `json:"iso_week"`
	TotalHours float64 `json:"total_hours"`
}

// TimesheetRow is one row in the last-week timesheet view.
//
// TotalHours is non-nil only on the first row for each person, mirroring the
// printed-timesheet convention of showing a running total once per block.
type TimesheetRow struct {
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Day        string    `json:"day"`
	Week       string    `json:"week"`
	ClockIn    time.Time `json:"clock_in"`
	ClockOut   time.Time `json:"clock_out"`
	Hours      float64   `json:"hours"`
	TotalHours *float64  `json:"total_hours,omitempty"`
}

// Stats describes what the builder saw while processing a transcript.
type Stats struct {
	// Sources lists the transcript files that contributed events.
	Sources []string `json:"sources,omitempty"`

	// Events is the number of lines parsed into events.
	Events int `json:"events"`

	// ClockEvents is the number of events matching clock vocabulary.
	ClockEvents int `json:"clock_events"`

	// WindowedEvents is the number of clock events inside the week window.
	WindowedEvents int `json:"windowed_events"`

	// UnpairedEvents is the number of windowed events the greedy scan dropped.
	UnpairedEvents int `json:"unpaired_events"`

	// StartTime and EndTime bracket the build.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Result is the complete output of one transcript build.
type Result struct {
	// DailyLog is every work interval in the window, ordered by name,
	// date, then clock-in.
	DailyLog []Interval `json:"daily_log"`

	// WeeklySummary is one row per (person, week), ordered by name then
	// chronological week.
	WeeklySummary []WeeklyTotal `json:"weekly_summary"`

	// Timesheet is the last-week view. Empty when no week qualifies.
	Timesheet []TimesheetRow `json:"timesheet"`

	// TimesheetStart and TimesheetEnd are the Monday and Sunday of the
	// timesheet window. Zero when Timesheet is empty.
	TimesheetStart time.Time `json:"timesheet_start,omitempty"`
	TimesheetEnd   time.Time `json:"timesheet_end,omitempty"`

	// Stats describes the processed input.
	Stats Stats `json:"stats"`
}
