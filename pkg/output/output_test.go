package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"punchlog/pkg/timesheet"
)

// testResult builds a fixture with one person, one complete timesheet week
// entry, and one row outside it.
func testResult() *timesheet.Result {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	log := []timesheet.Interval{
		{
			Name:     "Alice",
			Date:     monday,
			Day:      "Monday",
			Week:     "Jan 06 - Jan 12 2025",
			ISOYear:  2025,
			ISOWeek:  2,
			ClockIn:  monday.Add(9 * time.Hour),
			ClockOut: monday.Add(17 * time.Hour),
			Hours:    8,
		},
		{
			Name:     "Alice",
			Date:     tuesday,
			Day:      "Tuesday",
			Week:     "Jan 06 - Jan 12 2025",
			ISOYear:  2025,
			ISOWeek:  2,
			ClockIn:  tuesday.Add(9 * time.Hour),
			ClockOut: tuesday.Add(16*time.Hour + 45*time.Minute),
			Hours:    7.75,
		},
	}

	total := 15.75
	rows := []timesheet.TimesheetRow{
		{
			Name: "Alice", Date: monday, Day: "Monday", Week: "Jan 06 - Jan 12 2025",
			ClockIn: log[0].ClockIn, ClockOut: log[0].ClockOut, Hours: 8, TotalHours: &total,
		},
		{
			Name: "Alice", Date: tuesday, Day: "Tuesday", Week: "Jan 06 - Jan 12 2025",
			ClockIn: log[1].ClockIn, ClockOut: log[1].ClockOut, Hours: 7.75,
		},
	}

	now := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	return &timesheet.Result{
		DailyLog: log,
		WeeklySummary: []timesheet.WeeklyTotal{
			{Name: "Alice", Week: "Jan 06 - Jan 12 2025", ISOYear: 2025, ISOWeek: 2, TotalHours: 15.75},
		},
		Timesheet:      rows,
		TimesheetStart: monday,
		TimesheetEnd:   monday.AddDate(0, 0, 6),
		Stats: timesheet.Stats{
			Sources:     []string{"chat.txt"},
			Events:      6,
			ClockEvents: 4,
			StartTime:   now,
			EndTime:     now.Add(25 * time.Millisecond),
		},
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)

	if report.Summary.People != 1 {
		t.Errorf("people = %d, want 1", report.Summary.People)
	}
	if report.Summary.Intervals != 2 {
		t.Errorf("intervals = %d, want 2", report.Summary.Intervals)
	}
	if report.Summary.Weeks != 1 {
		t.Errorf("weeks = %d, want 1", report.Summary.Weeks)
	}
	if report.Summary.TotalHours != 15.75 {
		t.Errorf("total hours = %v, want 15.75", report.Summary.TotalHours)
	}
	if want := "Jan 06 - Jan 12 2025 WORKDAY TIMESHEET"; report.TimesheetTitle != want {
		t.Errorf("title = %q, want %q", report.TimesheetTitle, want)
	}
	if report.Metadata.WeekPolicy != "complete" {
		t.Errorf("policy = %q", report.Metadata.WeekPolicy)
	}
	if report.Metadata.Duration != 25*time.Millisecond {
		t.Errorf("duration = %v", report.Metadata.Duration)
	}
	if !report.HasTimesheet() {
		t.Error("HasTimesheet() = false")
	}
}

func TestNewReport_NoTimesheet(t *testing.T) {
	res := testResult()
	res.Timesheet = nil
	res.TimesheetStart = time.Time{}
	res.TimesheetEnd = time.Time{}

	report := NewReport(res, timesheet.WeekPolicyComplete)
	if report.TimesheetTitle != "" {
		t.Errorf("title = %q, want empty", report.TimesheetTitle)
	}
	if report.HasTimesheet() {
		t.Error("HasTimesheet() = true for empty timesheet")
	}
}

func TestTextFormatter(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Daily Work Log",
		"Weekly Total Hours",
		"Jan 06 - Jan 12 2025 WORKDAY TIMESHEET",
		"Jan 06, 2025",
		"09:00 AM",
		"04:45 PM",
		"Summary: 1 people, 2 intervals, 1 weeks, 15.75 total hours",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	if strings.Contains(out, "Events parsed") {
		t.Error("verbose stats shown without -v")
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Verbose: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Events parsed: 6 (4 clock events, 0 unpaired)",
		"Week policy: complete",
		"Duration:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q", want)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Quiet: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	want := "punchlog: 1 people, 2 intervals, 1 weeks, 15.75 hours\n"
	if buf.String() != want {
		t.Errorf("quiet output = %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_NoTimesheet(t *testing.T) {
	res := testResult()
	res.Timesheet = nil
	report := NewReport(res, timesheet.WeekPolicyComplete)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(buf.String(), "No qualifying week") {
		t.Error("missing empty-timesheet notice")
	}
}

func TestJSONFormatter(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)

	var buf bytes.Buffer
	f := NewJSONFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Summary.TotalHours != 15.75 {
		t.Errorf("total hours = %v", decoded.Summary.TotalHours)
	}
	if len(decoded.DailyLog) != 2 {
		t.Errorf("daily log rows = %d, want 2", len(decoded.DailyLog))
	}
	if decoded.Timesheet[0].TotalHours == nil || *decoded.Timesheet[0].TotalHours != 15.75 {
		t.Error("first timesheet row lost its total")
	}
	if decoded.Timesheet[1].TotalHours != nil {
		t.Error("second timesheet row gained a total")
	}
}

func TestJSONFormatter_Quiet(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)

	var buf bytes.Buffer
	f := NewJSONFormatter(FormatOptions{Quiet: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var summary Summary
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if summary.Intervals != 2 {
		t.Errorf("intervals = %d, want 2", summary.Intervals)
	}
	// Quiet output must not include the tables.
	if strings.Contains(buf.String(), "daily_log") {
		t.Error("quiet JSON includes full report")
	}
}

func TestFormatterNames(t *testing.T) {
	if got := NewTextFormatter(FormatOptions{}).Name(); got != "text" {
		t.Errorf("text name = %q", got)
	}
	if got := NewJSONFormatter(FormatOptions{}).Name(); got != "json" {
		t.Errorf("json name = %q", got)
	}
}
