package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSV export file names follow the original download names users expect.
const (
	DailyLogFileName      = "Daily_Work_Log.csv"
	WeeklySummaryFileName = "Weekly_Total_Hours_Summary.csv"
)

// ExportCSV writes the three report tables as CSV files under dir, which is
// created if missing. The timesheet file is named from its week-range title
// and is only written when a timesheet window qualified.
// Returns the paths written.
func ExportCSV(report *Report, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	var written []string

	path := filepath.Join(dir, DailyLogFileName)
	if err := writeCSV(path, dailyLogRecords(report)); err != nil {
		return written, err
	}
	written = append(written, path)

	path = filepath.Join(dir, WeeklySummaryFileName)
	if err := writeCSV(path, weeklySummaryRecords(report)); err != nil {
		return written, err
	}
	written = append(written, path)

	if report.HasTimesheet() {
		path = filepath.Join(dir, TimesheetFileName(report))
		if err := writeCSV(path, timesheetRecords(report)); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// TimesheetFileName derives the timesheet CSV file name from the report
// title, e.g. "Jan_06_-_Jan_12_2025_WORKDAY_TIMESHEET.csv".
func TimesheetFileName(report *Report) string {
	return strings.ReplaceAll(report.TimesheetTitle, " ", "_") + ".csv"
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path) // #nosec G304 -- user-chosen export directory
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func dailyLogRecords(report *Report) [][]string {
	records := [][]string{
		{"Name", "Date", "Day", "Week", "Clock In", "Clock Out", "Hours Worked"},
	}
	for _, iv := range report.DailyLog {
		records = append(records, []string{
			iv.Name,
			iv.Date.Format(dateFormat),
			iv.Day,
			iv.Week,
			iv.ClockIn.Format(clockFormat),
			iv.ClockOut.Format(clockFormat),
			formatHours(iv.Hours),
		})
	}
	return records
}

func weeklySummaryRecords(report *Report) [][]string {
	records := [][]string{
		{"Name", "Week", "Total Hours"},
	}
	for _, wt := range report.WeeklySummary {
		records = append(records, []string{wt.Name, wt.Week, formatHours(wt.TotalHours)})
	}
	return records
}

func timesheetRecords(report *Report) [][]string {
	records := [][]string{
		{"Name", "Date", "Day", "Week", "Clock In", "Clock Out", "Hours Worked", "Total Hours This Week"},
	}
	for _, row := range report.Timesheet {
		total := ""
		if row.TotalHours != nil {
			total = formatHours(*row.TotalHours)
		}
		records = append(records, []string{
			row.Name,
			row.Date.Format(dateFormat),
			row.Day,
			row.Week,
			row.ClockIn.Format(clockFormat),
			row.ClockOut.Format(clockFormat),
			formatHours(row.Hours),
			total,
		})
	}
	return records
}

// formatHours renders hours without a fixed decimal width, so 8.5 stays
// "8.5" and 7.75 stays "7.75".
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
