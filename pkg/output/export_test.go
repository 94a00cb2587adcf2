package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"punchlog/pkg/timesheet"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return records
}

func TestExportCSV(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)
	dir := t.TempDir()

	written, err := ExportCSV(report, dir)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("wrote %d files, want 3: %v", len(written), written)
	}

	daily := readCSV(t, filepath.Join(dir, DailyLogFileName))
	if len(daily) != 3 {
		t.Fatalf("daily log has %d records, want header + 2", len(daily))
	}
	wantHeader := []string{"Name", "Date", "Day", "Week", "Clock In", "Clock Out", "Hours Worked"}
	for i, col := range wantHeader {
		if daily[0][i] != col {
			t.Errorf("daily header[%d] = %q, want %q", i, daily[0][i], col)
		}
	}
	if daily[1][1] != "Jan 06, 2025" || daily[1][4] != "09:00 AM" {
		t.Errorf("daily row = %v", daily[1])
	}
	if daily[1][6] != "8" || daily[2][6] != "7.75" {
		t.Errorf("hours columns = %q and %q", daily[1][6], daily[2][6])
	}

	weekly := readCSV(t, filepath.Join(dir, WeeklySummaryFileName))
	if len(weekly) != 2 {
		t.Fatalf("weekly summary has %d records", len(weekly))
	}
	if weekly[1][0] != "Alice" || weekly[1][2] != "15.75" {
		t.Errorf("weekly row = %v", weekly[1])
	}

	sheet := readCSV(t, filepath.Join(dir, TimesheetFileName(report)))
	if len(sheet) != 3 {
		t.Fatalf("timesheet has %d records", len(sheet))
	}
	if sheet[1][7] != "15.75" {
		t.Errorf("first row total = %q, want 15.75", sheet[1][7])
	}
	if sheet[2][7] != "" {
		t.Errorf("second row total = %q, want empty", sheet[2][7])
	}
}

func TestExportCSV_NoTimesheet(t *testing.T) {
	res := testResult()
	res.Timesheet = nil
	report := NewReport(res, timesheet.WeekPolicyComplete)
	dir := t.TempDir()

	written, err := ExportCSV(report, dir)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2: %v", len(written), written)
	}
}

func TestTimesheetFileName(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)
	want := "Jan_06_-_Jan_12_2025_WORKDAY_TIMESHEET.csv"
	if got := TimesheetFileName(report); got != want {
		t.Errorf("TimesheetFileName = %q, want %q", got, want)
	}
}

func TestExportXLSX(t *testing.T) {
	report := NewReport(testResult(), timesheet.WeekPolicyComplete)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := ExportXLSX(report, path); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{SheetDailyLog: true, SheetWeeklySummary: true, SheetTimesheet: true}
	for _, name := range sheets {
		if !want[name] {
			t.Errorf("unexpected sheet %q", name)
		}
		delete(want, name)
	}
	for name := range want {
		t.Errorf("missing sheet %q", name)
	}

	cell, err := f.GetCellValue(SheetDailyLog, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if cell != "Name" {
		t.Errorf("A1 = %q, want Name", cell)
	}

	cell, err = f.GetCellValue(SheetWeeklySummary, "C2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if cell != "15.75" {
		t.Errorf("weekly C2 = %q, want 15.75", cell)
	}
}
