package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetDailyLog      = "Daily Work Log"
	SheetWeeklySummary = "Weekly Summary"
	SheetTimesheet     = "Timesheet"
)

// ExportXLSX writes the three report tables as one workbook with a sheet per
// table. The timesheet sheet is written even when empty so the workbook shape
// is stable for downstream tooling.
func ExportXLSX(report *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, SheetDailyLog, dailyLogRecords(report)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetWeeklySummary, weeklySummaryRecords(report)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetTimesheet, timesheetRecords(report)); err != nil {
		return err
	}

	// Drop the default sheet and land on the daily log.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(SheetDailyLog)
	if err != nil {
		return fmt.Errorf("locating %s sheet: %w", SheetDailyLog, err)
	}
	f.SetActiveSheet(idx)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, records [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating %s sheet: %w", name, err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+1, err)
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", name, i+1, err)
		}
	}

	return nil
}
