package timesheet

import (
	"sort"
	"time"
)

// summarize groups intervals by (name, week) and sums the rounded daily
// hours. Output is ordered by name, then chronological week.
func summarize(log []Interval) []WeeklyTotal {
	type totalKey struct {
		name string
		week weekKey
	}

	totals := make(map[totalKey]*WeeklyTotal)
	for _, iv := range log {
		key := totalKey{name: iv.Name, week: weekKey{year: iv.ISOYear, week: iv.ISOWeek}}
		if t, ok := totals[key]; ok {
			t.TotalHours += iv.Hours
			continue
		}
		totals[key] = &WeeklyTotal{
			Name:       iv.Name,
			Week:       iv.Week,
			ISOYear:    iv.ISOYear,
			ISOWeek:    iv.ISOWeek,
			TotalHours: iv.Hours,
		}
	}

	out := make([]WeeklyTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		a := weekKey{year: out[i].ISOYear, week: out[i].ISOWeek}
		b := weekKey{year: out[j].ISOYear, week: out[j].ISOWeek}
		return a.before(b)
	})
	return out
}

// buildTimesheet produces the last-week timesheet view for the configured
// policy. Rows keep the daily log's ordering (name, date, clock-in); each
// person's summed total is attached to their first row only.
func (b *Builder) buildTimesheet(log []Interval) ([]TimesheetRow, time.Time, time.Time) {
	var target weekKey

	switch b.policy {
	case WeekPolicyCalendar:
		target = isoKey(b.now().AddDate(0, 0, -7))
	default:
		k, ok := latestCompleteWeek(log)
		if !ok {
			return nil, time.Time{}, time.Time{}
		}
		target = k
	}

	var window []Interval
	for _, iv := range log {
		if (weekKey{year: iv.ISOYear, week: iv.ISOWeek}) == target {
			window = append(window, iv)
		}
	}
	if len(window) == 0 {
		return nil, time.Time{}, time.Time{}
	}

	totals := make(map[string]float64)
	for _, iv := range window {
		totals[iv.Name] += iv.Hours
	}

	rows := make([]TimesheetRow, 0, len(window))
	seen := make(map[string]bool)
	for _, iv := range window {
		row := TimesheetRow{
			Name:     iv.Name,
			Date:     iv.Date,
			Day:      iv.Day,
			Week:     iv.Week,
			ClockIn:  iv.ClockIn,
			ClockOut: iv.ClockOut,
			Hours:    iv.Hours,
		}
		if !seen[iv.Name] {
			seen[iv.Name] = true
			total := totals[iv.Name]
			row.TotalHours = &total
		}
		rows = append(rows, row)
	}

	monday, sunday := WeekRange(window[0].Date)
	return rows, monday, sunday
}

// latestCompleteWeek finds the most recent ISO week in which intervals exist
// on all seven weekdays, counting coverage across everyone.
func latestCompleteWeek(log []Interval) (weekKey, bool) {
	coverage := make(map[weekKey]map[time.Weekday]bool)
	for _, iv := range log {
		key := weekKey{year: iv.ISOYear, week: iv.ISOWeek}
		if coverage[key] == nil {
			coverage[key] = make(map[time.Weekday]bool)
		}
		coverage[key][iv.Date.Weekday()] = true
	}

	var best weekKey
	found := false
	for key, days := range coverage {
		if len(days) < 7 {
			continue
		}
		if !found || best.before(key) {
			best = key
			found = true
		}
	}
	return best, found
}
