package timesheet

import (
	"fmt"
	"time"
)

// WeekRange returns the Monday and Sunday of the week containing t.
// Both are midnight in t's location.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	monday = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// WeekLabel formats the Monday-Sunday span containing t, e.g.
// "Jan 06 - Jan 12 2025". The year is taken from the Sunday so labels stay
// stable across year boundaries. The label is reproducible bit-for-bit from
// any date in the week and is the grouping key for weekly aggregation.
func WeekLabel(t time.Time) string {
	monday, sunday := WeekRange(t)
	return fmt.Sprintf("%s - %s %d", monday.Format("Jan 02"), sunday.Format("Jan 02"), sunday.Year())
}

// weekKey identifies an ISO-8601 (year, week) bucket. A week belongs to the
// year containing its Thursday, which matters near year-end.
type weekKey struct {
	year int
	week int
}

func isoKey(t time.Time) weekKey {
	y, w := t.ISOWeek()
	return weekKey{year: y, week: w}
}

// before reports whether k is an earlier ISO week than other.
func (k weekKey) before(other weekKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.week < other.week
}
