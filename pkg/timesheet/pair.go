package timesheet

import (
	"math"
	"time"

	"punchlog/pkg/chat"
)

// pairGroup runs the greedy two-pointer scan over one person's events for one
// calendar day. Events must already be in chronological order.
//
// If event i is a clock-in and event i+1 is a clock-out, both are consumed
// into one interval; otherwise event i is dropped as unpaired and the scan
// advances by one. The scan is greedy, not optimal: a run of same-type events
// yields one interval per adjacent qualifying pair and silently drops the
// rest ("first valid clock-in/out of the day wins"). An event never
// participates in two intervals.
func pairGroup(events []chat.Event) []Interval {
	var intervals []Interval

	i := 0
	for i < len(events)-1 {
		if IsClockIn(events[i].Message) && IsClockOut(events[i+1].Message) {
			intervals = append(intervals, newInterval(events[i], events[i+1]))
			i += 2
			continue
		}
		i++
	}

	return intervals
}

// newInterval builds a work interval from a clock-in/clock-out event pair.
// The week label and ISO week come from the clock-in date.
func newInterval(in, out chat.Event) Interval {
	isoYear, isoWeek := in.Timestamp.ISOWeek()
	return Interval{
		Name:     in.Name,
		Date:     dateOf(in.Timestamp),
		Day:      in.Timestamp.Weekday().String(),
		Week:     WeekLabel(in.Timestamp),
		ISOYear:  isoYear,
		ISOWeek:  isoWeek,
		ClockIn:  in.Timestamp,
		ClockOut: out.Timestamp,
		Hours:    roundHours(out.Timestamp.Sub(in.Timestamp)),
	}
}

// roundHours converts a duration to hours rounded half away from zero to two
// decimal places. Weekly totals are sums of these rounded daily values, never
// a rounding of the raw sum.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// dateOf truncates a timestamp to midnight of its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
