package timesheet

import (
	"sort"

	"punchlog/pkg/chat"
)

// WindowWeeks is the number of most recent distinct ISO weeks kept for
// aggregation. Bounds compute and output size on long transcripts.
// Fixed policy, not configurable.
const WindowWeeks = 4

// windowEvents keeps only events falling in the WindowWeeks most recent
// distinct ISO weeks present in events. The keep/drop decision is made per
// event, by the event's own ISO week, before any pairing happens.
func windowEvents(events []chat.Event) []chat.Event {
	distinct := make(map[weekKey]bool)
	for _, ev := range events {
		distinct[isoKey(ev.Timestamp)] = true
	}

	if len(distinct) <= WindowWeeks {
		return events
	}

	keys := make([]weekKey, 0, len(distinct))
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[j].before(keys[i]) // most recent first
	})

	keep := make(map[weekKey]bool, WindowWeeks)
	for _, k := range keys[:WindowWeeks] {
		keep[k] = true
	}

	kept := make([]chat.Event, 0, len(events))
	for _, ev := range events {
		if keep[isoKey(ev.Timestamp)] {
			kept = append(kept, ev)
		}
	}
	return kept
}
