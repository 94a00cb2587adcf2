package timesheet

import (
	"testing"
	"time"

	"punchlog/pkg/chat"
)

func weekEvent(day time.Time) chat.Event {
	return chat.Event{Name: "alice", Timestamp: day.Add(9 * time.Hour), Message: "in"}
}

func TestWindowEvents_KeepsMostRecentWeeks(t *testing.T) {
	// Six distinct ISO weeks, Mondays from Dec 2 2024 through Jan 6 2025.
	var events []chat.Event
	var mondays []time.Time
	start := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	for w := 0; w < 6; w++ {
		monday := start.AddDate(0, 0, 7*w)
		mondays = append(mondays, monday)
		events = append(events, weekEvent(monday))
	}

	kept := windowEvents(events)
	if len(kept) != WindowWeeks {
		t.Fatalf("kept %d events, want %d", len(kept), WindowWeeks)
	}

	// Oldest two weeks must be gone, newest four survive in input order.
	for i, ev := range kept {
		want := mondays[i+2].Add(9 * time.Hour)
		if !ev.Timestamp.Equal(want) {
			t.Errorf("kept[%d] = %v, want %v", i, ev.Timestamp, want)
		}
	}
}

func TestWindowEvents_UnderLimitPassesThrough(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	var events []chat.Event
	for w := 0; w < WindowWeeks; w++ {
		events = append(events, weekEvent(start.AddDate(0, 0, 7*w)))
	}

	kept := windowEvents(events)
	if len(kept) != len(events) {
		t.Fatalf("kept %d events, want all %d", len(kept), len(events))
	}
}

func TestWindowEvents_DecisionIsPerEvent(t *testing.T) {
	// A dropped week's events disappear even when interleaved with kept ones
	// in the input slice.
	old := weekEvent(time.Date(2024, 11, 4, 0, 0, 0, 0, time.UTC))
	var events []chat.Event
	start := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	for w := 0; w < WindowWeeks; w++ {
		events = append(events, weekEvent(start.AddDate(0, 0, 7*w)))
	}
	events = append(events[:2], append([]chat.Event{old}, events[2:]...)...)

	kept := windowEvents(events)
	for _, ev := range kept {
		if ev.Timestamp.Equal(old.Timestamp) {
			t.Fatal("event from the oldest week survived windowing")
		}
	}
	if len(kept) != WindowWeeks {
		t.Fatalf("kept %d events, want %d", len(kept), WindowWeeks)
	}
}
