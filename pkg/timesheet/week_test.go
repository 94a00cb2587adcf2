package timesheet

import (
	"testing"
	"time"
)

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "wednesday mid-week",
			date:       time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "monday maps to itself",
			date:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "sunday stays in its week",
			date:       time.Date(2025, 1, 12, 23, 59, 0, 0, time.UTC),
			wantMonday: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "week spanning new year",
			date:       time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.date)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("monday = %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("sunday = %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}

func TestWeekLabel(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "mid-january week",
			date: time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC),
			want: "Jan 06 - Jan 12 2025",
		},
		{
			name: "year taken from sunday across new year",
			date: time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC),
			want: "Dec 30 - Jan 05 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekLabel(tt.date); got != tt.want {
				t.Errorf("WeekLabel(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekLabel_ReproducibleAcrossWeek(t *testing.T) {
	// Every day of a week must produce the same label.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	want := WeekLabel(monday)
	for d := 0; d < 7; d++ {
		if got := WeekLabel(monday.AddDate(0, 0, d)); got != want {
			t.Errorf("day +%d label = %q, want %q", d, got, want)
		}
	}
}

func TestISOKey_YearBoundary(t *testing.T) {
	// 2024-12-30 (Monday) belongs to ISO week 1 of 2025: a week belongs to
	// the year containing its Thursday.
	key := isoKey(time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC))
	if key.year != 2025 || key.week != 1 {
		t.Errorf("isoKey = %+v, want {2025 1}", key)
	}

	// 2027-01-01 (Friday) belongs to ISO week 53 of 2026.
	key = isoKey(time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC))
	if key.year != 2026 || key.week != 53 {
		t.Errorf("isoKey = %+v, want {2026 53}", key)
	}
}

func TestWeekKeyBefore(t *testing.T) {
	tests := []struct {
		a, b weekKey
		want bool
	}{
		{weekKey{2024, 52}, weekKey{2025, 1}, true},
		{weekKey{2025, 1}, weekKey{2024, 52}, false},
		{weekKey{2025, 2}, weekKey{2025, 3}, true},
		{weekKey{2025, 3}, weekKey{2025, 3}, false},
	}

	for _, tt := range tests {
		if got := tt.a.before(tt.b); got != tt.want {
			t.Errorf("%v.before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
