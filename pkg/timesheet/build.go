package timesheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"punchlog/pkg/chat"
)

// WeekPolicy selects how the last-week timesheet window is chosen.
type WeekPolicy string

const (
	// WeekPolicyComplete picks the most recent ISO week in which work
	// intervals exist on all seven weekdays. The report is empty when no
	// week qualifies.
	WeekPolicyComplete WeekPolicy = "complete"

	// WeekPolicyCalendar picks the calendar week immediately preceding the
	// current system week, regardless of data completeness.
	WeekPolicyCalendar WeekPolicy = "calendar"
)

// Valid reports whether p names a known policy.
func (p WeekPolicy) Valid() bool {
	return p == WeekPolicyComplete || p == WeekPolicyCalendar
}

var (
	// ErrNoEvents indicates no transcript lines parsed into events at all.
	// This usually means the wrong kind of file was supplied, not noise.
	ErrNoEvents = errors.New("no messages could be extracted from transcript")

	// ErrNoIntervals indicates events parsed fine but no clock-in/out pairs
	// were found. Parsing worked; the domain content did not.
	ErrNoIntervals = errors.New("no clock in/out pairs found")
)

// Builder turns a transcript event stream into the three report tables.
// One transcript is fully processed in one pass with no shared state across
// invocations, so a Builder may be reused sequentially.
type Builder struct {
	policy WeekPolicy
	now    func() time.Time
}

// Option configures builder behavior.
type Option func(*Builder)

// WithWeekPolicy selects the last-week timesheet policy.
func WithWeekPolicy(p WeekPolicy) Option {
	return func(b *Builder) {
		if p.Valid() {
			b.policy = p
		}
	}
}

// WithClock overrides the time source used by the calendar week policy.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBuilder creates a Builder. The default week policy is WeekPolicyComplete.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		policy: WeekPolicyComplete,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Policy returns the configured week policy.
func (b *Builder) Policy() WeekPolicy {
	return b.policy
}

// groupKey identifies a per-person per-day pairing group.
type groupKey struct {
	name string
	date time.Time
}

// Build drains the source and produces the daily log, weekly summary, and
// last-week timesheet.
//
// Returns ErrNoEvents when nothing parses and ErrNoIntervals when events
// exist but nothing pairs; both are surfaced conditions, not processing
// failures. Legitimately empty report windows are empty slices, not errors.
func (b *Builder) Build(ctx context.Context, source chat.EventSource) (*Result, error) {
	res := &Result{
		Stats: Stats{StartTime: b.now()},
	}

	events, err := b.drain(ctx, source, &res.Stats)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	res.Stats.Events = len(events)

	// Keep only clock vocabulary events, then restrict to the most recent
	// distinct ISO weeks. Both decisions are per raw event, before pairing.
	clocked := make([]chat.Event, 0, len(events))
	for _, ev := range events {
		if IsClockEvent(ev.Message) {
			clocked = append(clocked, ev)
		}
	}
	res.Stats.ClockEvents = len(clocked)

	windowed := windowEvents(clocked)
	res.Stats.WindowedEvents = len(windowed)

	res.DailyLog = b.pairAll(windowed)
	res.Stats.UnpairedEvents = len(windowed) - 2*len(res.DailyLog)

	if len(res.DailyLog) == 0 {
		return nil, ErrNoIntervals
	}

	res.WeeklySummary = summarize(res.DailyLog)
	res.Timesheet, res.TimesheetStart, res.TimesheetEnd = b.buildTimesheet(res.DailyLog)

	res.Stats.EndTime = b.now()
	return res, nil
}

// drain reads the source to EOF, tracking contributing files.
func (b *Builder) drain(ctx context.Context, source chat.EventSource, stats *Stats) ([]chat.Event, error) {
	var events []chat.Event
	seenSources := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		ev, err := source.Next(ctx)
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading transcript: %w", err)
		}

		if ev.Source != "" && !seenSources[ev.Source] {
			seenSources[ev.Source] = true
			stats.Sources = append(stats.Sources, ev.Source)
		}

		events = append(events, *ev)
	}
}

// pairAll partitions events into (person, day) groups and runs the greedy
// scan independently per group. Groups are visited by name then date so the
// daily log comes out in deterministic order.
func (b *Builder) pairAll(events []chat.Event) []Interval {
	groups := make(map[groupKey][]chat.Event)
	for _, ev := range events {
		key := groupKey{name: ev.Name, date: dateOf(ev.Timestamp)}
		groups[key] = append(groups[key], ev)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].date.Before(keys[j].date)
	})

	var log []Interval
	for _, k := range keys {
		group := groups[k]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
		log = append(log, pairGroup(group)...)
	}
	return log
}
