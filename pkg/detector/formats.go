package detector

import "regexp"

// TranscriptFormat represents a known chat export flavor for detection.
// Flavors differ in whether the time carries seconds, the year width, and
// which separator character precedes the AM/PM marker.
type TranscriptFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for display
	Layouts    []string       // Go time layouts tried against the capture
	Examples   []string       // Example lines
}

// DefaultFormats returns the built-in export flavors to detect.
// More specific flavors (with seconds) come first.
func DefaultFormats() []*TranscriptFormat {
	withSeconds := []string{"1/2/06 3:04:05 PM", "1/2/2006 3:04:05 PM"}
	noSeconds := []string{"1/2/06 3:04 PM", "1/2/2006 3:04 PM"}

	formats := []*TranscriptFormat{
		{
			Name:       "bracketed, seconds, narrow no-break space",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}:\d{2})\x{202F}([APap][Mm])\]`,
			Layouts:    withSeconds,
			Examples:   []string{"[01/06/25, 9:00:00 AM] Alice: in"},
		},
		{
			Name:       "bracketed, seconds, no-break space",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}:\d{2})\x{00A0}([APap][Mm])\]`,
			Layouts:    withSeconds,
			Examples:   []string{"[01/06/25, 9:00:00 AM] Alice: in"},
		},
		{
			Name:       "bracketed, seconds, plain space",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}:\d{2}) ([APap][Mm])\]`,
			Layouts:    withSeconds,
			Examples:   []string{"[01/06/25, 9:00:00 AM] Alice: in"},
		},
		{
			Name:       "bracketed, no seconds, narrow no-break space",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2})\x{202F}([APap][Mm])\]`,
			Layouts:    noSeconds,
			Examples:   []string{"[01/06/25, 9:00 AM] Alice: in"},
		},
		{
			Name:       "bracketed, no seconds, no-break space",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2})\x{00A0}([APap][Mm])\]`,
			Layouts:    noSeconds,
			Examples:   []string{"[01/06/25, 9:00 AM] Alice: in"},
		},
		{
			Name:       "bracketed, no seconds, plain space",
			PatternStr: `^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}) ([APap][Mm])\]`,
			Layouts:    noSeconds,
			Examples:   []string{"[01/06/25, 9:00 AM] Alice: in"},
		},
	}

	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}
	return formats
}
