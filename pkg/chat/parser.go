package chat

import (
	"regexp"
	"strings"
	"time"
)

// linePattern matches the bracketed transcript line shape:
//
//	[M/D/YY, H:MM(:SS) AM] Name: message
//
// The separator before the AM/PM marker varies by export encoding: an
// ordinary space, a no-break space (U+00A0), or a narrow no-break space
// (U+202F). They are visually identical, so the pattern accepts all three.
var linePattern = regexp.MustCompile(
	`^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?[ \x{00A0}\x{202F}]?[APap][Mm])\] (.*?): (.*)`)

// timestampLayouts are tried in order until one parses.
var timestampLayouts = []string{
	"1/2/06 3:04:05 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/06 3:04 PM",
	"1/2/2006 3:04 PM",
}

// ParseLine parses one transcript line into an Event.
//
// Returns nil for lines that don't match the structural shape (continuation
// lines of multi-line messages, system notices) and for lines whose timestamp
// fails every known layout. Both are expected noise in real exports and must
// never abort the batch.
func ParseLine(line string) *Event {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}

	dateStr, timeStr, name, message := m[1], m[2], m[3], m[4]

	ts, ok := parseTimestamp(dateStr + " " + normalizeTime(timeStr))
	if !ok {
		return nil
	}

	return &Event{
		Name:      strings.TrimSpace(name),
		Timestamp: ts,
		Message:   strings.ToLower(strings.TrimSpace(message)),
	}
}

// normalizeTime collapses the exotic AM/PM separators to a single space and
// uppercases the meridiem so one set of layouts covers every export variant.
func normalizeTime(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ToUpper(strings.TrimSpace(s))

	// Some exports omit the separator entirely: "9:00AM".
	if !strings.Contains(s, " ") && (strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM")) {
		s = s[:len(s)-2] + " " + s[len(s)-2:]
	}

	return s
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
