package timesheet

import "regexp"

// Clock direction vocabulary. Matching is whole-word only, so "iron" never
// matches "in". "lunch" appears only on the out side: returning from lunch
// re-enters via "back"/"return"/"in", not via "lunch" itself.
var (
	inPattern  = regexp.MustCompile(`\b(in|back|return)\b`)
	outPattern = regexp.MustCompile(`\b(out|lunch)\b`)
)

// IsClockIn reports whether a normalized message contains clock-in vocabulary.
func IsClockIn(message string) bool {
	return inPattern.MatchString(message)
}

// IsClockOut reports whether a normalized message contains clock-out vocabulary.
func IsClockOut(message string) bool {
	return outPattern.MatchString(message)
}

// IsClockEvent reports whether the message matches either vocabulary set.
// Events matching neither set are excluded from pairing entirely.
func IsClockEvent(message string) bool {
	return IsClockIn(message) || IsClockOut(message)
}
