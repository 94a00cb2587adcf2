// Package chat provides reading and parsing of exported chat transcripts.
package chat

import "time"

// Event is a single timestamped, attributed message extracted from a transcript.
type Event struct {
	// Name is the sender as written in the transcript, whitespace-trimmed.
	Name string `json:"name"`

	// Timestamp is the parsed message timestamp.
	Timestamp time.Time `json:"timestamp"`

	// Message is the message text, lowercased and whitespace-trimmed.
	Message string `json:"message"`

	// Source is the file path this event came from, if read from a file.
	Source string `json:"source,omitempty"`

	// LineNum is the 1-based line number in the source.
	LineNum int `json:"line_num,omitempty"`
}
