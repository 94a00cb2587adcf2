package output

import (
	"context"
	"io"
)

// Formatter renders a report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables processing statistics in the output.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}

// Display formats shared by the tabular renderers.
const (
	dateFormat  = "Jan 02, 2006"
	clockFormat = "03:04 PM"
)
