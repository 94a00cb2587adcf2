package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// EventSource provides an iterator over parsed transcript events.
// Implementations must be safe for sequential access (not concurrent).
type EventSource interface {
	// Next returns the next parsed event.
	// Returns io.EOF when no more events are available.
	// Lines that cannot be parsed are skipped.
	Next(ctx context.Context) (*Event, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileSource implements EventSource for reading from exported transcript files.
type FileSource struct {
	files []string

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
}

// NewFileSource creates an EventSource that reads from the given files in order.
func NewFileSource(files []string) *FileSource {
	return &FileSource{
		files:     files,
		fileIndex: -1,
	}
}

// Next returns the next parsed event.
// Skips lines that don't match the transcript line shape.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Event, error) {
	for {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// Ensure we have a file open
		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		// Try to read the next line
		if s.currentScanner.Scan() {
			s.currentLine++
			line := s.currentScanner.Text()

			ev := ParseLine(line)
			if ev == nil {
				// Skip unparseable lines
				continue
			}

			ev.Source = s.currentSource
			ev.LineNum = s.currentLine
			return ev, nil
		}

		// Check for scanner error
		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
		s.currentScanner = nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening transcript %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = bufio.NewScanner(f)
	s.currentScanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	s.currentSource = path
	s.currentLine = 0

	return nil
}

func (s *FileSource) closeCurrentFile() error {
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		s.currentScanner = nil
		return err
	}
	return nil
}

// ReaderSource implements EventSource over an in-memory transcript blob.
type ReaderSource struct {
	scanner *bufio.Scanner
	source  string
	lineNum int
}

// NewReaderSource creates an EventSource over r. The source label is attached
// to every event for reporting.
func NewReaderSource(r io.Reader, source string) *ReaderSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &ReaderSource{scanner: sc, source: source}
}

// NewStringSource creates an EventSource over a transcript string.
func NewStringSource(text, source string) *ReaderSource {
	return NewReaderSource(strings.NewReader(text), source)
}

// Next returns the next parsed event, skipping unparseable lines.
func (s *ReaderSource) Next(ctx context.Context) (*Event, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", s.source, err)
			}
			return nil, io.EOF
		}
		s.lineNum++

		ev := ParseLine(s.scanner.Text())
		if ev == nil {
			continue
		}

		ev.Source = s.source
		ev.LineNum = s.lineNum
		return ev, nil
	}
}

// Close is a no-op for reader-backed sources.
func (s *ReaderSource) Close() error {
	return nil
}
