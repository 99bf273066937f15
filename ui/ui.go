package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text. The
// terminal maps each value to a colour, data consumers (JSON, tests) see
// plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green
	SeverityWarn                     // yellow
)

// StyledText pairs a plain string with a Severity annotation.
//
// The struct marshals as just the plain Text string so JSON consumers
// receive clean output with no ANSI codes.
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string (just Text).
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is the output surface of every ensinfo command.
//
//   - Production code uses TerminalUI (writes to os.Stdout)
//   - Tests use RecordingUI (captures all output)
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// When colours are disabled the plain text is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line.
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does NOT exit or return an error,
	// callers decide what to do next.
	Error(format string, args ...any)

	// Section writes a visual separator centred around a title.
	Section(title string)

	// KeyValue renders an aligned 2-column block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row.
	Table(headers []string, rows [][]string)

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line. JSON documents are written here.
	Writer() io.Writer
}
