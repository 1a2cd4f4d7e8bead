package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn reports a required header absent from a table.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyTable reports a table with no header or no rows where rows are needed.
	ErrEmptyTable = errors.New("empty table")
)

// MissingInputError reports an input file that is absent or unreadable.
// It is the one failure the run driver recovers from.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string { return e.Err.Error() }

func (e *MissingInputError) Unwrap() error { return e.Err }

// MalformedInputError reports table content that cannot be parsed.
// Line is 1-based and zero when the failure is not tied to a line.
type MalformedInputError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input " + e.Path
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	return msg + ": " + e.Err.Error()
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
