package table

import (
	"errors"
	"fmt"
	"strings"
)

// Failure taxonomy for loading and column access.
var (
	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = errors.New("table: file not found")

	// ErrMalformedInput indicates a missing or duplicated header, or a row
	// whose field count differs from the header.
	ErrMalformedInput = errors.New("table: malformed input")

	// ErrMissingColumn indicates a referenced column is absent from the header.
	ErrMissingColumn = errors.New("table: missing column")

	// ErrNonNumericData indicates a column value cannot be read as a finite number.
	ErrNonNumericData = errors.New("table: non-numeric data")
)

// Error wraps a sentinel with the location it was raised at. Line is the
// 1-based line in the source file and Row the 1-based data row; zero means
// unknown.
type Error struct {
	Source  string
	Line    int
	Row     int
	Column  string
	Detail  string
	Wrapped error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Wrapped.Error())
	if e.Source != "" {
		fmt.Fprintf(&sb, ": %s", e.Source)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
	}
	if e.Column != "" {
		fmt.Fprintf(&sb, ": column %q", e.Column)
		if e.Row > 0 && e.Line == 0 {
			fmt.Fprintf(&sb, " row %d", e.Row)
		}
	}
	if e.Detail != "" {
		fmt.Fprintf(&sb, ": %s", e.Detail)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
