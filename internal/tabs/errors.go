package tabs

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the mapping file does not exist.
	ErrFileNotFound = errors.New("tabs: file not found")

	// ErrUnreadable is returned for any other failure to read the mapping.
	ErrUnreadable = errors.New("tabs: unreadable mapping")

	// ErrMalformedLine marks a single line that could not be parsed into a
	// record. It never aborts a read.
	ErrMalformedLine = errors.New("tabs: malformed line")
)

// LineError describes a skipped line.
type LineError struct {
	Line   int
	Fields int
	Err    error
}

func (e *LineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: expected %d fields, saw %d", e.Line, NumFields, e.Fields)
}

func (e *LineError) Is(target error) bool {
	return target == ErrMalformedLine
}

func (e *LineError) Unwrap() error {
	return e.Err
}
