// Package errors defines the error taxonomy shared by the log reader and analyzer.
package errors

import (
	"fmt"
)

// sentinel is a comparable error value usable with errors.Is.
type sentinel string

func (s sentinel) Error() string { return string(s) }

// Sentinel errors. Every typed error below unwraps to one of these.
const (
	ErrSourceUnavailable = sentinel("log source unavailable")
	ErrMalformedLine     = sentinel("malformed log line")
	ErrEndOfStream       = sentinel("end of log stream")
	ErrInvalidArgument   = sentinel("invalid argument")
)

// SourceUnavailableError reports that the log source could not be opened.
type SourceUnavailableError struct {
	Path   string
	Reason string
	Err    error // underlying cause, may be nil
}

func (e *SourceUnavailableError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrSourceUnavailable, e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause so that errors.Is(err, fs.ErrNotExist) keeps working.
func (e *SourceUnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSourceUnavailable}
	}
	return []error{ErrSourceUnavailable, e.Err}
}

// MalformedLineError reports a line that does not match MM:DD:HH:MM:BYTES.
// Line is the 1-based line number when known, 0 otherwise.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d %q: %s", ErrMalformedLine, e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedLine, e.Text, e.Reason)
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}

// EndOfStreamError is returned when Next is called on an exhausted reader.
type EndOfStreamError struct{}

func (e *EndOfStreamError) Error() string {
	return string(ErrEndOfStream) + ": no more entries (check HasNext before Next)"
}

func (e *EndOfStreamError) Unwrap() error {
	return ErrEndOfStream
}

// InvalidArgumentError reports a query argument outside [Min, Max].
type InvalidArgumentError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s must be between %d and %d (got: %d)",
		ErrInvalidArgument, e.Name, e.Min, e.Max, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// CheckRange returns an InvalidArgumentError when value is outside [lo, hi].
func CheckRange(name string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &InvalidArgumentError{Name: name, Value: value, Min: lo, Max: hi}
	}
	return nil
}
