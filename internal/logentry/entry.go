// Package logentry parses single web-server access log lines.
//
// A line has five colon-separated non-negative integer fields:
//
//	MM:DD:HH:MM:BYTES
//
// month, day, hour, minute and bytes transferred.
package logentry

import (
	"fmt"
	"strconv"
	"strings"

	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
)

// Field layout and valid ranges.
const (
	fieldCount = 5

	MinMonth = 1
	MaxMonth = 12
	MinDay   = 1
	MaxDay   = 28
	MinHour  = 0
	MaxHour  = 23

	maxMinute = 59
)

// Entry is one parsed access record. Values are immutable once parsed.
type Entry struct {
	month  int
	day    int
	hour   int
	minute int
	bytes  int64
}

// Parse turns one raw line into an Entry.
func Parse(line string) (Entry, error) {
	text := strings.TrimSpace(line)
	fields := strings.Split(text, ":")
	if len(fields) != fieldCount {
		return Entry{}, malformed(line, fmt.Sprintf("expected %d colon-separated fields, got %d", fieldCount, len(fields)))
	}

	var values [fieldCount - 1]int
	for i := range values {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil || v < 0 {
			return Entry{}, malformed(line, fmt.Sprintf("field %d is not a non-negative integer: %q", i+1, fields[i]))
		}
		values[i] = v
	}

	bytes, err := strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil || bytes < 0 {
		return Entry{}, malformed(line, fmt.Sprintf("field 5 is not a non-negative integer: %q", fields[4]))
	}

	e := Entry{month: values[0], day: values[1], hour: values[2], minute: values[3], bytes: bytes}
	if err := e.validate(line); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(line string) Entry {
	e, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return e
}

// New builds an Entry from its parts, applying the same range checks as Parse.
func New(month, day, hour, minute int, bytes int64) (Entry, error) {
	e := Entry{month: month, day: day, hour: hour, minute: minute, bytes: bytes}
	if err := e.validate(e.String()); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (e Entry) validate(line string) error {
	switch {
	case e.month < MinMonth || e.month > MaxMonth:
		return malformed(line, fmt.Sprintf("month %d out of range %d-%d", e.month, MinMonth, MaxMonth))
	case e.day < MinDay || e.day > MaxDay:
		return malformed(line, fmt.Sprintf("day %d out of range %d-%d", e.day, MinDay, MaxDay))
	case e.hour < MinHour || e.hour > MaxHour:
		return malformed(line, fmt.Sprintf("hour %d out of range %d-%d", e.hour, MinHour, MaxHour))
	case e.minute < 0 || e.minute > maxMinute:
		return malformed(line, fmt.Sprintf("minute %d out of range 0-%d", e.minute, maxMinute))
	case e.bytes < 0:
		return malformed(line, "negative byte count")
	}
	return nil
}

func malformed(line, reason string) error {
	return &internalerrors.MalformedLineError{Text: line, Reason: reason}
}

// Month returns the month, 1-12.
func (e Entry) Month() int { return e.month }

// Day returns the day of month, 1-28.
func (e Entry) Day() int { return e.day }

// Hour returns the hour of day, 0-23.
func (e Entry) Hour() int { return e.hour }

// Minute returns the minute, 0-59.
func (e Entry) Minute() int { return e.minute }

// Bytes returns the number of bytes transferred.
func (e Entry) Bytes() int64 { return e.bytes }

// Compare orders entries chronologically by month, day, hour then minute.
// It returns -1, 0 or +1.
func (e Entry) Compare(other Entry) int {
	pairs := [][2]int{
		{e.month, other.month},
		{e.day, other.day},
		{e.hour, other.hour},
		{e.minute, other.minute},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// String renders the entry in log line format.
func (e Entry) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d:%d", e.month, e.day, e.hour, e.minute, e.bytes)
}
