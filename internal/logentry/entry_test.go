package logentry

import (
	"errors"
	"strings"
	"testing"

	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name                     string
		line                     string
		month, day, hour, minute int
		bytes                    int64
	}{
		{name: "zero padded", line: "03:14:09:26:5358", month: 3, day: 14, hour: 9, minute: 26, bytes: 5358},
		{name: "unpadded", line: "1:1:0:0:0", month: 1, day: 1, hour: 0, minute: 0, bytes: 0},
		{name: "upper bounds", line: "12:28:23:59:99999", month: 12, day: 28, hour: 23, minute: 59, bytes: 99999},
		{name: "surrounding whitespace", line: "  06:02:17:45:120\r", month: 6, day: 2, hour: 17, minute: 45, bytes: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if e.Month() != tt.month || e.Day() != tt.day || e.Hour() != tt.hour || e.Minute() != tt.minute {
				t.Errorf("Got %02d:%02d:%02d:%02d, want %02d:%02d:%02d:%02d",
					e.Month(), e.Day(), e.Hour(), e.Minute(), tt.month, tt.day, tt.hour, tt.minute)
			}
			if e.Bytes() != tt.bytes {
				t.Errorf("Expected bytes %d, got %d", tt.bytes, e.Bytes())
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		errorContains string
	}{
		{name: "empty", line: "", errorContains: "expected 5"},
		{name: "too few fields", line: "03:14:09", errorContains: "got 3"},
		{name: "too many fields", line: "03:14:09:26:5358:1", errorContains: "got 6"},
		{name: "non numeric month", line: "Mar:14:09:26:5358", errorContains: "field 1"},
		{name: "non numeric bytes", line: "03:14:09:26:lots", errorContains: "field 5"},
		{name: "negative hour", line: "03:14:-1:26:5358", errorContains: "field 3"},
		{name: "month zero", line: "00:14:09:26:5358", errorContains: "month 0"},
		{name: "month thirteen", line: "13:14:09:26:5358", errorContains: "month 13"},
		{name: "day twenty nine", line: "02:29:09:26:5358", errorContains: "day 29"},
		{name: "hour twenty four", line: "03:14:24:26:5358", errorContains: "hour 24"},
		{name: "minute sixty", line: "03:14:09:60:5358", errorContains: "minute 60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			if err == nil {
				t.Fatal("Expected an error but got none")
			}
			var lineErr *internalerrors.MalformedLineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("Expected MalformedLineError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("Expected error to contain '%s', got '%s'", tt.errorContains, err.Error())
			}
		})
	}
}

func TestNew(t *testing.T) {
	e, err := New(5, 7, 13, 0, 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := e.String(); got != "05:07:13:00:42" {
		t.Errorf("Expected 05:07:13:00:42, got %s", got)
	}

	if _, err := New(5, 31, 13, 0, 42); !errors.Is(err, internalerrors.ErrMalformedLine) {
		t.Errorf("Expected malformed line error for day 31, got %v", err)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustParse to panic on bad input")
		}
	}()
	MustParse("garbage")
}

func TestStringRoundTrip(t *testing.T) {
	line := "11:03:08:05:777"
	if got := MustParse(line).String(); got != line {
		t.Errorf("Expected %s, got %s", line, got)
	}
}

func TestCompare(t *testing.T) {
	base := MustParse("06:15:12:30:0")

	tests := []struct {
		name  string
		other string
		want  int
	}{
		{name: "equal ignores bytes", other: "06:15:12:30:999", want: 0},
		{name: "earlier month", other: "05:28:23:59:0", want: 1},
		{name: "later day", other: "06:16:00:00:0", want: -1},
		{name: "earlier hour", other: "06:15:11:59:0", want: 1},
		{name: "later minute", other: "06:15:12:31:0", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Compare(MustParse(tt.other)); got != tt.want {
				t.Errorf("Compare(%s) = %d, want %d", tt.other, got, tt.want)
			}
		})
	}
}
