package analyzer

import (
	"fmt"
	"io"

	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
	"github.com/olegiv/weblog-analyzer-go/internal/logentry"
)

// Compile-time interface check
var _ Source = (*fakeSource)(nil)

// fakeSource is an in-memory Source over raw lines.
type fakeSource struct {
	lines  []string
	pos    int
	resets int
	closed bool
}

func newFakeSource(lines ...string) *fakeSource {
	return &fakeSource{lines: lines}
}

func (f *fakeSource) HasNext() bool {
	return f.pos < len(f.lines)
}

func (f *fakeSource) Next() (logentry.Entry, error) {
	if !f.HasNext() {
		return logentry.Entry{}, &internalerrors.EndOfStreamError{}
	}
	line := f.lines[f.pos]
	f.pos++
	return logentry.Parse(line)
}

func (f *fakeSource) Reset() error {
	f.pos = 0
	f.resets++
	return nil
}

func (f *fakeSource) PrintData(w io.Writer) error {
	for _, l := range f.lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// linesForHours returns one log line per access, counts[h] lines at hour h.
func linesForHours(counts ...int) []string {
	var lines []string
	for h, n := range counts {
		for i := 0; i < n; i++ {
			lines = append(lines, fmt.Sprintf("01:01:%02d:00:100", h))
		}
	}
	return lines
}

// linesForMonths returns counts[m-1] lines in month m.
func linesForMonths(counts ...int) []string {
	var lines []string
	for m, n := range counts {
		for i := 0; i < n; i++ {
			lines = append(lines, fmt.Sprintf("%02d:01:00:00:100", m+1))
		}
	}
	return lines
}
