// Package analyzer aggregates access log entries into hourly, daily and
// monthly frequency tables and answers statistical queries over them.
package analyzer

import (
	"io"

	"github.com/olegiv/weblog-analyzer-go/internal/logentry"
)

// Source is a restartable, forward-only sequence of log entries.
// Implementations handle opening and parsing the underlying log.
type Source interface {
	// HasNext reports whether at least one more entry remains unconsumed.
	HasNext() bool

	// Next returns the next entry and advances the position.
	// Returns an EndOfStreamError when HasNext is false and a
	// MalformedLineError when the line cannot be parsed.
	Next() (logentry.Entry, error)

	// Reset repositions the sequence at its first entry.
	Reset() error

	// PrintData writes every raw line to w without moving the position.
	PrintData(w io.Writer) error
}
