package logfile

import (
	"bufio"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
	"github.com/olegiv/weblog-analyzer-go/internal/logentry"
)

const maxGeneratedBytes = 10000

// Creator produces random, chronologically sorted log entries.
type Creator struct {
	rng *rand.Rand
}

// NewCreator returns a Creator. The same seed always yields the same entries.
func NewCreator(seed int64) *Creator {
	return &Creator{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// CreateEntries returns n random entries sorted by month, day, hour and minute.
func (c *Creator) CreateEntries(n int) ([]logentry.Entry, error) {
	if err := internalerrors.CheckRange("count", n, 0, math.MaxInt); err != nil {
		return nil, err
	}

	entries := make([]logentry.Entry, 0, n)
	for i := 0; i < n; i++ {
		e, err := logentry.New(
			logentry.MinMonth+c.rng.IntN(logentry.MaxMonth),
			logentry.MinDay+c.rng.IntN(logentry.MaxDay),
			c.rng.IntN(logentry.MaxHour+1),
			c.rng.IntN(60),
			c.rng.Int64N(maxGeneratedBytes),
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b logentry.Entry) int { return a.Compare(b) })
	return entries, nil
}

// WriteFile writes n random entries to path, one per line, creating parent
// directories as needed.
func (c *Creator) WriteFile(path string, n int) (err error) {
	entries, err := c.CreateEntries(n)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return fmt.Errorf("failed to write log entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush log file: %w", err)
	}
	return nil
}
