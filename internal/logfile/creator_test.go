package logfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
)

func TestCreateEntries(t *testing.T) {
	entries, err := NewCreator(42).CreateEntries(500)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(entries) != 500 {
		t.Fatalf("Expected 500 entries, got %d", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Compare(entries[i]) > 0 {
			t.Fatalf("Entries not sorted at %d: %s > %s", i, entries[i-1], entries[i])
		}
	}
	for _, e := range entries {
		if e.Day() < 1 || e.Day() > 28 || e.Month() < 1 || e.Month() > 12 || e.Hour() > 23 {
			t.Fatalf("Entry out of range: %s", e)
		}
	}
}

func TestCreateEntries_Deterministic(t *testing.T) {
	a, _ := NewCreator(7).CreateEntries(20)
	b, _ := NewCreator(7).CreateEntries(20)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical entries for the same seed at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestCreateEntries_NegativeCount(t *testing.T) {
	_, err := NewCreator(1).CreateEntries(-1)
	if !errors.Is(err, internalerrors.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "weblog.txt")

	if err := NewCreator(3).WriteFile(path, 50); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if len(lines) != 50 {
		t.Errorf("Expected 50 lines, got %d", len(lines))
	}

	r := openLog(t, path)
	if got := len(drain(t, r)); got != 50 {
		t.Errorf("Expected generated file to parse into 50 entries, got %d", got)
	}
}
