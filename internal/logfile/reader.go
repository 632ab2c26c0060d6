// Package logfile reads access log files as a restartable sequence of entries
// and generates synthetic log files.
package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/bitfield/script"
	"github.com/olegiv/weblog-analyzer-go/internal/analyzer"
	internalerrors "github.com/olegiv/weblog-analyzer-go/internal/errors"
	"github.com/olegiv/weblog-analyzer-go/internal/logentry"
)

// Compile-time interface check
var _ analyzer.Source = (*Reader)(nil)

var blankLine = regexp.MustCompile(`^\s*$`)

// Reader is a forward-only cursor over the non-blank lines of a log file.
// Implements analyzer.Source interface.
type Reader struct {
	path      string
	maxSizeMB int

	file    *os.File
	scanner *bufio.Scanner
	lineNo  int

	pending    string
	hasPending bool
	readErr    error
}

// Open validates and opens the log file at path. A maxSizeMB of zero
// disables the size check. Any failure is a SourceUnavailableError.
func Open(path string, maxSizeMB int) (*Reader, error) {
	// Check if file exists
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, unavailable(path, "file not found", err)
		}
		return nil, unavailable(path, "failed to stat file", err)
	}

	if fileInfo.IsDir() {
		return nil, unavailable(path, "path is a directory", nil)
	}

	// Check file permissions
	if fileInfo.Mode().Perm()&0400 == 0 {
		return nil, unavailable(path, "file is not readable", nil)
	}

	// Check file size
	maxBytes := int64(maxSizeMB) * 1024 * 1024
	if maxSizeMB > 0 && fileInfo.Size() > maxBytes {
		return nil, unavailable(path, fmt.Sprintf("file exceeds maximum size of %dMB (size: %.2fMB)",
			maxSizeMB, float64(fileInfo.Size())/1024/1024), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, "failed to open file", err)
	}

	r := &Reader{
		path:      path,
		maxSizeMB: maxSizeMB,
		file:      file,
	}
	r.rewind()
	return r, nil
}

func unavailable(path, reason string, err error) error {
	return &internalerrors.SourceUnavailableError{Path: path, Reason: reason, Err: err}
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// HasNext reports whether another non-blank line remains. A pending read
// error also counts, so that Next can report it.
func (r *Reader) HasNext() bool {
	if r.hasPending || r.readErr != nil {
		return true
	}

	for r.scanner.Scan() {
		r.lineNo++
		line := r.scanner.Text()
		if blankLine.MatchString(line) {
			continue
		}
		r.pending = line
		r.hasPending = true
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.readErr = fmt.Errorf("failed to read log file: %w", err)
		return true
	}
	return false
}

// Next parses and returns the next entry. The line is consumed even when it
// fails to parse.
func (r *Reader) Next() (logentry.Entry, error) {
	if !r.HasNext() {
		return logentry.Entry{}, &internalerrors.EndOfStreamError{}
	}

	if r.readErr != nil {
		err := r.readErr
		r.readErr = nil
		return logentry.Entry{}, err
	}

	line := r.pending
	r.pending = ""
	r.hasPending = false

	entry, err := logentry.Parse(line)
	if err != nil {
		var lineErr *internalerrors.MalformedLineError
		if errors.As(err, &lineErr) {
			lineErr.Line = r.lineNo
		}
		return logentry.Entry{}, err
	}
	return entry, nil
}

// Reset seeks back to the start of the file.
func (r *Reader) Reset() error {
	if r.file == nil {
		return fmt.Errorf("log file is closed: %s", r.path)
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek log file: %w", err)
	}
	r.rewind()
	return nil
}

func (r *Reader) rewind() {
	r.scanner = bufio.NewScanner(r.file)
	r.lineNo = 0
	r.pending = ""
	r.hasPending = false
	r.readErr = nil
}

// PrintData writes every non-blank raw line to w. It reads the file
// independently and does not move the cursor.
func (r *Reader) PrintData(w io.Writer) error {
	if _, err := script.File(r.path).RejectRegexp(blankLine).WithStdout(w).Stdout(); err != nil {
		return fmt.Errorf("failed to print log data: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// GetSourceInfo returns metadata about the log file.
// Keys: size_bytes, size_mb, modified, age_hours.
func (r *Reader) GetSourceInfo() (map[string]interface{}, error) {
	fileInfo, err := os.Stat(r.path)
	if err != nil {
		return nil, err
	}

	info := map[string]interface{}{
		"size_bytes": fileInfo.Size(),
		"size_mb":    float64(fileInfo.Size()) / 1024 / 1024,
		"modified":   fileInfo.ModTime(),
		"age_hours":  time.Since(fileInfo.ModTime()).Hours(),
	}

	return info, nil
}

