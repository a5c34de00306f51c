// Package logfile provides restartable sources of access-log entries.
//
// A source yields entries one at a time through HasNext and Next, and can be
// rewound with Reset to replay the same entries in the same order. Log files
// hold one access per line in the form
//
//	year month day hour minute [ignored trailing fields...]
//
// Blank lines and lines starting with '#' are skipped. Sources backed by
// files must be closed by the caller.
package logfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rewired-gh/loganalyzer/internal/models"
)

// DefaultPath is the log read when no source is named.
const DefaultPath = "demo.log"

// Source is a restartable, finite sequence of log entries.
type Source interface {
	HasNext() bool
	Next() (models.LogEntry, error)
	Reset() error
	// Err returns the I/O error, if any, that ended the current pass early.
	Err() error
	io.Closer
}

// Reader streams entries from a single seekable log.
type Reader struct {
	name    string
	rs      io.ReadSeeker
	scanner *bufio.Scanner

	line       int
	pending    string
	hasPending bool
	err        error
}

// NewReader creates a Reader over rs. name is used in error messages.
func NewReader(name string, rs io.ReadSeeker) *Reader {
	return &Reader{
		name:    name,
		rs:      rs,
		scanner: bufio.NewScanner(rs),
	}
}

// OpenFile opens the log file at path.
func OpenFile(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewReader(path, f), nil
}

// Open opens a log source by identifier. An empty path means DefaultPath.
// A regular file becomes a Reader; a directory becomes a MultiReader over the
// files whose base name matches the include glob.
func Open(path, include string) (Source, error) {
	if path == "" {
		path = DefaultPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log source: %w", err)
	}
	if info.IsDir() {
		return OpenDir(path, include)
	}
	return OpenFile(path)
}

// Name returns the name the reader was created with.
func (r *Reader) Name() string {
	return r.name
}

// HasNext reports whether another line is available in the current pass.
// It does not parse the line; a malformed line is reported by Next.
func (r *Reader) HasNext() bool {
	if r.hasPending {
		return true
	}
	if r.err != nil {
		return false
	}

	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		r.pending = text
		r.hasPending = true
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("failed to read %s: %w", r.name, err)
	}
	return false
}

// Next returns the next entry and advances the pass.
func (r *Reader) Next() (models.LogEntry, error) {
	if !r.HasNext() {
		if r.err != nil {
			return models.LogEntry{}, r.err
		}
		return models.LogEntry{}, ErrSourceExhausted
	}
	r.hasPending = false

	entry, err := ParseLine(r.pending)
	if err != nil {
		return models.LogEntry{}, &MalformedEntryError{
			File: r.name,
			Line: r.line,
			Text: r.pending,
			Err:  err,
		}
	}
	return entry, nil
}

// Reset rewinds the reader to the first line.
func (r *Reader) Reset() error {
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", r.name, err)
	}
	r.scanner = bufio.NewScanner(r.rs)
	r.line = 0
	r.pending = ""
	r.hasPending = false
	r.err = nil
	return nil
}

// Err returns the read error that ended the current pass, if any.
func (r *Reader) Err() error {
	return r.err
}

// Close closes the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if c, ok := r.rs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
