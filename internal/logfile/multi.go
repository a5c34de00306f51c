package logfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/rewired-gh/loganalyzer/internal/logger"
	"github.com/rewired-gh/loganalyzer/internal/models"
)

// DefaultInclude selects the files of a directory source.
const DefaultInclude = "*.log"

// MultiReader chains several readers into one pass, in order.
type MultiReader struct {
	readers []*Reader
	current int
}

// NewMultiReader chains readers. Closing the MultiReader closes them all.
func NewMultiReader(readers ...*Reader) *MultiReader {
	return &MultiReader{readers: readers}
}

// OpenDir opens every regular file in dir whose base name matches include,
// in lexical order.
func OpenDir(dir, include string) (*MultiReader, error) {
	if include == "" {
		include = DefaultInclude
	}
	g, err := glob.Compile(include)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern %q: %w", include, err)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory: %w", err)
	}

	m := &MultiReader{}
	for _, de := range dirEntries {
		if !de.Type().IsRegular() || !g.Match(de.Name()) {
			continue
		}
		r, err := OpenFile(filepath.Join(dir, de.Name()))
		if err != nil {
			_ = m.Close()
			return nil, err
		}
		logger.Debug("Including log file %s", r.Name())
		m.readers = append(m.readers, r)
	}

	if len(m.readers) == 0 {
		return nil, fmt.Errorf("no log files matching %q in %s", include, dir)
	}
	return m, nil
}

// HasNext reports whether any remaining reader has another line.
func (m *MultiReader) HasNext() bool {
	for m.current < len(m.readers) {
		r := m.readers[m.current]
		if r.HasNext() {
			return true
		}
		if r.Err() != nil {
			return false
		}
		m.current++
	}
	return false
}

// Next returns the next entry across all readers.
func (m *MultiReader) Next() (models.LogEntry, error) {
	if !m.HasNext() {
		if err := m.Err(); err != nil {
			return models.LogEntry{}, err
		}
		return models.LogEntry{}, ErrSourceExhausted
	}
	return m.readers[m.current].Next()
}

// Reset rewinds every reader and starts again from the first.
func (m *MultiReader) Reset() error {
	for _, r := range m.readers {
		if err := r.Reset(); err != nil {
			return err
		}
	}
	m.current = 0
	return nil
}

// Err returns the read error of the reader that stopped the pass, if any.
func (m *MultiReader) Err() error {
	if m.current < len(m.readers) {
		return m.readers[m.current].Err()
	}
	return nil
}

// Close closes all readers.
func (m *MultiReader) Close() error {
	var errs []error
	for _, r := range m.readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
