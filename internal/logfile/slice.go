package logfile

import "github.com/rewired-gh/loganalyzer/internal/models"

// SliceSource serves entries held in memory.
type SliceSource struct {
	entries []models.LogEntry
	pos     int
}

// NewSliceSource creates a source over entries. The slice is not copied.
func NewSliceSource(entries ...models.LogEntry) *SliceSource {
	return &SliceSource{entries: entries}
}

func (s *SliceSource) HasNext() bool {
	return s.pos < len(s.entries)
}

func (s *SliceSource) Next() (models.LogEntry, error) {
	if !s.HasNext() {
		return models.LogEntry{}, ErrSourceExhausted
	}
	e := s.entries[s.pos]
	s.pos++
	return e, nil
}

func (s *SliceSource) Reset() error {
	s.pos = 0
	return nil
}

func (s *SliceSource) Err() error   { return nil }
func (s *SliceSource) Close() error { return nil }
