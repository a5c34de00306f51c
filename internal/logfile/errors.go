package logfile

import (
	"errors"
	"fmt"
)

// ErrSourceExhausted is returned by Next when the current pass has no more entries.
var ErrSourceExhausted = errors.New("log source exhausted")

// MalformedEntryError reports a log line that could not be turned into an entry.
type MalformedEntryError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed entry at %s:%d %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *MalformedEntryError) Unwrap() error {
	return e.Err
}
