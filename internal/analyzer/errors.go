package analyzer

import (
	"errors"
	"fmt"

	"github.com/rewired-gh/loganalyzer/internal/models"
)

var (
	// ErrOutOfRange is matched by every BucketRangeError.
	ErrOutOfRange = errors.New("bucket out of range")
	// ErrInvalidDaysInMonth is returned by CheckDaysInMonth.
	ErrInvalidDaysInMonth = errors.New("invalid days in month")
)

// BucketRangeError reports an entry whose field has no bucket in the table
// being accumulated. The pass that produced it was aborted.
type BucketRangeError struct {
	Dimension string // "hour", "day" or "month"
	Value     int
	First     int
	Last      int
	Entry     models.LogEntry
}

func (e *BucketRangeError) Error() string {
	return fmt.Sprintf("%s %d of entry %q outside bucket range [%d, %d]",
		e.Dimension, e.Value, e.Entry.String(), e.First, e.Last)
}

func (e *BucketRangeError) Unwrap() error {
	return ErrOutOfRange
}
