package logfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rewired-gh/loganalyzer/internal/models"
)

// entryFields is the number of leading integer fields in a log line:
// year month day hour minute. Anything after them is ignored.
const entryFields = 5

// ParseLine parses a single log line into an entry.
func ParseLine(line string) (models.LogEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < entryFields {
		return models.LogEntry{}, fmt.Errorf("expected at least %d fields, got %d", entryFields, len(fields))
	}

	var values [entryFields]int
	for i := 0; i < entryFields; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return models.LogEntry{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = v
	}

	entry := models.LogEntry{
		Year:   values[0],
		Month:  values[1],
		Day:    values[2],
		Hour:   values[3],
		Minute: values[4],
	}
	if err := entry.Validate(); err != nil {
		return models.LogEntry{}, err
	}
	return entry, nil
}
