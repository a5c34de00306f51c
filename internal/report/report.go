// Package report turns analyzer results into console tables and exported
// summary files.
//
// A Summary is a plain snapshot of an analyzer's tables and extrema, taken
// after the accumulation passes finished. Summaries are written as JSON or
// YAML through a temp-file-and-rename so a reader never sees a partial file.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/rewired-gh/loganalyzer/internal/analyzer"
)

// Summary holds everything computed for one analyzed source.
type Summary struct {
	ID          string    `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	TotalAccesses  int `json:"total_accesses" yaml:"total_accesses"`
	BusiestHour    int `json:"busiest_hour" yaml:"busiest_hour"`
	QuietestHour   int `json:"quietest_hour" yaml:"quietest_hour"`
	BusiestTwoHour int `json:"busiest_two_hour" yaml:"busiest_two_hour"`
	BusiestDay     int `json:"busiest_day" yaml:"busiest_day"`
	QuietestDay    int `json:"quietest_day" yaml:"quietest_day"`
	BusiestMonth   int `json:"busiest_month" yaml:"busiest_month"`
	QuietestMonth  int `json:"quietest_month" yaml:"quietest_month"`

	Hourly  []int `json:"hourly" yaml:"hourly"`   // index = hour
	Daily   []int `json:"daily" yaml:"daily"`     // index = day - 1
	Monthly []int `json:"monthly" yaml:"monthly"` // index = month - 1
}

// Build snapshots a after its passes completed.
func Build(a *analyzer.Analyzer, source string) *Summary {
	return &Summary{
		ID:             uuid.New().String(),
		Source:         source,
		GeneratedAt:    time.Now(),
		TotalAccesses:  a.NumberOfAccesses(),
		BusiestHour:    a.BusiestHour(),
		QuietestHour:   a.QuietestHour(),
		BusiestTwoHour: a.BusiestTwoHour(),
		BusiestDay:     a.BusiestDay(),
		QuietestDay:    a.QuietestDay(),
		BusiestMonth:   a.BusiestMonth(),
		QuietestMonth:  a.QuietestMonth(),
		Hourly:         a.HourlyCounts(),
		Daily:          a.DailyCounts(),
		Monthly:        a.MonthlyCounts(),
	}
}

// PrintHourlyCounts writes the hour table, one "hour: count" line per hour.
func PrintHourlyCounts(w io.Writer, counts []int) error {
	return printTable(w, "Hr", 0, counts)
}

// PrintDailyCounts writes the day table starting at day 1.
func PrintDailyCounts(w io.Writer, counts []int) error {
	return printTable(w, "Day", 1, counts)
}

// PrintMonthlyCounts writes the month table starting at month 1.
func PrintMonthlyCounts(w io.Writer, counts []int) error {
	return printTable(w, "Mon", 1, counts)
}

func printTable(w io.Writer, label string, first int, counts []int) error {
	if _, err := fmt.Fprintf(w, "%s: Count\n", label); err != nil {
		return err
	}
	for i, n := range counts {
		if _, err := fmt.Fprintf(w, "%d: %s\n", first+i, humanize.Comma(int64(n))); err != nil {
			return err
		}
	}
	return nil
}

// PrintEntries writes every entry of src in log format, one per line, then
// rewinds src. It starts from a Reset so earlier reads do not hide entries.
func PrintEntries(w io.Writer, src analyzer.EntrySource) error {
	if err := src.Reset(); err != nil {
		return err
	}
	for src.HasNext() {
		e, err := src.Next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	if es, ok := src.(interface{ Err() error }); ok {
		if err := es.Err(); err != nil {
			return err
		}
	}
	return src.Reset()
}

// PrintSummary writes the totals and extrema of s.
func PrintSummary(w io.Writer, s *Summary) error {
	_, err := fmt.Fprintf(w,
		"=== Access Summary: %s ===\n"+
			"Total accesses:   %s\n"+
			"Busiest hour:     %02d:00\n"+
			"Quietest hour:    %02d:00\n"+
			"Busiest 2 hours:  %02d:00-%02d:00\n"+
			"Busiest day:      %d\n"+
			"Quietest day:     %d\n"+
			"Busiest month:    %s\n"+
			"Quietest month:   %s\n",
		s.Source,
		humanize.Comma(int64(s.TotalAccesses)),
		s.BusiestHour,
		s.QuietestHour,
		s.BusiestTwoHour, (s.BusiestTwoHour+2)%24,
		s.BusiestDay,
		s.QuietestDay,
		time.Month(s.BusiestMonth),
		time.Month(s.QuietestMonth),
	)
	return err
}

// Marshal encodes s as "json" or "yaml".
func Marshal(s *Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(s, "", "  ")
	case "yaml":
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// WriteFile exports s to path, creating parent directories as needed.
// The file is written to path+".tmp" first and renamed into place.
func WriteFile(s *Summary, path, format string, filePermissions, dirPermissions os.FileMode) error {
	data, err := Marshal(s, format)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	// Create output directory if needed
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	// Write to temporary file first (atomic write)
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	// Rename temp file to actual file
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath) // Clean up temp file on rename failure
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
