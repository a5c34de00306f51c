package logfile

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/rewired-gh/loganalyzer/internal/models"
)

// generatedDays keeps generated entries valid in every month.
const generatedDays = 28

// Generate returns n random entries within year, sorted chronologically.
// The same seed always produces the same entries.
func Generate(n, year int, seed int64) []models.LogEntry {
	rng := rand.New(rand.NewSource(seed))

	entries := make([]models.LogEntry, n)
	for i := range entries {
		entries[i] = models.LogEntry{
			Year:   year,
			Month:  1 + rng.Intn(12),
			Day:    1 + rng.Intn(generatedDays),
			Hour:   rng.Intn(24),
			Minute: rng.Intn(60),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Before(entries[j])
	})
	return entries
}

// WriteEntries writes entries to w in log-line form, one per line.
func WriteEntries(w io.Writer, entries []models.LogEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush entries: %w", err)
	}
	return nil
}
