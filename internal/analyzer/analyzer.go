// Package analyzer computes time-bucketed access statistics from a log.
//
// An Analyzer owns three frequency tables, one per calendar dimension:
//
//	hour   0..23
//	day    1..daysInMonth (28 unless configured otherwise)
//	month  1..12
//
// Each AnalyzeXxxData call makes one full pass over the bound source,
// increments the bucket selected by the entry's field, then rewinds the
// source so the next pass sees the same entries. The tables are never
// cleared: analyzing the same dimension twice counts every entry twice, and
// it is up to the caller not to do that.
//
// If a pass fails, the table it was filling is left partially updated and
// should not be trusted. An Analyzer is not safe for concurrent use.
package analyzer

import (
	"fmt"
	"io"

	"github.com/rewired-gh/loganalyzer/internal/logfile"
	"github.com/rewired-gh/loganalyzer/internal/logger"
	"github.com/rewired-gh/loganalyzer/internal/models"
)

const (
	// DefaultDaysInMonth sizes the day table when no option overrides it.
	DefaultDaysInMonth = 28
	minDaysInMonth     = 28
	maxDaysInMonth     = 31

	hoursPerDay = 24
	twoHours    = 2
)

// EntrySource is the sequence of entries an Analyzer reads.
// Reset must replay the same entries in the same order.
type EntrySource interface {
	HasNext() bool
	Next() (models.LogEntry, error)
	Reset() error
}

// errSource is implemented by sources whose HasNext can end a pass because
// of an I/O failure rather than exhaustion.
type errSource interface {
	Err() error
}

// Option configures an Analyzer.
type Option func(*options)

type options struct {
	daysInMonth int
}

// CheckDaysInMonth reports whether n can size the day table.
func CheckDaysInMonth(n int) error {
	if n < minDaysInMonth || n > maxDaysInMonth {
		return fmt.Errorf("%w: %d not in %d..%d", ErrInvalidDaysInMonth, n, minDaysInMonth, maxDaysInMonth)
	}
	return nil
}

// WithDaysInMonth sets the last bucket of the day table. Values rejected by
// CheckDaysInMonth are logged and the default is kept.
func WithDaysInMonth(n int) Option {
	return func(o *options) {
		if err := CheckDaysInMonth(n); err != nil {
			logger.Warn("Keeping %d-day table: %v", o.daysInMonth, err)
			return
		}
		o.daysInMonth = n
	}
}

// Analyzer accumulates hourly, daily and monthly access counts.
type Analyzer struct {
	source EntrySource
	// entries counted by the most recent completed pass
	lastPass int

	hours  *frequencyTable
	days   *frequencyTable
	months *frequencyTable
}

// New creates an Analyzer bound to source. Nothing is read until one of the
// AnalyzeXxxData methods is called.
func New(source EntrySource, opts ...Option) *Analyzer {
	o := options{daysInMonth: DefaultDaysInMonth}
	for _, opt := range opts {
		opt(&o)
	}

	return &Analyzer{
		source: source,
		hours:  newFrequencyTable(0, hoursPerDay-1),
		days:   newFrequencyTable(1, o.daysInMonth),
		months: newFrequencyTable(1, 12),
	}
}

// Open creates an Analyzer over the log named by path, or over
// logfile.DefaultPath when path is empty. Close releases the file.
func Open(path string, opts ...Option) (*Analyzer, error) {
	source, err := logfile.Open(path, logfile.DefaultInclude)
	if err != nil {
		return nil, err
	}
	return New(source, opts...), nil
}

// Close closes the bound source if it holds resources.
func (a *Analyzer) Close() error {
	if c, ok := a.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// AnalyzeHourlyData counts every entry in the hour-of-day table.
func (a *Analyzer) AnalyzeHourlyData() error {
	return a.accumulate("hour", a.hours, func(e models.LogEntry) int { return e.Hour })
}

// AnalyzeDailyData counts every entry in the day-of-month table.
func (a *Analyzer) AnalyzeDailyData() error {
	return a.accumulate("day", a.days, func(e models.LogEntry) int { return e.Day })
}

// AnalyzeMonthlyData counts every entry in the month-of-year table.
func (a *Analyzer) AnalyzeMonthlyData() error {
	return a.accumulate("month", a.months, func(e models.LogEntry) int { return e.Month })
}

// AnalyzeAll runs the hourly, daily and monthly passes in that order and
// stops at the first failure.
func (a *Analyzer) AnalyzeAll() error {
	for _, pass := range []func() error{a.AnalyzeHourlyData, a.AnalyzeDailyData, a.AnalyzeMonthlyData} {
		if err := pass(); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) accumulate(dimension string, table *frequencyTable, field func(models.LogEntry) int) error {
	n := 0
	for a.source.HasNext() {
		entry, err := a.source.Next()
		if err != nil {
			return fmt.Errorf("%s pass aborted after %d entries: %w", dimension, n, err)
		}

		value := field(entry)
		if !table.add(value) {
			return &BucketRangeError{
				Dimension: dimension,
				Value:     value,
				First:     table.first,
				Last:      table.last(),
				Entry:     entry,
			}
		}
		n++
	}

	if es, ok := a.source.(errSource); ok {
		if err := es.Err(); err != nil {
			return fmt.Errorf("%s pass aborted after %d entries: %w", dimension, n, err)
		}
	}

	if err := a.source.Reset(); err != nil {
		return fmt.Errorf("failed to rewind source after %s pass: %w", dimension, err)
	}

	a.lastPass = n
	logger.Debug("Completed %s pass: %d entries", dimension, n)
	return nil
}

// EntriesRead returns the number of entries counted by the most recent
// completed pass of any dimension, 0 before the first.
func (a *Analyzer) EntriesRead() int {
	return a.lastPass
}

// Source returns the bound source. Reading from it outside a pass must end
// with Reset so the next pass starts from the first entry.
func (a *Analyzer) Source() EntrySource {
	return a.source
}

// NumberOfAccesses returns the total of the hour table, which is the number
// of entries seen by AnalyzeHourlyData. It is 0 before any hourly pass.
func (a *Analyzer) NumberOfAccesses() int {
	return a.hours.total()
}

// BusiestHour returns the hour with the most accesses. Ties go to the
// earliest hour; with no data the result is 0.
func (a *Analyzer) BusiestHour() int {
	return a.hours.busiest()
}

// QuietestHour returns the hour with the fewest accesses. Ties go to the
// earliest hour.
func (a *Analyzer) QuietestHour() int {
	return a.hours.quietest()
}

// BusiestTwoHour returns the first hour h of the busiest window {h, h+1 mod 24}.
// The window starting at 23 covers 23 and 0.
func (a *Analyzer) BusiestTwoHour() int {
	return a.hours.busiestWindow(twoHours)
}

// BusiestDay returns the day of month with the most accesses, 1 with no data.
func (a *Analyzer) BusiestDay() int {
	return a.days.busiest()
}

// QuietestDay returns the day of month with the fewest accesses.
func (a *Analyzer) QuietestDay() int {
	return a.days.quietest()
}

// BusiestMonth returns the month with the most accesses, 1 with no data.
func (a *Analyzer) BusiestMonth() int {
	return a.months.busiest()
}

// QuietestMonth returns the month with the fewest accesses.
func (a *Analyzer) QuietestMonth() int {
	return a.months.quietest()
}

// HourCount returns the count for hour, 0 outside 0..23.
func (a *Analyzer) HourCount(hour int) int {
	return a.hours.count(hour)
}

// DayCount returns the count for day, 0 outside the day table.
func (a *Analyzer) DayCount(day int) int {
	return a.days.count(day)
}

// MonthCount returns the count for month, 0 outside 1..12.
func (a *Analyzer) MonthCount(month int) int {
	return a.months.count(month)
}

// DaysInMonth returns the last bucket of the day table.
func (a *Analyzer) DaysInMonth() int {
	return a.days.last()
}

// HourlyCounts returns a copy of the hour table; index i is hour i.
func (a *Analyzer) HourlyCounts() []int {
	return a.hours.snapshot()
}

// DailyCounts returns a copy of the day table; index i is day i+1.
func (a *Analyzer) DailyCounts() []int {
	return a.days.snapshot()
}

// MonthlyCounts returns a copy of the month table; index i is month i+1.
func (a *Analyzer) MonthlyCounts() []int {
	return a.months.snapshot()
}
