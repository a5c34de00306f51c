// Package models defines the domain entities shared by the log reader, the
// analyzer and the report writers.
//
// A LogEntry is one web-server access, reduced to the calendar fields of its
// timestamp. Entries are plain values: readers construct them, everybody else
// only reads them.
package models

import (
	"errors"
	"fmt"
)

// LogEntry represents a single access recorded in a web-server log.
// No timezone is attached; the fields are taken as written in the log.
type LogEntry struct {
	Year   int `json:"year" yaml:"year"`
	Month  int `json:"month" yaml:"month"`   // 1-12
	Day    int `json:"day" yaml:"day"`       // 1-31
	Hour   int `json:"hour" yaml:"hour"`     // 0-23
	Minute int `json:"minute" yaml:"minute"` // 0-59
}

// Validate checks that all entry fields hold plausible calendar values.
// It does not check that the day exists in the given month.
func (e *LogEntry) Validate() error {
	if e.Year < 0 {
		return errors.New("year must not be negative")
	}
	if e.Month < 1 || e.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if e.Day < 1 || e.Day > 31 {
		return errors.New("day must be between 1 and 31")
	}
	if e.Hour < 0 || e.Hour > 23 {
		return errors.New("hour must be between 0 and 23")
	}
	if e.Minute < 0 || e.Minute > 59 {
		return errors.New("minute must be between 0 and 59")
	}
	return nil
}

// String renders the entry in log-line form: "year month day hour minute".
func (e LogEntry) String() string {
	return fmt.Sprintf("%d %02d %02d %02d %02d", e.Year, e.Month, e.Day, e.Hour, e.Minute)
}

// Before reports whether e happened strictly before o.
func (e LogEntry) Before(o LogEntry) bool {
	if e.Year != o.Year {
		return e.Year < o.Year
	}
	if e.Month != o.Month {
		return e.Month < o.Month
	}
	if e.Day != o.Day {
		return e.Day < o.Day
	}
	if e.Hour != o.Hour {
		return e.Hour < o.Hour
	}
	return e.Minute < o.Minute
}
