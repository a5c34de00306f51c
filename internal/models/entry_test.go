package models

import "testing"

func TestLogEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   LogEntry
		wantErr bool
	}{
		{
			name:    "valid entry",
			entry:   LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 0, Minute: 10},
			wantErr: false,
		},
		{
			name:    "last minute of the year",
			entry:   LogEntry{Year: 2015, Month: 12, Day: 31, Hour: 23, Minute: 59},
			wantErr: false,
		},
		{
			name:    "month zero",
			entry:   LogEntry{Year: 2015, Month: 0, Day: 1, Hour: 0},
			wantErr: true,
		},
		{
			name:    "month thirteen",
			entry:   LogEntry{Year: 2015, Month: 13, Day: 1, Hour: 0},
			wantErr: true,
		},
		{
			name:    "day zero",
			entry:   LogEntry{Year: 2015, Month: 1, Day: 0, Hour: 0},
			wantErr: true,
		},
		{
			name:    "hour 24",
			entry:   LogEntry{Year: 2015, Month: 1, Day: 1, Hour: 24},
			wantErr: true,
		},
		{
			name:    "negative minute",
			entry:   LogEntry{Year: 2015, Month: 1, Day: 1, Hour: 3, Minute: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("LogEntry.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogEntryString(t *testing.T) {
	e := LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 7, Minute: 5}
	if got := e.String(); got != "2015 06 01 07 05" {
		t.Errorf("String() = %q, want %q", got, "2015 06 01 07 05")
	}
}

func TestLogEntryBefore(t *testing.T) {
	a := LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 7, Minute: 5}
	b := LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 7, Minute: 6}
	c := LogEntry{Year: 2014, Month: 12, Day: 31, Hour: 23, Minute: 59}

	if !a.Before(b) {
		t.Error("expected a before b")
	}
	if b.Before(a) {
		t.Error("expected b not before a")
	}
	if !c.Before(a) {
		t.Error("expected previous year to sort first")
	}
	if a.Before(a) {
		t.Error("entry must not be before itself")
	}
}
