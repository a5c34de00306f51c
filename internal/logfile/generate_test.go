package logfile

import (
	"bytes"
	"testing"
)

func TestGenerate(t *testing.T) {
	entries := Generate(500, 2015, 42)
	if len(entries) != 500 {
		t.Fatalf("expected 500 entries, got %d", len(entries))
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			t.Fatalf("entry %d invalid: %v", i, err)
		}
		if e.Year != 2015 {
			t.Errorf("entry %d has year %d", i, e.Year)
		}
		if e.Day > generatedDays {
			t.Errorf("entry %d has day %d", i, e.Day)
		}
		if i > 0 && e.Before(entries[i-1]) {
			t.Fatalf("entries not sorted at %d", i)
		}
	}

	again := Generate(500, 2015, 42)
	for i := range entries {
		if entries[i] != again[i] {
			t.Fatalf("same seed produced different entry at %d", i)
		}
	}
}

func TestWriteEntries_RoundTrip(t *testing.T) {
	entries := Generate(50, 2016, 7)

	var buf bytes.Buffer
	if err := WriteEntries(&buf, entries); err != nil {
		t.Fatalf("WriteEntries failed: %v", err)
	}

	r := NewReader("generated", bytes.NewReader(buf.Bytes()))
	for i := 0; r.HasNext(); i++ {
		e, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if e != entries[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, e, entries[i])
		}
	}
}

func TestSliceSource(t *testing.T) {
	s := NewSliceSource(Generate(3, 2015, 1)...)
	if got := drain(t, s); len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if _, err := s.Next(); err != ErrSourceExhausted {
		t.Errorf("expected ErrSourceExhausted, got %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if !s.HasNext() {
		t.Error("expected entries after Reset")
	}
}
