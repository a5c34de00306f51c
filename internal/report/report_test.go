package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/rewired-gh/loganalyzer/internal/analyzer"
	"github.com/rewired-gh/loganalyzer/internal/logfile"
	"github.com/rewired-gh/loganalyzer/internal/models"
)

func analyzed(t *testing.T) *analyzer.Analyzer {
	t.Helper()
	entries := []models.LogEntry{
		{Year: 2015, Month: 3, Day: 2, Hour: 0},
		{Year: 2015, Month: 3, Day: 2, Hour: 0},
		{Year: 2015, Month: 4, Day: 9, Hour: 1},
		{Year: 2015, Month: 4, Day: 9, Hour: 23},
		{Year: 2015, Month: 4, Day: 9, Hour: 23},
		{Year: 2015, Month: 4, Day: 10, Hour: 23},
	}
	a := analyzer.New(logfile.NewSliceSource(entries...))
	if err := a.AnalyzeAll(); err != nil {
		t.Fatalf("AnalyzeAll failed: %v", err)
	}
	return a
}

func TestBuild(t *testing.T) {
	s := Build(analyzed(t), "test.log")

	if s.ID == "" {
		t.Error("expected a summary ID")
	}
	if s.Source != "test.log" {
		t.Errorf("unexpected source %q", s.Source)
	}
	if s.TotalAccesses != 6 {
		t.Errorf("expected 6 accesses, got %d", s.TotalAccesses)
	}
	if s.BusiestHour != 23 || s.QuietestHour != 2 || s.BusiestTwoHour != 23 {
		t.Errorf("unexpected hour extrema: busiest=%d quietest=%d two=%d",
			s.BusiestHour, s.QuietestHour, s.BusiestTwoHour)
	}
	if s.BusiestDay != 9 || s.QuietestDay != 1 {
		t.Errorf("unexpected day extrema: busiest=%d quietest=%d", s.BusiestDay, s.QuietestDay)
	}
	if s.BusiestMonth != 4 || s.QuietestMonth != 1 {
		t.Errorf("unexpected month extrema: busiest=%d quietest=%d", s.BusiestMonth, s.QuietestMonth)
	}
	if len(s.Hourly) != 24 || len(s.Daily) != 28 || len(s.Monthly) != 12 {
		t.Errorf("unexpected table sizes: %d %d %d", len(s.Hourly), len(s.Daily), len(s.Monthly))
	}
}

func TestPrintHourlyCounts(t *testing.T) {
	counts := make([]int, 24)
	counts[0] = 2
	counts[23] = 1234

	var buf bytes.Buffer
	if err := PrintHourlyCounts(&buf, counts); err != nil {
		t.Fatalf("PrintHourlyCounts failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 25 {
		t.Fatalf("expected header plus 24 lines, got %d", len(lines))
	}
	if lines[0] != "Hr: Count" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "0: 2" {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if lines[24] != "23: 1,234" {
		t.Errorf("unexpected last row %q", lines[24])
	}
}

func TestPrintDailyCountsStartsAtOne(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintDailyCounts(&buf, []int{4, 5}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "Day: Count\n1: 4\n2: 5\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPrintEntries(t *testing.T) {
	src := logfile.NewSliceSource(
		models.LogEntry{Year: 2015, Month: 6, Day: 1, Hour: 5, Minute: 7},
		models.LogEntry{Year: 2015, Month: 12, Day: 31, Hour: 23, Minute: 59},
	)
	// A partly consumed source is printed from the start.
	if _, err := src.Next(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := PrintEntries(&buf, src); err != nil {
		t.Fatalf("PrintEntries failed: %v", err)
	}
	want := "2015 06 01 05 07\n2015 12 31 23 59\n"
	if got := buf.String(); got != want {
		t.Errorf("PrintEntries wrote %q, want %q", got, want)
	}

	a := analyzer.New(src)
	if err := a.AnalyzeHourlyData(); err != nil {
		t.Fatal(err)
	}
	if got := a.NumberOfAccesses(); got != 2 {
		t.Errorf("source not rewound after printing: %d accesses, want 2", got)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintSummary(&buf, Build(analyzed(t), "test.log")); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"Access Summary: test.log",
		"Total accesses:   6",
		"Busiest hour:     23:00",
		"Busiest 2 hours:  23:00-01:00",
		"Busiest month:    April",
		"Quietest month:   January",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteFile(t *testing.T) {
	s := Build(analyzed(t), "test.log")
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "out", "summary.json")
	if err := WriteFile(s, jsonPath, "json", 0o644, 0o755); err != nil {
		t.Fatalf("WriteFile json failed: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON Summary
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if fromJSON.TotalAccesses != 6 || fromJSON.ID != s.ID {
		t.Errorf("unexpected json summary: %+v", fromJSON)
	}
	if _, err := os.Stat(jsonPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	yamlPath := filepath.Join(dir, "summary.yaml")
	if err := WriteFile(s, yamlPath, "yaml", 0o644, 0o755); err != nil {
		t.Fatalf("WriteFile yaml failed: %v", err)
	}
	data, err = os.ReadFile(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	var fromYAML Summary
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if fromYAML.BusiestHour != 23 {
		t.Errorf("unexpected yaml busiest hour %d", fromYAML.BusiestHour)
	}
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	s := Build(analyzed(t), "test.log")
	if err := WriteFile(s, filepath.Join(t.TempDir(), "x"), "xml", 0o644, 0o755); err == nil {
		t.Error("expected error for unknown format")
	}
}
