package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rewired-gh/loganalyzer/internal/analyzer"
	"github.com/rewired-gh/loganalyzer/internal/config"
	"github.com/rewired-gh/loganalyzer/internal/logfile"
	"github.com/rewired-gh/loganalyzer/internal/logger"
	"github.com/rewired-gh/loganalyzer/internal/report"
	"github.com/rewired-gh/loganalyzer/internal/telegram"
)

var (
	configPath = flag.String("config", "", "Path to configuration file (defaults and environment only when empty)")
	sourcePath = flag.String("source", "", "Log file or directory to analyze (overrides source.path)")
	reportName = flag.String("report", "summary", "Report to print: "+strings.Join(reportNames(), ", "))
	outPath    = flag.String("out", "", "Export the full summary to this file (overrides report.output)")
	outFormat  = flag.String("format", "", "Export format, json or yaml (overrides report.format)")
	generate   = flag.Int("generate", 0, "Write N random entries to the source path and exit")
	genYear    = flag.Int("year", time.Now().Year(), "Year of generated entries")
	genSeed    = flag.Int64("seed", time.Now().UnixNano(), "Random seed for generated entries")
)

// pass selects which accumulation passes a report needs.
type pass int

const (
	passHourly pass = 1 << iota
	passDaily
	passMonthly

	passAll = passHourly | passDaily | passMonthly
)

type reportSpec struct {
	passes pass
	print  func(w io.Writer, a *analyzer.Analyzer, source string) error
}

func printValue(v func(a *analyzer.Analyzer) int) func(io.Writer, *analyzer.Analyzer, string) error {
	return func(w io.Writer, a *analyzer.Analyzer, _ string) error {
		_, err := fmt.Fprintln(w, v(a))
		return err
	}
}

var reports = map[string]reportSpec{
	"summary": {passAll, func(w io.Writer, a *analyzer.Analyzer, source string) error {
		return report.PrintSummary(w, report.Build(a, source))
	}},
	"data": {0, func(w io.Writer, a *analyzer.Analyzer, _ string) error {
		return report.PrintEntries(w, a.Source())
	}},
	"total": {passHourly, printValue((*analyzer.Analyzer).NumberOfAccesses)},
	"hourly": {passHourly, func(w io.Writer, a *analyzer.Analyzer, _ string) error {
		return report.PrintHourlyCounts(w, a.HourlyCounts())
	}},
	"daily": {passDaily, func(w io.Writer, a *analyzer.Analyzer, _ string) error {
		return report.PrintDailyCounts(w, a.DailyCounts())
	}},
	"monthly": {passMonthly, func(w io.Writer, a *analyzer.Analyzer, _ string) error {
		return report.PrintMonthlyCounts(w, a.MonthlyCounts())
	}},
	"busiest-hour":     {passHourly, printValue((*analyzer.Analyzer).BusiestHour)},
	"quietest-hour":    {passHourly, printValue((*analyzer.Analyzer).QuietestHour)},
	"busiest-two-hour": {passHourly, printValue((*analyzer.Analyzer).BusiestTwoHour)},
	"busiest-day":      {passDaily, printValue((*analyzer.Analyzer).BusiestDay)},
	"quietest-day":     {passDaily, printValue((*analyzer.Analyzer).QuietestDay)},
	"busiest-month":    {passMonthly, printValue((*analyzer.Analyzer).BusiestMonth)},
	"quietest-month":   {passMonthly, printValue((*analyzer.Analyzer).QuietestMonth)},
}

func reportNames() []string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exitError carries the process exit code for a failed stage.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error {
	return &exitError{code: code, err: err}
}

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(CodeConfigError, "Failed to load config: %v", err)
	}
	applyFlags(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		logger.Fatal(CodeConfigError, "Invalid configuration: %v", err)
	}

	// Setup logging with level support
	logger.Init(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if *configPath != "" {
		logger.Debug("Configuration loaded from %s", *configPath)
	}

	if *generate > 0 {
		err = runGenerate(cfg.Source.Path, *generate, *genYear, *genSeed)
	} else {
		err = run(cfg, *reportName, os.Stdout)
	}
	if err != nil {
		code := CodeAnalysisError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		logger.Fatal(code, "%v", err)
	}
}

func applyFlags(cfg *config.Config) {
	if *sourcePath != "" {
		cfg.Source.Path = *sourcePath
	}
	if *outPath != "" {
		cfg.Report.Output = *outPath
	}
	if *outFormat != "" {
		cfg.Report.Format = *outFormat
	}
}

func run(cfg *config.Config, name string, out io.Writer) error {
	spec, ok := reports[name]
	if !ok {
		return fail(CodeConfigError, fmt.Errorf("unknown report %q (want one of: %s)", name, strings.Join(reportNames(), ", ")))
	}

	// Exports and notifications always carry the full summary
	passes := spec.passes
	if cfg.Report.Output != "" || cfg.Telegram.Enabled {
		passes = passAll
	}

	source, err := logfile.Open(cfg.Source.Path, cfg.Source.Include)
	if err != nil {
		return fail(CodeSourceError, err)
	}
	a := analyzer.New(source, analyzer.WithDaysInMonth(cfg.Analysis.DaysInMonth))
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("Failed to close log source: %v", err)
		}
	}()

	logger.Info("Analyzing %s", cfg.Source.Path)
	start := time.Now()
	if err := analyze(a, passes); err != nil {
		return fail(CodeAnalysisError, err)
	}
	if passes != 0 {
		logger.Info("Analyzed %d entries in %v", a.EntriesRead(), time.Since(start))
	}

	if err := spec.print(out, a, cfg.Source.Path); err != nil {
		var malformed *logfile.MalformedEntryError
		if errors.As(err, &malformed) {
			return fail(CodeAnalysisError, err)
		}
		return fail(CodeOutputError, fmt.Errorf("failed to print report: %w", err))
	}

	if cfg.Report.Output == "" && !cfg.Telegram.Enabled {
		return nil
	}
	summary := report.Build(a, cfg.Source.Path)

	if cfg.Report.Output != "" {
		err := report.WriteFile(summary, cfg.Report.Output, cfg.Report.Format,
			os.FileMode(cfg.Report.FilePermissions), os.FileMode(cfg.Report.DirPermissions))
		if err != nil {
			return fail(CodeOutputError, fmt.Errorf("failed to export summary: %w", err))
		}
		logger.Info("Summary %s written to %s", summary.ID, cfg.Report.Output)
	}

	if cfg.Telegram.Enabled {
		client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.MaxRetries, cfg.Telegram.RetryDelayBase)
		if err != nil {
			return fail(CodeOutputError, err)
		}
		if err := client.SendSummary(summary); err != nil {
			return fail(CodeOutputError, err)
		}
		logger.Info("Sent summary %s to Telegram", summary.ID)
	}

	return nil
}

func analyze(a *analyzer.Analyzer, passes pass) error {
	if passes&passHourly != 0 {
		if err := a.AnalyzeHourlyData(); err != nil {
			return err
		}
	}
	if passes&passDaily != 0 {
		if err := a.AnalyzeDailyData(); err != nil {
			return err
		}
	}
	if passes&passMonthly != 0 {
		if err := a.AnalyzeMonthlyData(); err != nil {
			return err
		}
	}
	return nil
}

func runGenerate(path string, n, year int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fail(CodeOutputError, fmt.Errorf("failed to create log file: %w", err))
	}

	entries := logfile.Generate(n, year, seed)
	if err := logfile.WriteEntries(f, entries); err != nil {
		_ = f.Close()
		return fail(CodeOutputError, err)
	}
	if err := f.Close(); err != nil {
		return fail(CodeOutputError, fmt.Errorf("failed to close log file: %w", err))
	}

	logger.Info("Wrote %d entries for %d to %s (seed %d)", n, year, path, seed)
	return nil
}
