package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olegiv/weblog-analyzer-go/internal/analyzer"
	"github.com/olegiv/weblog-analyzer-go/internal/config"
	"github.com/olegiv/weblog-analyzer-go/internal/logfile"
	"github.com/olegiv/weblog-analyzer-go/pkg/logger"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// Version information - injected at build time via ldflags
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI arguments first
	cli := config.ParseCLI()

	// Usage has already been printed by ParseCLI
	if cli.ShowHelp {
		return exitSuccess
	}

	if cli.ShowVersion {
		fmt.Printf("weblog-analyzer %s\n", version)
		if gitCommit != "unknown" {
			fmt.Printf("  commit: %s\n", gitCommit)
		}
		if buildTime != "unknown" {
			fmt.Printf("  built:  %s\n", buildTime)
		}
		return exitSuccess
	}

	// Load configuration with CLI overrides
	cfg, err := config.LoadWithCLI(cli)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitFailure
	}

	log := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		LogDir:     cfg.LogDir,
		MaxSizeMB:  10,
		MaxBackups: 5,
		Console:    cfg.LogConsole,
	})
	defer func() {
		if err := log.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	if cli.Generate != 0 {
		if err := generateLog(cfg.AccessLogPath, cli.Generate, cli.Seed, log); err != nil {
			log.Error().Err(err).Msg("Log generation failed")
			return exitFailure
		}
		return exitSuccess
	}

	log.Info().Str("path", cfg.AccessLogPath).Msg("Starting Weblog Analyzer")

	if err := runAnalyzer(cfg, log, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Analysis failed")
		return exitFailure
	}

	log.Info().Msg("Analysis completed successfully")
	return exitSuccess
}

// generateLog writes count random entries to path.
func generateLog(path string, count int, seed int64, log *logger.Logger) error {
	log.Info().
		Str("path", path).
		Int("entries", count).
		Int64("seed", seed).
		Msg("Generating access log...")

	if err := logfile.NewCreator(seed).WriteFile(path, count); err != nil {
		return fmt.Errorf("failed to generate log file: %w", err)
	}

	log.Info().Str("path", path).Msg("Access log generated")
	return nil
}

// jsonReport is the document written when REPORT_FORMAT=json.
type jsonReport struct {
	Summary       analyzer.Summary `json:"summary"`
	HourlyCounts  []int            `json:"hourly_counts,omitempty"`
	DailyCounts   []int            `json:"daily_counts,omitempty"`
	MonthlyCounts []int            `json:"monthly_counts,omitempty"`
}

func runAnalyzer(cfg *config.Config, log *logger.Logger, out io.Writer) error {
	startTime := time.Now()

	reader, err := logfile.Open(cfg.AccessLogPath, cfg.MaxLogSizeMB)
	if err != nil {
		return fmt.Errorf("failed to open log source: %w", err)
	}

	if sourceInfo, err := reader.GetSourceInfo(); err == nil {
		log.Info().
			Float64("size_mb", sourceInfo["size_mb"].(float64)).
			Float64("age_hours", sourceInfo["age_hours"].(float64)).
			Msg("Log source opened")
	}

	a := analyzer.New(reader, out)
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close log source")
		}
	}()

	if cfg.PrintData {
		if err := a.PrintData(); err != nil {
			return err
		}
	}

	log.Info().Msg("Analyzing access log...")
	if err := a.Analyze(); err != nil {
		return err
	}

	summary := a.Summarize()
	log.Info().
		Int("accesses", summary.TotalAccesses).
		Int("busiest_hour", summary.BusiestHour).
		Int("busiest_day", summary.BusiestDay).
		Int("busiest_month", summary.BusiestMonth).
		Msg("Analysis completed")

	if cfg.IsJSON() {
		report := jsonReport{Summary: summary}
		if cfg.PrintCounts {
			report.HourlyCounts = a.HourlyCounts()
			report.DailyCounts = a.DailyCounts()
			report.MonthlyCounts = a.MonthlyCounts()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	} else {
		if err := writeTextReport(a, summary, cfg.PrintCounts, out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	log.Debug().
		Float64("total_duration_s", time.Since(startTime).Seconds()).
		Msg("Report written")

	return nil
}

func writeTextReport(a *analyzer.Analyzer, summary analyzer.Summary, printCounts bool, out io.Writer) error {
	if printCounts {
		for _, printTable := range []func() error{a.PrintHourlyCounts, a.PrintDailyCounts, a.PrintMonthlyCounts} {
			if err := printTable(); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return summary.WriteText(out)
}
