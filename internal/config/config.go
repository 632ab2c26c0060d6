package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// CLIOptions holds command-line argument overrides
type CLIOptions struct {
	SourcePath   string // -source-path: path to the access log
	ReportFormat string // -format: report format (text, json)
	PrintData    bool   // -print-data: dump raw log lines before the report
	Generate     int    // -generate: write N random entries to the source path and exit
	Seed         int64  // -seed: random seed for -generate
	ShowHelp     bool   // -help: show usage
	ShowVersion  bool   // -version: show version
}

// ParseCLI parses command-line arguments and returns CLIOptions
func ParseCLI() *CLIOptions {
	opts, err := parseArgs(flag.CommandLine, os.Args[1:], os.Stderr)
	if err != nil {
		// flag.ExitOnError has already reported the problem
		os.Exit(2)
	}
	return opts
}

// parseArgs registers flags on fs and parses args.
func parseArgs(fs *flag.FlagSet, args []string, usageOut io.Writer) (*CLIOptions, error) {
	opts := &CLIOptions{}

	fs.StringVar(&opts.SourcePath, "source-path", "", "Path to the access log file (overrides ACCESS_LOG_PATH)")
	fs.StringVar(&opts.ReportFormat, "format", "", "Report format: text, json (overrides REPORT_FORMAT)")
	fs.BoolVar(&opts.PrintData, "print-data", false, "Print the raw log lines before the report")
	fs.IntVar(&opts.Generate, "generate", 0, "Write N random log entries to the source path and exit")
	fs.Int64Var(&opts.Seed, "seed", 1, "Random seed used with -generate")
	fs.BoolVar(&opts.ShowHelp, "help", false, "Show usage information")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")

	name := fs.Name()
	fs.SetOutput(usageOut)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(usageOut, "Weblog Analyzer - hourly, daily and monthly access statistics\n\n")
		_, _ = fmt.Fprintf(usageOut, "Usage: %s [options]\n\n", name)
		_, _ = fmt.Fprintf(usageOut, "Options:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(usageOut, "\nExamples:\n")
		_, _ = fmt.Fprintf(usageOut, "  %s -source-path weblog.txt\n", name)
		_, _ = fmt.Fprintf(usageOut, "  %s -source-path weblog.txt -format json\n", name)
		_, _ = fmt.Fprintf(usageOut, "  %s -source-path weblog.txt -generate 5000 -seed 42\n", name)
		_, _ = fmt.Fprintf(usageOut, "\nLog line format: MM:DD:HH:MM:BYTES (month:day:hour:minute:bytes)\n")
		_, _ = fmt.Fprintf(usageOut, "\nEnvironment variables can be set in .env file or exported directly.\n")
		_, _ = fmt.Fprintf(usageOut, "CLI arguments override environment variables.\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.ShowHelp {
		fs.Usage()
	}

	return opts, nil
}

// Config holds all application configuration
type Config struct {
	// Log source
	AccessLogPath string
	MaxLogSizeMB  int

	// Report
	ReportFormat string
	PrintCounts  bool
	PrintData    bool

	// Application logging
	LogLevel   string
	LogDir     string
	LogConsole bool
}

// Load loads configuration from .env file and environment variables
// For CLI overrides, use LoadWithCLI instead
func Load() (*Config, error) {
	return LoadWithCLI(nil)
}

// LoadWithCLI loads configuration with CLI argument overrides
// Priority: CLI args > .env file > OS environment variables > defaults
func LoadWithCLI(cli *CLIOptions) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// godotenv.Overload sets OS env vars from .env, which viper then reads
	_ = godotenv.Overload()

	setDefaults(v)

	config := &Config{
		AccessLogPath: v.GetString("ACCESS_LOG_PATH"),
		MaxLogSizeMB:  v.GetInt("MAX_LOG_SIZE_MB"),
		ReportFormat:  strings.ToLower(v.GetString("REPORT_FORMAT")),
		PrintCounts:   v.GetBool("PRINT_COUNTS"),
		PrintData:     v.GetBool("PRINT_DATA"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogDir:        v.GetString("LOG_DIR"),
		LogConsole:    v.GetBool("LOG_CONSOLE"),
	}

	// Apply CLI overrides (highest priority)
	if cli != nil {
		if cli.SourcePath != "" {
			config.AccessLogPath = cli.SourcePath
		}
		if cli.ReportFormat != "" {
			config.ReportFormat = strings.ToLower(cli.ReportFormat)
		}
		if cli.PrintData {
			config.PrintData = true
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("ACCESS_LOG_PATH", "./weblog.txt")
	v.SetDefault("MAX_LOG_SIZE_MB", 50)
	v.SetDefault("REPORT_FORMAT", FormatText)
	v.SetDefault("PRINT_COUNTS", true)
	v.SetDefault("PRINT_DATA", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "./logs")
	v.SetDefault("LOG_CONSOLE", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AccessLogPath) == "" {
		return fmt.Errorf("ACCESS_LOG_PATH is required")
	}

	// Validate max log size
	if c.MaxLogSizeMB < 1 || c.MaxLogSizeMB > 1024 {
		return fmt.Errorf("MAX_LOG_SIZE_MB must be between 1 and 1024")
	}

	validFormats := map[string]bool{
		FormatText: true,
		FormatJSON: true,
	}
	if !validFormats[c.ReportFormat] {
		return fmt.Errorf("REPORT_FORMAT must be 'text' or 'json' (got: %s)", c.ReportFormat)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.LogDir == "" {
		return fmt.Errorf("LOG_DIR is required")
	}

	return nil
}

// IsJSON returns true if the report should be rendered as JSON
func (c *Config) IsJSON() bool {
	return c.ReportFormat == FormatJSON
}
