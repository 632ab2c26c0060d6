// Package logger provides structured logging with file rotation.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFilename is the log file name used when Config.Filename is empty.
const DefaultFilename = "weblog-analyzer.log"

// Logger wraps zerolog.Logger with additional functionality
type Logger struct {
	zerolog.Logger
	file *lumberjack.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	LogDir     string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	Console    bool      // Enable console output
	ConsoleOut io.Writer // Console destination, defaults to stderr
}

// New creates a new logger instance
func New(cfg Config) *Logger {
	// Set defaults
	if cfg.LogDir == "" {
		cfg.LogDir = "./logs"
	}
	if cfg.Filename == "" {
		cfg.Filename = DefaultFilename
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.ConsoleOut == nil {
		// stdout carries report output
		cfg.ConsoleOut = os.Stderr
	}

	level := parseLogLevel(cfg.Level)

	// Create log directory if it doesn't exist
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		// Fallback to stderr if directory creation fails
		return &Logger{
			Logger: zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(),
		}
	}

	// Configure file rotation
	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, cfg.Filename),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     30, // days
		Compress:   false,
	}

	// Create multi-writer (file + console if enabled)
	writers := []io.Writer{fileWriter}
	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        cfg.ConsoleOut,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, file: fileWriter}
}

// parseLogLevel converts string log level to zerolog level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close closes the rotating log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Logger: l.Logger.With().Interface(key, value).Logger(), file: l.file}
}

// WithError adds an error to the logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With().Err(err).Logger(), file: l.file}
}
