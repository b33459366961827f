// Package logging configures the process logger. The TUI owns the
// terminal, so log output defaults to a file under ~/.sysmon instead
// of stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum log level.
	Level string
	// Format is the log format (text or json).
	Format string
	// Output is the log output file path. If empty, use the default
	// file under ~/.sysmon.
	Output string
}

// DefaultLogFile returns the default log file path.
func DefaultLogFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "sysmon.log"
	}
	return filepath.Join(homeDir, ".sysmon", "sysmon.log")
}

// New builds a configured logger. Collectors receive entries derived
// from it; there is no package-level logger.
func New(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02 15:04:05",
	})

	if cfg.Level != "" {
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	output := cfg.Output
	if output == "" {
		output = DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(file)

	return logger, nil
}
