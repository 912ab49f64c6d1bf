// Package logging configures the global zerolog logger with automatic
// log rotation.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10 // Maximum size in MB before rotation
	maxLogBackups = 3  // Number of old files to keep
	maxLogAgeDays = 30 // Maximum age in days before deletion
)

// createLumberjackLogger creates a lumberjack.Logger with standard configuration
func createLumberjackLogger(logFile string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}
}

// Init initializes the global logger writing to logFile with lumberjack
// rotation. An empty or invalid level leaves the default level alone.
func Init(logFile, level string) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	lj := createLumberjackLogger(logFile)
	log.Logger = zerolog.New(lj).With().Timestamp().Logger()

	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(parsed)
	}
	return nil
}

// InitTest initializes the global logger for testing (outputs to discard)
func InitTest() {
	log.Logger = zerolog.New(io.Discard)
}
