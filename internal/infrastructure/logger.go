// Package infrastructure wires process-level concerns, currently the global
// structured logger.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"zillowpulse/internal/config"
)

var (
	// globalLogger holds the application-wide logger instance
	globalLogger     *slog.Logger
	globalLoggerOnce sync.Once
	// globalLogFile holds the open log file for cleanup
	globalLogFile *os.File
	logFileMu     sync.Mutex
)

// InitializeLogger creates and configures the global slog logger instance.
// This should be called once during application startup.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	var err error
	globalLoggerOnce.Do(func() {
		globalLogger, err = createLogger(cfg)
		if globalLogger != nil {
			slog.SetDefault(globalLogger)
		}
	})
	return globalLogger, err
}

// GetLogger returns the global logger instance.
// If not initialized, returns the default slog logger.
func GetLogger() *slog.Logger {
	if globalLogger == nil {
		return slog.Default()
	}
	return globalLogger
}

// createLogger creates a new slog logger based on configuration.
func createLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}

	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "file":
		file, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		globalLogFile = file
		output = file
	case "both":
		file, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		globalLogFile = file
		output = io.MultiWriter(os.Stdout, file)
	default:
		output = os.Stdout
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler), nil
}

// openLogFile opens the log file for appending, creating its directory first.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// parseLogLevel converts a level string to a slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// CloseLogFile closes the global log file if one is open.
func CloseLogFile() error {
	logFileMu.Lock()
	defer logFileMu.Unlock()

	if globalLogFile != nil {
		err := globalLogFile.Close()
		globalLogFile = nil
		return err
	}
	return nil
}
