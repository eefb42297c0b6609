// Package util provides common utilities including logging helpers,
// file system operations, and string manipulation functions.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. It discards output until SetupLogging
// points it at a file, since the terminal belongs to the UI.
var Logger = log.NewWithOptions(io.Discard, log.Options{ReportTimestamp: true})

// SetupLogging opens (or creates) the log file and routes Logger to it.
// The returned closer must be closed on exit.
func SetupLogging(path, level string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	Logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
		Prefix:          "cozyfocus",
	})
	return f, nil
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		Logger.Error(context, "err", err)
	}
}
