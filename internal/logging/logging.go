// Package logging builds the file logger. The TUI owns the terminal, so
// diagnostics never go to stdout or stderr while a game is running.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath returns $XDG_DATA_HOME/mathtime/mathtime.log, falling back
// to ~/.local/share/mathtime/mathtime.log.
func DefaultPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "mathtime.log"
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "mathtime", "mathtime.log")
}

// ParseLevel maps a config level name to a log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger writing to w with the given prefix.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           level,
	})
}

// OpenFile opens (appending) the log file at path, creating its directory.
// The returned closer must be called on shutdown.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path comes from config
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, "MATHTIME", lvl), f, nil
}

// Discard returns a logger that drops everything. Used by tests and
// one-shot CLI commands.
func Discard() *log.Logger {
	return New(io.Discard, "", log.ErrorLevel)
}
