// Package logging sets up the structured log file. The terminal belongs to
// the UI, so logs go to a JSON file in the user's state directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPath resolves the log file location:
// 1. $XDG_STATE_HOME/medha/medha.log
// 2. ~/.local/state/medha/medha.log
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "medha", "medha.log"), nil
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Open opens (appending) the log file at path, creating its directory, and
// installs a JSON logger on it as the slog default. The returned closer
// flushes and closes the file.
func Open(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(New(f, level))
	return f, nil
}

// Discard installs a logger that drops everything.
func Discard() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}
