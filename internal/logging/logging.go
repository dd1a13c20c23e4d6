// Package logging builds the application logger. The TUI owns the
// terminal, so logs go to a file under the XDG state directory; when that
// fails the logger degrades to a no-op rather than corrupting the screen.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a file-backed zap logger. It never fails: any setup problem
// yields zap.NewNop().
func New(debug bool) *zap.Logger {
	path, err := defaultLogPath()
	if err != nil {
		return zap.NewNop()
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// defaultLogPath resolves $XDG_STATE_HOME/prepnova/prepnova.log, falling
// back to ~/.local/state, and ensures the directory exists.
func defaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	dir := filepath.Join(stateHome, "prepnova")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "prepnova.log"), nil
}
