package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// newLogger builds a file-backed logger. The TUI owns the terminal, so
// nothing may write to stdout or stderr while it runs; when the log file
// cannot be used, logging is disabled rather than corrupting the screen.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
