package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "blogdeck.log")

	log := newLogger(path)
	log.Info("hello from the log")
	if err := log.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from the log") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestNewLoggerEmptyPathIsSilent(t *testing.T) {
	log := newLogger("")
	// Must be safe to use even though nothing is written anywhere.
	log.Info("dropped")
	_ = log.Sync()
}
