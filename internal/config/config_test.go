package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != defaultServer {
		t.Fatalf("Server = %q, want default %q", cfg.Server, defaultServer)
	}
	if cfg.LogPath == "" {
		t.Fatal("LogPath empty, want expanded default")
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "server = \"blog.example.com:8080\"\nlog_path = \"" + filepath.Join(dir, "deck.log") + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != "blog.example.com:8080" {
		t.Fatalf("Server = %q", cfg.Server)
	}
	if !strings.HasSuffix(cfg.LogPath, "deck.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath)
	}
}

func TestLoad_BadTOMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("server = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on malformed config")
	}
}

func TestExpandPath_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := expandPath("~/x/y")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Fatalf("expandPath = %q", got)
	}
}
