// Package config loads the blogdeck client configuration from
// ~/.config/blogdeck/config.toml, falling back to defaults when the file is
// missing.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings blogdeck needs.
type Config struct {
	Server    string // API and push endpoint, host:port or URL
	LogPath   string // debug log file
	TokenPath string // persisted session file
}

const (
	defaultConfigPath = "~/.config/blogdeck/config.toml"
	defaultServer     = "127.0.0.1:4000"
	defaultLogPath    = "~/.local/state/blogdeck/blogdeck.log"
)

// Load locates and parses the config file, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Server: defaultServer, LogPath: mustExpand(defaultLogPath)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Server    string `toml:"server"`
		LogPath   string `toml:"log_path"`
		TokenPath string `toml:"token_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if server := strings.TrimSpace(raw.Server); server != "" {
		cfg.Server = server
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if tokenPath := strings.TrimSpace(raw.TokenPath); tokenPath != "" {
		cfg.TokenPath = mustExpand(tokenPath)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
