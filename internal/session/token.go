package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// tokenFile is the on-disk shape of the persisted session.
type tokenFile struct {
	Token string `toml:"token"`
}

const defaultTokenPath = "~/.config/blogdeck/session.toml"

// DefaultTokenPath returns the default persisted-session file path.
func DefaultTokenPath() string {
	return defaultTokenPath
}

// LoadToken reads the persisted bearer token from the given path. A missing
// or unreadable file yields an empty token; restore simply proceeds logged
// out in that case.
func LoadToken(path string) string {
	resolved, err := resolvePath(path)
	if err != nil {
		return ""
	}

	file, err := os.Open(resolved)
	if err != nil {
		return ""
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return ""
	}

	var tf tokenFile
	if err := toml.Unmarshal(bytes, &tf); err != nil {
		return ""
	}
	return strings.TrimSpace(tf.Token)
}

// SaveToken persists the bearer token, creating directories as needed.
func SaveToken(path, token string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	bytes, err := toml.Marshal(tokenFile{Token: token})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// ClearToken removes the persisted token. Clearing an absent file is not an
// error.
func ClearToken(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultTokenPath)
	}
	return expandPath(path)
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
