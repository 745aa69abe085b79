package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blogdeck/blogdeck/internal/api"
)

func TestSession_SetCurrentClear(t *testing.T) {
	var s Session

	if _, ok := s.Current(); ok {
		t.Fatal("fresh session reports a user")
	}
	if s.Active() {
		t.Fatal("fresh session reports active")
	}

	user := api.User{ID: "u1", Username: "ana"}
	s.Set(user, "tok-1")

	got, ok := s.Current()
	if !ok || got.Username != "ana" {
		t.Fatalf("Current = %#v, %v", got, ok)
	}
	if s.Token() != "tok-1" {
		t.Fatalf("Token = %q, want tok-1", s.Token())
	}

	s.Clear()
	if s.Active() || s.Token() != "" {
		t.Fatal("session not empty after Clear")
	}
}

func TestTokenPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")

	if got := LoadToken(path); got != "" {
		t.Fatalf("LoadToken on missing file = %q, want empty", got)
	}

	if err := SaveToken(path, "tok-abc"); err != nil {
		t.Fatalf("SaveToken returned error: %v", err)
	}
	if got := LoadToken(path); got != "tok-abc" {
		t.Fatalf("LoadToken = %q, want tok-abc", got)
	}

	// The session file holds credentials; it must not be world-readable.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat session file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("session file mode = %o, want 600", perm)
	}

	if err := ClearToken(path); err != nil {
		t.Fatalf("ClearToken returned error: %v", err)
	}
	if got := LoadToken(path); got != "" {
		t.Fatalf("LoadToken after clear = %q, want empty", got)
	}

	// Clearing twice is fine.
	if err := ClearToken(path); err != nil {
		t.Fatalf("second ClearToken returned error: %v", err)
	}
}

func TestLoadToken_GracefulOnGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte("not toml at all ["), 0o600); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if got := LoadToken(path); got != "" {
		t.Fatalf("LoadToken on garbage = %q, want empty", got)
	}
}
