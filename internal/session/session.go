// Package session holds the authenticated user identity and persists the
// bearer token across restarts in ~/.config/blogdeck/session.toml.
package session

import (
	"sync"

	"github.com/blogdeck/blogdeck/internal/api"
)

// Session is the single active authentication state. It is nil-user until a
// login, signup, or token restore succeeds.
type Session struct {
	mu    sync.RWMutex
	user  *api.User
	token string
}

// Set installs the authenticated user and token, replacing any previous
// session.
func (s *Session) Set(user api.User, token string) {
	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()
}

// Clear destroys the session.
func (s *Session) Clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
}

// Current returns the authenticated user, if any.
func (s *Session) Current() (api.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}

// Token returns the active bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Active reports whether a user is logged in.
func (s *Session) Active() bool {
	_, ok := s.Current()
	return ok
}
