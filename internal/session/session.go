// Package session holds the bearer token and cached user profile shared by
// every outgoing request. Credentials are written at login, read at a single
// request-decoration point, and cleared atomically on logout or on the first
// 401 — duplicate 401s arriving concurrently must not fire the expiry hook
// twice.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"laban/internal/model"
)

// Session is an explicit credential context passed to the api layer, not
// ambient global state.
type Session struct {
	mu           sync.RWMutex
	jeton        string
	utilisateur  *model.Utilisateur
	onExpiration func()
	notifie      bool
}

// New returns an empty, unauthenticated session.
func New() *Session { return &Session{} }

// OnExpiration registers the hook fired when the session is invalidated by a
// 401 (the "clear and redirect to login" path). Fired at most once per token.
func (s *Session) OnExpiration(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpiration = fn
}

// Definir installs fresh credentials after a successful login and re-arms
// the expiry notification.
func (s *Session) Definir(jeton string, u *model.Utilisateur) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jeton = jeton
	s.utilisateur = u
	s.notifie = false
}

// Jeton returns the current bearer token; empty when unauthenticated.
func (s *Session) Jeton() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jeton
}

// Utilisateur returns the cached user profile, or nil.
func (s *Session) Utilisateur() *model.Utilisateur {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.utilisateur
}

// Authentifiee reports whether a token is currently installed.
func (s *Session) Authentifiee() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jeton != ""
}

// Effacer clears token and user (logout). Idempotent; does not fire the
// expiry hook.
func (s *Session) Effacer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jeton = ""
	s.utilisateur = nil
	s.notifie = true
}

// Invalider clears the session in response to a 401 and fires the expiry
// hook exactly once, however many 401s race in.
func (s *Session) Invalider() {
	s.mu.Lock()
	dejaNotifie := s.notifie || s.jeton == ""
	s.jeton = ""
	s.utilisateur = nil
	s.notifie = true
	fn := s.onExpiration
	s.mu.Unlock()

	if !dejaNotifie && fn != nil {
		fn()
	}
}

// ExpireA peeks at the token's exp claim without verifying the signature —
// the backend remains the authority, this is only for proactive display.
// Returns false when there is no token or no exp claim.
func (s *Session) ExpireA() (time.Time, bool) {
	s.mu.RLock()
	jeton := s.jeton
	s.mu.RUnlock()
	if jeton == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(jeton, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
