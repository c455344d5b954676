// Package session is the single credential store shared by every resource
// store. The bearer token is persisted to a cookie-style file with an expiry,
// the authenticated user object to a second file. Any consumer that sees an
// HTTP 401 clears the session here, and every subscriber is notified, so
// stores never coordinate credential state among themselves.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/crakton/cashworxs-admin-sub000/internal/common/errors"
)

const (
	tokenFile = "token.json"
	userFile  = "user.json"
)

// storedToken is the on-disk token format.
type storedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Session holds the bearer token and user object for the signed-in admin.
type Session struct {
	mu          sync.RWMutex
	dir         string
	ttl         time.Duration
	subscribers []func()

	// in-memory mirror of the files, loaded lazily
	loaded bool
	token  storedToken
}

// New creates a session rooted at dir. Tokens expire ttl after SetCredentials.
func New(dir string, ttl time.Duration) (*Session, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session dir: %w", err)
	}
	return &Session{dir: dir, ttl: ttl}, nil
}

// Token returns the stored bearer token, or a NO_TOKEN error when none is
// stored or the stored one has expired.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return "", errors.NewNoTokenError()
	}
	if s.token.Token == "" {
		return "", errors.NewNoTokenError()
	}
	if !s.token.ExpiresAt.IsZero() && time.Now().After(s.token.ExpiresAt) {
		s.clearLocked()
		return "", errors.NewNoTokenError()
	}
	return s.token.Token, nil
}

// SetCredentials persists a fresh token and the raw user object returned by
// the login endpoint.
func (s *Session) SetCredentials(token string, user interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = storedToken{
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.loaded = true

	data, err := json.Marshal(s.token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	if user != nil {
		userData, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}
		if err := os.WriteFile(filepath.Join(s.dir, userFile), userData, 0o600); err != nil {
			return fmt.Errorf("failed to write user file: %w", err)
		}
	}
	return nil
}

// User unmarshals the persisted user object into out. Returns NO_TOKEN when
// nothing is persisted.
func (s *Session) User(out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return errors.NewNoTokenError()
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal stored user: %w", err)
	}
	return nil
}

// Clear deletes the persisted credential and notifies every subscriber. It is
// called on explicit logout and by the HTTP client on any 401.
func (s *Session) Clear() {
	s.mu.Lock()
	s.clearLocked()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Subscribe registers fn to run whenever the session is cleared.
func (s *Session) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Authenticated reports whether a non-expired token is stored.
func (s *Session) Authenticated() bool {
	_, err := s.Token()
	return err == nil
}

func (s *Session) loadLocked() error {
	if s.loaded {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &s.token); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *Session) clearLocked() {
	s.token = storedToken{}
	s.loaded = true
	os.Remove(filepath.Join(s.dir, tokenFile))
	os.Remove(filepath.Join(s.dir, userFile))
}
