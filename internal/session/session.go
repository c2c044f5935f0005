// Package session manages the locally persisted bearer credential and the
// identity claims decoded from it. The token is treated as opaque except for
// its claims; no signature verification happens on the client side.
package session

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/codescout/codescout/schema"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for session state.
var (
	// ErrNoSession means no credential is stored locally.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired means the stored credential's expiry has passed.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnauthorized means the account API rejected the credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// ExpiredNotice is shown when a stale credential is discarded.
const ExpiredNotice = "Session expired. Please log in again."

// Store holds the current session and persists the credential to disk so it
// survives across invocations.
type Store struct {
	mu     sync.RWMutex
	path   string
	token  string
	claims schema.SessionClaims
	notice string
}

// NewStore creates a session store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DecodeClaims extracts identity claims from a bearer token without
// verifying its signature. Verification is the account API's job; the
// client only needs the identity and expiry fields.
func DecodeClaims(tokenString string) (schema.SessionClaims, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return schema.SessionClaims{}, fmt.Errorf("cannot decode token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return schema.SessionClaims{}, errors.New("invalid token claims")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return schema.SessionClaims{}, errors.New("userId claim is missing or not a string")
	}
	email, _ := claims["email"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return schema.SessionClaims{}, errors.New("exp claim is missing or invalid")
	}

	return schema.SessionClaims{
		UserID: userID,
		Email:  email,
		Expiry: exp.Time,
	}, nil
}

// Bootstrap loads the persisted credential, discarding it when expired.
// A discarded credential raises the expired notice and returns
// ErrSessionExpired; a missing one returns ErrNoSession.
func (s *Store) Bootstrap(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoSession
		}
		return fmt.Errorf("cannot read session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return ErrNoSession
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		// A corrupt credential is as good as no credential
		_ = os.Remove(s.path)
		return ErrNoSession
	}

	if claims.Expired(now) {
		_ = os.Remove(s.path)
		s.notice = ExpiredNotice
		return ErrSessionExpired
	}

	s.token = token
	s.claims = claims
	return nil
}

// SetSession stores a new credential, replacing any prior one. A credential
// whose claims cannot be decoded is still installed and persisted; it simply
// carries no usable identity, and the server's next response settles whether
// it is accepted. Expiry is enforced by Bootstrap and the 401 interceptor.
func (s *Store) SetSession(token string) error {
	claims, err := DecodeClaims(token)
	if err != nil {
		claims = schema.SessionClaims{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("cannot persist session: %w", err)
	}
	s.token = token
	s.claims = claims
	return nil
}

// Logout clears the in-memory session and the persisted credential.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.claims = schema.SessionClaims{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove session file: %w", err)
	}
	return nil
}

// Active reports whether a session is currently loaded.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the bearer credential, or ErrNoSession when logged out.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	return s.token, nil
}

// Claims returns the identity claims, or ErrNoSession when logged out.
func (s *Store) Claims() (schema.SessionClaims, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return schema.SessionClaims{}, ErrNoSession
	}
	return s.claims, nil
}

// RaiseNotice records a user-facing notice about the session state.
func (s *Store) RaiseNotice(notice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = notice
}

// TakeNotice returns and clears the pending notice, if any.
func (s *Store) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice := s.notice
	s.notice = ""
	return notice
}

// expire drops the session after a rejected credential. Used by the
// transport on a 401 response.
func (s *Store) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.claims = schema.SessionClaims{}
	s.notice = ExpiredNotice
	_ = os.Remove(s.path)
}
