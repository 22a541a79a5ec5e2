// Package session persists the operator's authentication token and derives
// an identity summary from it.
//
// The token is treated as opaque: decoding the identity reads the JWT
// claims without verifying the signature, which is the server's job. A
// token that fails to decode clears itself so the session falls back to
// logged out instead of failing the whole process.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotLoggedIn is returned when an identity is requested but no token is
// stored.
var ErrNotLoggedIn = errors.New("session: not logged in")

// ErrMalformedToken is returned when the stored token cannot be decoded.
// The store clears itself before returning it.
var ErrMalformedToken = errors.New("session: malformed token")

// Identity is the summary decoded from the token claims.
type Identity struct {
	ID       int64
	Email    string
	Username string
}

// Store owns the on-disk token. It is constructed explicitly and handed to
// the HTTP client and the navigation gate; there is no ambient global
// session. Safe for concurrent use.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewStore creates a store backed by the file at path. Call Open to load a
// previously saved token.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open loads the persisted token, if any. A missing file means logged out
// and is not an error.
func (s *Store) Open() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(string(data))
	s.mu.Unlock()
	return nil
}

// Save stores the token in memory and persists it.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear forgets the token and removes the persisted copy. Idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token returns the stored token, or "" when logged out. Implements the
// transport token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether a decodable token is present.
func (s *Store) LoggedIn() bool {
	_, err := s.Identity()
	return err == nil
}

// Identity decodes the identity summary from the token claims without
// verifying the signature. A malformed token clears the store and returns
// ErrMalformedToken.
func (s *Store) Identity() (*Identity, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		_ = s.Clear()
		return nil, ErrMalformedToken
	}

	return &Identity{
		ID:       claimInt64(claims, "id"),
		Email:    claimString(claims, "email"),
		Username: claimString(claims, "username"),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

func claimInt64(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	return 0
}
