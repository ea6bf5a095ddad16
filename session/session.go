// Package session wraps the browser-persisted credentials (access token,
// refresh token and cached user profile) behind an injectable store. The
// authoritative session lives entirely client-side; this tier only reads and
// writes the persisted copy.
package session

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gpiedrahita-hub/infinite-herbs-admin/users"
)

// Storage keys as persisted in the browser
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Session is the credential bundle created on login and destroyed on logout
// or failed refresh.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *users.User
}

// Storage is the minimal persistence contract the store needs. The cookie
// implementation binds one request/response pair; tests use an in-memory
// fake.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Store exposes session operations over a Storage. A nil Storage means there
// is no execution context with storage access; every operation then degrades
// to absent/false instead of failing.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

func (s *Store) available() bool {
	return s != nil && s.storage != nil
}

// Save persists the session. The refresh token is only written when present;
// the profile write is independent of the token writes (last write wins, no
// transactional guarantee across the pair).
func (s *Store) Save(sess Session) {
	if !s.available() {
		return
	}
	s.storage.Set(KeyAccessToken, sess.AccessToken)
	if sess.RefreshToken != "" {
		s.storage.Set(KeyRefreshToken, sess.RefreshToken)
	}
	if sess.User != nil {
		if encoded, err := encodeUser(sess.User); err == nil {
			s.storage.Set(KeyUser, encoded)
		}
	}
}

// AccessToken returns the stored access token, if any
func (s *Store) AccessToken() (string, bool) {
	if !s.available() {
		return "", false
	}
	token, ok := s.storage.Get(KeyAccessToken)
	return token, ok && token != ""
}

// SetAccessToken overwrites just the access token, used after a refresh
func (s *Store) SetAccessToken(token string) {
	if !s.available() {
		return
	}
	s.storage.Set(KeyAccessToken, token)
}

// RefreshToken returns the stored refresh token, if any
func (s *Store) RefreshToken() (string, bool) {
	if !s.available() {
		return "", false
	}
	token, ok := s.storage.Get(KeyRefreshToken)
	return token, ok && token != ""
}

// CurrentUser returns the cached profile snapshot, or nil when none is
// stored or storage is unreachable.
func (s *Store) CurrentUser() *users.User {
	if !s.available() {
		return nil
	}
	encoded, ok := s.storage.Get(KeyUser)
	if !ok || encoded == "" {
		return nil
	}
	user, err := decodeUser(encoded)
	if err != nil {
		return nil
	}
	return user
}

// IsAuthenticated reports token presence only. It can disagree with
// CurrentUser if a crash left one write applied but not the other; the two
// are deliberately independent.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.AccessToken()
	return ok
}

// HasRole reports whether the cached user's role is in the given set.
// Always false when no user is cached.
func (s *Store) HasRole(roles ...users.RoleType) bool {
	return s.CurrentUser().HasRole(roles...)
}

// Clear removes every persisted credential
func (s *Store) Clear() {
	if !s.available() {
		return
	}
	s.storage.Delete(KeyAccessToken)
	s.storage.Delete(KeyRefreshToken)
	s.storage.Delete(KeyUser)
}

// ExpiresAt reads the exp claim of the stored access token without verifying
// the signature. Verification belongs to the backend; this is display-only
// and never feeds the route guard.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token, ok := s.AccessToken()
	if !ok {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// The profile is JSON under a base64url wrapper so it stays cookie-safe.

func encodeUser(u *users.User) (string, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeUser(encoded string) (*users.User, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	var u users.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
