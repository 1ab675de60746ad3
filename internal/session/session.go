package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cmsdesk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when an operation needs a token and none is stored.
var ErrNoToken = errors.New("no token found")

// Claims is the subset of the backend token's claims the client cares about.
// The token is decoded without signature verification; the backend remains
// the only authority on whether it is valid.
type Claims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim lies before now.
// Tokens without an exp claim never expire client-side.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Session is the explicit authentication state passed through the application.
type Session struct {
	store Store

	mu   sync.RWMutex
	user *entity.User
}

// New creates a Session over the given store.
func New(store Store) *Session {
	return &Session{store: store}
}

// Token returns the stored bearer token, if any.
func (s *Session) Token() (string, bool) {
	return s.store.Get()
}

// Login records a freshly issued token and the user it belongs to.
func (s *Session) Login(token string, user *entity.User) error {
	if token == "" {
		return fmt.Errorf("store token: %w", ErrNoToken)
	}
	if err := s.store.Set(token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	s.SetUser(user)
	return nil
}

// Logout drops the token and the cached user.
func (s *Session) Logout() error {
	s.SetUser(nil)
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// User returns the cached profile of the signed-in user, or nil.
func (s *Session) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser caches the signed-in user's profile.
func (s *Session) SetUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Claims decodes the stored token's claims.
func (s *Session) Claims() (Claims, error) {
	token, ok := s.store.Get()
	if !ok {
		return Claims{}, ErrNoToken
	}
	return ParseClaims(token)
}

// ParseClaims decodes the standard claims of a JWT without verifying its signature.
func ParseClaims(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	var claims Claims
	if id, ok := mapClaims["id"].(float64); ok {
		claims.UserID = int64(id)
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession adds a session to the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// FromContext retrieves the session from the context, or nil if none was set.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionContextKey).(*Session); ok {
		return s
	}
	return nil
}
