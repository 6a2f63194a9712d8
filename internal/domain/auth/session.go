package auth

import (
	"context"
	"sync"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
)

// Session holds the authenticated user for one caller. The zero value is an
// anonymous session.
type Session struct {
	mu   sync.RWMutex
	user *user.User
}

func NewSession() *Session {
	return &Session{}
}

// NewSessionFor returns a session already bound to u.
func NewSessionFor(u user.User) *Session {
	return &Session{user: &u}
}

// User returns a copy of the current user, or nil when anonymous.
func (s *Session) User() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Can reports whether the current user's role grants permission. Anonymous
// sessions have no permissions.
func (s *Session) Can(permission user.Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	return s.user.Can(permission)
}

func (s *Session) set(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Bind sets the current user.
func (s *Session) Bind(u user.User) {
	s.set(&u)
}

// Clear drops the current user.
func (s *Session) Clear() {
	s.set(nil)
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext returns the request's session, or an anonymous one.
func SessionFromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionCtxKey{}).(*Session); ok && s != nil {
		return s
	}
	return NewSession()
}
