package auth

import (
	"context"
)

type AuthService interface {
	// Login authenticates the caller and binds the user to session.
	Login(ctx context.Context, session *Session, req LoginRequest) (TokenResponse, error)
	Signup(ctx context.Context, session *Session, req SignupRequest) (SignupResponse, error)
	// Logout clears session and revokes token when it is non-empty.
	Logout(ctx context.Context, session *Session, token string) error
	// Resume rebuilds a session for the user a verified token was issued to.
	Resume(ctx context.Context, userID string) (*Session, error)
}
