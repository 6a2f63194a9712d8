package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login ID/email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
