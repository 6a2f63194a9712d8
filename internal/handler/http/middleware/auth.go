package middleware

import (
	"errors"
	"net/http"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid, unrevoked access token and
// attaches the caller's session to the request context. It must run after
// jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service, authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			session, err := resumeSession(r, jwtService, authService)
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				err = auth.ErrNotAuthenticated
			}
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		}
		return http.HandlerFunc(hfn)
	}
}

// OptionalSession attaches the caller's session when a bearer token is sent
// and an anonymous session otherwise. A token that is sent but invalid is
// still rejected.
func OptionalSession(jwtService jwt.Service, authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			session, err := resumeSession(r, jwtService, authService)
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				session, err = auth.NewSession(), nil
			}
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		}
		return http.HandlerFunc(hfn)
	}
}

func resumeSession(r *http.Request, jwtService jwt.Service, authService auth.AuthService) (*auth.Session, error) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if errors.Is(err, jwtauth.ErrNoTokenFound) {
		return nil, err
	}
	if err != nil || token == nil {
		return nil, auth.ErrInvalidToken
	}

	if !jwt.IsAccessToken(claims) {
		return nil, auth.ErrInvalidToken
	}
	if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
		return nil, auth.ErrTokenRevoked
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, auth.ErrInvalidToken
	}
	return authService.Resume(r.Context(), userID)
}
