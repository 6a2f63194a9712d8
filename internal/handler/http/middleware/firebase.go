package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/firebase"
)

type firebaseIdentityCtxKey struct{}

// FirebaseAuth requires a Firebase ID token in the Authorization header and
// stores the verified identity in the request context.
func FirebaseAuth(verifier firebase.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Token missing"})
				return
			}
			idToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

			identity, err := verifier.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				slog.Warn("firebase token rejected", "error", err)
				response.JSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), firebaseIdentityCtxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FirebaseIdentityFromContext returns the identity set by FirebaseAuth.
func FirebaseIdentityFromContext(ctx context.Context) (*firebase.Identity, bool) {
	identity, ok := ctx.Value(firebaseIdentityCtxKey{}).(*firebase.Identity)
	return identity, ok && identity != nil
}
