// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/oauth2/google"
)

const (
	// PublicKeysURL serves the JWKS that signs Firebase ID tokens.
	PublicKeysURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"
	issuerPrefix  = "https://securetoken.google.com/"
	clockSkew     = 30 * time.Second
	minRefresh    = 15 * time.Minute
)

var (
	ErrProjectIDRequired = errors.New("firebase project id is required")
	ErrMissingSubject    = errors.New("firebase token has no subject")
)

// Identity is the decoded subject of a verified ID token.
type Identity struct {
	UID           string
	Email         string
	EmailVerified bool
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// TokenVerifier verifies a raw ID token and returns the identity it asserts.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

type Verifier struct {
	projectID string
	keys      jwk.Set
}

// NewVerifier verifies tokens against keys for the given project.
func NewVerifier(projectID string, keys jwk.Set) (*Verifier, error) {
	if projectID == "" {
		return nil, ErrProjectIDRequired
	}
	return &Verifier{projectID: projectID, keys: keys}, nil
}

// NewRemoteVerifier fetches Google's signing keys and keeps them refreshed in
// the background until ctx is done.
func NewRemoteVerifier(ctx context.Context, projectID string) (*Verifier, error) {
	if projectID == "" {
		return nil, ErrProjectIDRequired
	}
	cache := jwk.NewCache(ctx)
	if err := cache.Register(PublicKeysURL, jwk.WithMinRefreshInterval(minRefresh)); err != nil {
		return nil, fmt.Errorf("register firebase jwks: %w", err)
	}
	if _, err := cache.Refresh(ctx, PublicKeysURL); err != nil {
		return nil, fmt.Errorf("fetch firebase jwks: %w", err)
	}
	return NewVerifier(projectID, jwk.NewCachedSet(cache, PublicKeysURL))
}

func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	token, err := jwt.Parse([]byte(idToken),
		jwt.WithKeySet(v.keys, jws.WithInferAlgorithmFromKey(true)),
		jwt.WithValidate(true),
		jwt.WithIssuer(issuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
		jwt.WithAcceptableSkew(clockSkew),
	)
	if err != nil {
		return nil, fmt.Errorf("verify firebase id token: %w", err)
	}
	if token.Subject() == "" {
		return nil, ErrMissingSubject
	}

	identity := &Identity{
		UID:       token.Subject(),
		IssuedAt:  token.IssuedAt(),
		ExpiresAt: token.Expiration(),
	}
	if email, ok := token.Get("email"); ok {
		identity.Email, _ = email.(string)
	}
	if verified, ok := token.Get("email_verified"); ok {
		identity.EmailVerified, _ = verified.(bool)
	}
	return identity, nil
}

// ProjectIDFromCredentialsFile reads the project id from a service account
// JSON file.
func ProjectIDFromCredentialsFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read firebase credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data)
	if err != nil {
		return "", fmt.Errorf("parse firebase credentials: %w", err)
	}
	if creds.ProjectID == "" {
		return "", ErrProjectIDRequired
	}
	return creds.ProjectID, nil
}

// UnavailableVerifier rejects every token. It stands in when no Firebase
// project is configured so that GET /profile answers 401 instead of 404.
type UnavailableVerifier struct {
	Reason error
}

func (u UnavailableVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	return nil, fmt.Errorf("firebase verification unavailable: %w", u.Reason)
}
