package services

import (
	"context"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// TokenSvcFacade issues and validates the API's JWTs.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed access token and its expiry.
	GenerateAccessToken(userID string) (token string, expiresAt time.Time, err error)

	// GenerateRefreshToken returns an opaque refresh token and the hash to
	// persist against the user.
	GenerateRefreshToken() (token string, tokenHash string, err error)

	// HashRefreshToken maps a presented refresh token to its stored hash.
	HashRefreshToken(token string) string
}

// GoogleIdentity is the subset of a verified Google ID token the app uses.
type GoogleIdentity struct {
	Email    string
	FullName string
}

// GoogleOAuthSvcFacade exchanges authorization codes with Google and
// verifies the resulting identity.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForIdentity(ctx context.Context, code, redirectURI string) (*GoogleIdentity, error)
}

// AuthResult is a finished sign-in: the user plus issued tokens.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthSvcFacade orchestrates signup, login, Google sign-in and refresh.
type AuthSvcFacade interface {
	Signup(ctx context.Context, email, password, fullName string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	LoginWithGoogle(ctx context.Context, code, redirectURI string) (*AuthResult, error)
	Refresh(ctx context.Context, userID, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
}
