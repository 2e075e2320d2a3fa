package services

import (
	"fmt"
	"time"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/platform/config"
	"github.com/blance-app/blance_backend/internal/utils"
)

// tokenService issues access and refresh tokens per application config.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a signed JWT access token for the user.
func (s *tokenService) GenerateAccessToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generating access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates an opaque refresh token and the hash that
// gets persisted against the user.
func (s *tokenService) GenerateRefreshToken() (string, string, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", "", fmt.Errorf("generating refresh token: %w", err)
	}
	return raw, utils.HashRefreshToken(raw), nil
}

// HashRefreshToken maps a presented refresh token to its stored hash.
func (s *tokenService) HashRefreshToken(token string) string {
	return utils.HashRefreshToken(token)
}
