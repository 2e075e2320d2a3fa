package services

import (
	"context"
	"fmt"
	"time"

	"github.com/blance-app/blance_backend/internal/apperrors"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
	"github.com/blance-app/blance_backend/internal/utils"
)

// authService orchestrates sign-in flows on top of the user, token and
// Google OAuth services.
type authService struct {
	BaseService
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleOAuth  portssvc.GoogleOAuthSvcFacade
}

// NewAuthService creates a new auth orchestration service.
func NewAuthService(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, googleOAuth portssvc.GoogleOAuthSvcFacade) *authService {
	return &authService{
		userService:  userService,
		tokenService: tokenService,
		googleOAuth:  googleOAuth,
	}
}

// issueTokens builds a finished AuthResult for the user and persists the
// refresh token hash.
func (s *authService) issueTokens(ctx context.Context, userID string) (string, string, time.Time, error) {
	access, expiresAt, err := s.tokenService.GenerateAccessToken(userID)
	if err != nil {
		return "", "", time.Time{}, err
	}
	refresh, refreshHash, err := s.tokenService.GenerateRefreshToken()
	if err != nil {
		return "", "", time.Time{}, err
	}
	if err := s.userService.SetRefreshToken(ctx, userID, refreshHash); err != nil {
		return "", "", time.Time{}, err
	}
	return access, refresh, expiresAt, nil
}

// Signup registers a user and signs them in.
func (s *authService) Signup(ctx context.Context, email, password, fullName string) (*portssvc.AuthResult, error) {
	user, err := s.userService.SignupUser(ctx, dto.SignupRequest{Email: email, Password: password, FullName: fullName})
	if err != nil {
		return nil, err
	}
	access, refresh, expiresAt, err := s.issueTokens(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &portssvc.AuthResult{User: user, AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// Login verifies credentials and issues tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*portssvc.AuthResult, error) {
	user, err := s.userService.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	access, refresh, expiresAt, err := s.issueTokens(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &portssvc.AuthResult{User: user, AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// LoginWithGoogle exchanges an authorization code, resolves or creates the
// user and issues tokens.
func (s *authService) LoginWithGoogle(ctx context.Context, code, redirectURI string) (*portssvc.AuthResult, error) {
	identity, err := s.googleOAuth.ExchangeCodeForIdentity(ctx, code, redirectURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	user, err := s.userService.GetOrCreateGoogleUser(ctx, identity.Email, identity.FullName)
	if err != nil {
		return nil, err
	}
	access, refresh, expiresAt, err := s.issueTokens(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &portssvc.AuthResult{User: user, AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// Refresh validates the presented refresh token and rotates it.
func (s *authService) Refresh(ctx context.Context, userID, refreshToken string) (*portssvc.AuthResult, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown user", apperrors.ErrUnauthorized)
	}
	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, fmt.Errorf("%w: no refresh token on record", apperrors.ErrUnauthorized)
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, fmt.Errorf("%w: refresh token expired", apperrors.ErrUnauthorized)
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: refresh token mismatch", apperrors.ErrUnauthorized)
	}

	access, refresh, expiresAt, err := s.issueTokens(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	return &portssvc.AuthResult{User: user, AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

// Logout clears the stored refresh token.
func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.userService.ClearRefreshToken(ctx, userID)
}
