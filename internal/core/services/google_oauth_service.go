package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/platform/config"
)

// googleOAuthService exchanges authorization codes with Google and validates
// the resulting ID token to obtain a verified identity.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new Google OAuth service.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForIdentity exchanges the authorization code and validates the
// ID token Google returns alongside the access token. Only the verified
// token payload is trusted for identity.
func (s *googleOAuthService) ExchangeCodeForIdentity(ctx context.Context, code, redirectURI string) (*portssvc.GoogleIdentity, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	conf := s.oauth2Config
	if redirectURI != "" && redirectURI != conf.RedirectURL {
		clone := *conf
		clone.RedirectURL = redirectURI
		conf = &clone
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response is missing id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("google ID token has no email claim")
	}
	name, _ := payload.Claims["name"].(string)

	return &portssvc.GoogleIdentity{Email: email, FullName: name}, nil
}
