package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// UserReaderSvc defines read operations for users and profiles.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// SearchProfiles finds users matching the query by name or email,
	// excluding the searching user, for the invite picker.
	SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]domain.Profile, error)
}

// UserWriterSvc defines account creation and profile updates.
type UserWriterSvc interface {
	// SignupUser creates a local-credentials user with a hashed password.
	SignupUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// AuthenticateUser verifies email and password and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetOrCreateGoogleUser resolves the user for a verified Google
	// identity, creating one on first sign-in.
	GetOrCreateGoogleUser(ctx context.Context, email, fullName string) (*domain.User, error)

	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	SetRefreshToken(ctx context.Context, userID, refreshTokenHash string) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
