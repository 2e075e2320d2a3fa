package repositories

import (
	"context"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, used during login and signup.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProfileReader defines lookups against the public profile projection.
type ProfileReader interface {
	// FindProfilesByIDs batch-resolves profiles for the given distinct ids.
	// Missing ids are simply absent from the result map.
	FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.Profile, error)

	// SearchProfiles matches full_name or email case-insensitively against
	// the query, excluding the given user, capped at limit rows.
	SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]domain.Profile, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile details and preferences.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token; empty hash clears it.
	UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt *time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	ProfileReader
	UserWriter
}
