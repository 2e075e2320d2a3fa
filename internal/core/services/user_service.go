package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	"github.com/blance-app/blance_backend/internal/dto"
	"github.com/blance-app/blance_backend/internal/utils"
)

// userService manages user accounts, profiles and preferences.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *userService {
	return &userService{userRepo: userRepo}
}

// GetUserByID retrieves a user by id.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their (normalized) email address.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupUser creates a local-credentials user. The email must be unused.
func (s *userService) SignupUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email is already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}
	s.LogInfo(ctx, "user signed up", "user_id", user.UserID)
	return &user, nil
}

// AuthenticateUser verifies email and password. Unknown email and wrong
// password return the same error so probes learn nothing.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// GetOrCreateGoogleUser resolves a verified Google identity to a user,
// creating a passwordless account on first sign-in.
func (s *userService) GetOrCreateGoogleUser(ctx context.Context, email, fullName string) (*domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("finding user by email: %w", err)
	}

	now := time.Now()
	created := domain.User{
		UserID:   uuid.NewString(),
		Email:    email,
		FullName: strings.TrimSpace(fullName),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	created.CreatedBy = created.UserID
	created.LastUpdatedBy = created.UserID

	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, fmt.Errorf("saving google user: %w", err)
	}
	s.LogInfo(ctx, "user created via google sign-in", "user_id", created.UserID)
	return &created, nil
}

// UpdateProfile changes the caller's display name or preferences.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finding user %s: %w", userID, err)
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.DisplayCurrency != nil {
		user.Preferences.DisplayCurrency = strings.ToUpper(*req.DisplayCurrency)
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

// SearchProfiles finds invite candidates by name or email fragment.
func (s *userService) SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]domain.Profile, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, fmt.Errorf("%w: search query needs at least 2 characters", apperrors.ErrValidation)
	}
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	profiles, err := s.userRepo.SearchProfiles(ctx, query, excludeUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("searching profiles: %w", err)
	}
	return profiles, nil
}

// SetRefreshToken stores the hash of the user's current refresh token.
func (s *userService) SetRefreshToken(ctx context.Context, userID, refreshTokenHash string) error {
	expiresAt := time.Now().Add(utils.RefreshTokenValidity)
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, &expiresAt); err != nil {
		return fmt.Errorf("storing refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken invalidates the user's refresh token on logout.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		return fmt.Errorf("clearing refresh token: %w", err)
	}
	return nil
}
