package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/models"
	"github.com/blance-app/blance_backend/internal/utils/mapping"
)

// PgxUserRepository implements the ports UserRepositoryFacade using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const userColumns = `
	user_id, email, full_name, password_hash, preferences,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at,
	refresh_token_hash, refresh_token_expiry_time`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Email, &m.FullName, &m.PasswordHash, &m.Preferences,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
		&m.RefreshTokenHash, &m.RefreshTokenExpiryTime,
	)
	return m, err
}

// FindUserByID retrieves a specific user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user by id", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

// FindUserByEmail retrieves a user by email, used during login and signup.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL`

	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user by email", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

// FindProfilesByIDs batch-resolves profiles for the given ids. Missing ids
// are simply absent from the result map.
func (r *PgxUserRepository) FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.Profile, error) {
	profiles := make(map[string]domain.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	query := `SELECT user_id, full_name, email FROM users WHERE user_id = ANY($1) AND deleted_at IS NULL`

	rows, err := r.Pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find profiles", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan profile row", err)
		}
		profiles[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating profile rows", err)
	}
	return profiles, nil
}

// SearchProfiles matches full_name or email case-insensitively against the
// query, excluding the given user, capped at limit rows.
func (r *PgxUserRepository) SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]domain.Profile, error) {
	pattern := "%" + query + "%"
	sqlQuery := `
		SELECT user_id, full_name, email
		FROM users
		WHERE (full_name ILIKE $1 OR email ILIKE $1)
		  AND user_id <> $2
		  AND deleted_at IS NULL
		ORDER BY full_name, email
		LIMIT $3`

	rows, err := r.Pool.Query(ctx, sqlQuery, pattern, excludeUserID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search profiles", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan profile row", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating profile rows", err)
	}
	return profiles, nil
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, email, full_name, password_hash, preferences,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.FullName, m.PasswordHash, m.Preferences,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

// UpdateUser updates an existing user's profile details and preferences.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users SET
			full_name = $1, preferences = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5 AND deleted_at IS NULL`

	tag, err := r.Pool.Exec(ctx, query,
		m.FullName, m.Preferences, m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

// UpdateRefreshToken stores the hash and expiry of the user's current refresh
// token; empty hash clears both columns.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt *time.Time) error {
	var hashArg any
	if refreshTokenHash != "" {
		hashArg = refreshTokenHash
	}

	query := `
		UPDATE users SET
			refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = $3
		WHERE user_id = $4 AND deleted_at IS NULL`

	tag, err := r.Pool.Exec(ctx, query, hashArg, expiresAt, time.Now(), userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update refresh token", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}
