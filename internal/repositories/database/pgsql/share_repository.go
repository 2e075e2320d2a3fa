package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
)

// PgxShareRepository implements the ports ShareRepositoryFacade using pgxpool.
type PgxShareRepository struct {
	BaseRepository
}

func newPgxShareRepository(db *pgxpool.Pool) *PgxShareRepository {
	return &PgxShareRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const shareColumns = `share_id, owner_id, shared_with_user_id, role, status, created_at`

func scanShare(row pgx.Row) (*domain.DashboardShare, error) {
	var s domain.DashboardShare
	err := row.Scan(&s.ShareID, &s.OwnerID, &s.SharedWithUserID, &s.Role, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindShareByID retrieves a share by its synthetic id.
func (r *PgxShareRepository) FindShareByID(ctx context.Context, shareID string) (*domain.DashboardShare, error) {
	query := `SELECT ` + shareColumns + ` FROM dashboard_shares WHERE share_id = $1`

	share, err := scanShare(r.Pool.QueryRow(ctx, query, shareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("share not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find share by id", err)
	}
	return share, nil
}

// FindShareByParties retrieves the most recent share row for the
// (owner, invitee) pair. Rejected rows stay behind as history, so the newest
// row is the one that decides whether the pair is occupied.
func (r *PgxShareRepository) FindShareByParties(ctx context.Context, ownerID, sharedWithUserID string) (*domain.DashboardShare, error) {
	query := `
		SELECT ` + shareColumns + `
		FROM dashboard_shares
		WHERE owner_id = $1 AND shared_with_user_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	share, err := scanShare(r.Pool.QueryRow(ctx, query, ownerID, sharedWithUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("share not found for parties")
		}
		return nil, apperrors.NewAppError(500, "failed to find share by parties", err)
	}
	return share, nil
}

func (r *PgxShareRepository) listShares(ctx context.Context, query, arg string) ([]domain.DashboardShare, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list shares", err)
	}
	defer rows.Close()

	var shares []domain.DashboardShare
	for rows.Next() {
		var s domain.DashboardShare
		if err := rows.Scan(&s.ShareID, &s.OwnerID, &s.SharedWithUserID, &s.Role, &s.Status, &s.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan share row", err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating share rows", err)
	}
	return shares, nil
}

// ListSharesByOwner returns all shares the user has sent, newest first.
func (r *PgxShareRepository) ListSharesByOwner(ctx context.Context, ownerID string) ([]domain.DashboardShare, error) {
	query := `SELECT ` + shareColumns + ` FROM dashboard_shares WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.listShares(ctx, query, ownerID)
}

// ListSharesBySharedWith returns all shares the user has received, newest first.
func (r *PgxShareRepository) ListSharesBySharedWith(ctx context.Context, sharedWithUserID string) ([]domain.DashboardShare, error) {
	query := `SELECT ` + shareColumns + ` FROM dashboard_shares WHERE shared_with_user_id = $1 ORDER BY created_at DESC`
	return r.listShares(ctx, query, sharedWithUserID)
}

// SaveShare inserts a new share row.
func (r *PgxShareRepository) SaveShare(ctx context.Context, share domain.DashboardShare) error {
	query := `
		INSERT INTO dashboard_shares (share_id, owner_id, shared_with_user_id, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	createdAt := share.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.Pool.Exec(ctx, query, share.ShareID, share.OwnerID, share.SharedWithUserID, share.Role, share.Status, createdAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save share", err)
	}
	return nil
}

// UpdateShareStatus sets the status of the share with the given id.
func (r *PgxShareRepository) UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE dashboard_shares SET status = $1 WHERE share_id = $2`, status, shareID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update share status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("share not found")
	}
	return nil
}

// UpdateShareRole sets the role of the share with the given id.
func (r *PgxShareRepository) UpdateShareRole(ctx context.Context, shareID string, role domain.ShareRole) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE dashboard_shares SET role = $1 WHERE share_id = $2`, role, shareID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update share role", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("share not found")
	}
	return nil
}

// DeleteShare hard-deletes the share row.
func (r *PgxShareRepository) DeleteShare(ctx context.Context, shareID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM dashboard_shares WHERE share_id = $1`, shareID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete share", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("share not found")
	}
	return nil
}
