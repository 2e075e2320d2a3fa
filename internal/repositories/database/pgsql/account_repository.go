package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
)

// PgxAccountRepository implements the ports AccountRepositoryFacade using pgxpool.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const accountColumns = `
	account_id, user_id, account_name, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// FindAccountByID retrieves an account by id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.UserAccount, error) {
	query := `SELECT` + accountColumns + ` FROM user_accounts WHERE account_id = $1`

	var a domain.UserAccount
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&a.AccountID, &a.UserID, &a.AccountName, &a.IsActive,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find account", err)
	}
	return &a, nil
}

// ListAccountsByUser returns the user's accounts ordered by name.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.UserAccount, error) {
	query := `SELECT` + accountColumns + ` FROM user_accounts WHERE user_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY account_name`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}
	defer rows.Close()

	var accounts []domain.UserAccount
	for rows.Next() {
		var a domain.UserAccount
		err := rows.Scan(
			&a.AccountID, &a.UserID, &a.AccountName, &a.IsActive,
			&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating account rows", err)
	}
	return accounts, nil
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.UserAccount) error {
	query := `
		INSERT INTO user_accounts (
			account_id, user_id, account_name, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.Pool.Exec(ctx, query,
		account.AccountID, account.UserID, account.AccountName, account.IsActive,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save account", err)
	}
	return nil
}

// UpdateAccount updates an account's name and active flag.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.UserAccount) error {
	query := `
		UPDATE user_accounts SET
			account_name = $1, is_active = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $5`

	tag, err := r.Pool.Exec(ctx, query,
		account.AccountName, account.IsActive,
		account.LastUpdatedAt, account.LastUpdatedBy, account.AccountID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account not found")
	}
	return nil
}
