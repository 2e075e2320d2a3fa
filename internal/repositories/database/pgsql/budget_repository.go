package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
)

// PgxBudgetRepository implements the ports BudgetRepositoryFacade using pgxpool.
type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const budgetColumns = `
	budget_id, user_id, category, amount, currency_code, period, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// FindBudgetByID retrieves a budget by id.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT` + budgetColumns + ` FROM budgets WHERE budget_id = $1`

	var b domain.Budget
	err := r.Pool.QueryRow(ctx, query, budgetID).Scan(
		&b.BudgetID, &b.UserID, &b.Category, &b.Amount, &b.CurrencyCode, &b.Period, &b.IsActive,
		&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find budget", err)
	}
	return &b, nil
}

// ListBudgetsByUser returns the user's budgets, overall budget first, then by category.
func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `SELECT` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY category NULLS FIRST, created_at`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list budgets", err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var b domain.Budget
		err := rows.Scan(
			&b.BudgetID, &b.UserID, &b.Category, &b.Amount, &b.CurrencyCode, &b.Period, &b.IsActive,
			&b.CreatedAt, &b.CreatedBy, &b.LastUpdatedAt, &b.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating budget rows", err)
	}
	return budgets, nil
}

// SaveBudget persists a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (
			budget_id, user_id, category, amount, currency_code, period, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.Pool.Exec(ctx, query,
		budget.BudgetID, budget.UserID, budget.Category, budget.Amount,
		budget.CurrencyCode, budget.Period, budget.IsActive,
		budget.CreatedAt, budget.CreatedBy, budget.LastUpdatedAt, budget.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save budget", err)
	}
	return nil
}

// UpdateBudget updates a budget's amount, currency, period and active flag.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		UPDATE budgets SET
			amount = $1, currency_code = $2, period = $3, is_active = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE budget_id = $7`

	tag, err := r.Pool.Exec(ctx, query,
		budget.Amount, budget.CurrencyCode, budget.Period, budget.IsActive,
		budget.LastUpdatedAt, budget.LastUpdatedBy, budget.BudgetID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget not found")
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget not found")
	}
	return nil
}
