package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
)

// PgxCategoryRepository implements the ports CategoryRepositoryFacade using pgxpool.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const categoryColumns = `
	category_id, user_id, category_name, is_expense, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// FindCategoryByID retrieves a category by id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.UserCategory, error) {
	query := `SELECT` + categoryColumns + ` FROM user_categories WHERE category_id = $1`

	var c domain.UserCategory
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&c.CategoryID, &c.UserID, &c.CategoryName, &c.IsExpense, &c.IsActive,
		&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find category", err)
	}
	return &c, nil
}

// ListCategoriesByUser returns the user's categories ordered by name.
func (r *PgxCategoryRepository) ListCategoriesByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.UserCategory, error) {
	query := `SELECT` + categoryColumns + ` FROM user_categories WHERE user_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY category_name`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	defer rows.Close()

	var categories []domain.UserCategory
	for rows.Next() {
		var c domain.UserCategory
		err := rows.Scan(
			&c.CategoryID, &c.UserID, &c.CategoryName, &c.IsExpense, &c.IsActive,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating category rows", err)
	}
	return categories, nil
}

// SaveCategory persists a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.UserCategory) error {
	query := `
		INSERT INTO user_categories (
			category_id, user_id, category_name, is_expense, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID, category.UserID, category.CategoryName, category.IsExpense, category.IsActive,
		category.CreatedAt, category.CreatedBy, category.LastUpdatedAt, category.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save category", err)
	}
	return nil
}

// UpdateCategory updates a category's name, kind and active flag.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.UserCategory) error {
	query := `
		UPDATE user_categories SET
			category_name = $1, is_expense = $2, is_active = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE category_id = $6`

	tag, err := r.Pool.Exec(ctx, query,
		category.CategoryName, category.IsExpense, category.IsActive,
		category.LastUpdatedAt, category.LastUpdatedBy, category.CategoryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}
