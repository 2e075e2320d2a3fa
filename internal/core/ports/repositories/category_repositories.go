package repositories

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// CategoryReader defines read operations for user categories.
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.UserCategory, error)
	ListCategoriesByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.UserCategory, error)
}

// CategoryWriter defines write operations for user categories.
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.UserCategory) error
	UpdateCategory(ctx context.Context, category domain.UserCategory) error
}

// CategoryRepositoryFacade combines all category repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
