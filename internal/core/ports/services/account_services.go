package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// AccountSvcFacade manages a user's named accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.UserAccount, error)
	ListAccounts(ctx context.Context, userID string, activeOnly bool) ([]domain.UserAccount, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.UserAccount, error)
}

// CategorySvcFacade manages a user's transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.UserCategory, error)
	ListCategories(ctx context.Context, userID string, activeOnly bool) ([]domain.UserCategory, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.UserCategory, error)
}
