package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// BudgetSvcFacade manages budgets and reports spend against them.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error

	// GetBudgetProgress computes current-period spend for every active
	// budget, converted into each budget's currency.
	GetBudgetProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error)
}
