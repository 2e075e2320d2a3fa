package repositories

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// AccountReader defines read operations for user accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.UserAccount, error)
	ListAccountsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.UserAccount, error)
}

// AccountWriter defines write operations for user accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.UserAccount) error
	UpdateAccount(ctx context.Context, account domain.UserAccount) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
