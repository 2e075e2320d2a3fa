package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// TransactionSvcFacade manages transactions on a dashboard. ownerID is the
// dashboard being acted on; when it differs from actorID the operation is
// gated by the share authorizer (read: any accepted share, write: editor).
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, actorID, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, actorID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, actorID, ownerID string, req dto.ListTransactionsRequest) ([]domain.Transaction, string, error)
	UpdateTransaction(ctx context.Context, actorID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, actorID, transactionID string) error
}
