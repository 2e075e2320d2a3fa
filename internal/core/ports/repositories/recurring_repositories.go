package repositories

import (
	"context"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// RecurringReader defines read operations for recurring transaction templates.
type RecurringReader interface {
	FindRecurringByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error)
	ListRecurringByUser(ctx context.Context, userID string) ([]domain.RecurringTransaction, error)

	// ListDueRecurring returns active templates whose next occurrence is at
	// or before the given time, oldest first, for the worker to process.
	ListDueRecurring(ctx context.Context, asOf time.Time, limit int) ([]domain.RecurringTransaction, error)
}

// RecurringWriter defines write operations for recurring transaction templates.
type RecurringWriter interface {
	SaveRecurring(ctx context.Context, recurring domain.RecurringTransaction) error
	UpdateRecurring(ctx context.Context, recurring domain.RecurringTransaction) error
	DeleteRecurring(ctx context.Context, recurringID string) error

	// SaveOccurrence inserts a materialized transaction and persists the
	// advanced schedule in one database transaction, so a booked occurrence
	// can never be re-booked after a crash between the two writes.
	SaveOccurrence(ctx context.Context, txn domain.Transaction, recurring domain.RecurringTransaction) error
}

// RecurringRepositoryFacade combines all recurring repository interfaces.
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
}
