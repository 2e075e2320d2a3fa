package services

import (
	"context"
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// RecurringSvcFacade manages recurring transaction templates.
type RecurringSvcFacade interface {
	CreateRecurring(ctx context.Context, userID string, req dto.CreateRecurringRequest) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, userID string) ([]domain.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, userID, recurringID string, req dto.UpdateRecurringRequest) (*domain.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, userID, recurringID string) error
}

// RecurringProcessorSvc is the worker-facing interface: it materializes due
// templates into transactions and advances their schedules.
type RecurringProcessorSvc interface {
	// ProcessDueRecurring handles at most batchSize due templates and
	// returns how many were materialized.
	ProcessDueRecurring(ctx context.Context, now time.Time, batchSize int) (int, error)
}
