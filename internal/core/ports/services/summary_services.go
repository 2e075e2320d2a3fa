package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// SummarySvcFacade aggregates a dashboard's transactions into totals
// converted to a display currency. Access to a foreign dashboard is gated by
// the share authorizer.
type SummarySvcFacade interface {
	GetMonthlySummary(ctx context.Context, actorID, ownerID string, req dto.MonthlySummaryRequest) (*domain.MonthlySummary, error)
	GetCategoryBreakdown(ctx context.Context, actorID, ownerID string, req dto.MonthlySummaryRequest) ([]domain.CategoryTotal, string, error)
	GetAccountBalances(ctx context.Context, actorID, ownerID, displayCurrency string) ([]domain.AccountBalance, string, error)
}
