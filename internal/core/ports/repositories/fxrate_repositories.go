package repositories

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// FxRateReader defines read operations for cached FX rate rows.
type FxRateReader interface {
	// FindLatestRate retrieves the newest rate row for (provider, base),
	// ordered by rate_date descending. Returns apperrors.ErrNotFound when
	// no row exists.
	FindLatestRate(ctx context.Context, provider, base string) (*domain.FxRateRow, error)
}

// FxRateWriter defines write operations for cached FX rate rows.
type FxRateWriter interface {
	// UpsertRate inserts the row, or leaves the existing row in place when
	// one already exists for the same (provider, rate_date, base). The
	// natural key makes concurrent writers idempotent.
	UpsertRate(ctx context.Context, row domain.FxRateRow) error
}

// FxRateRepositoryFacade combines all FX rate repository interfaces.
type FxRateRepositoryFacade interface {
	FxRateReader
	FxRateWriter
}
