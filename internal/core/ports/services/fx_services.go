package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// FxSvcFacade provides daily FX rate tables with read-through caching.
//
// EnsureDailyRates resolves a rate row for the base currency through the
// fallback chain store -> local memo -> provider fetch. Any stored row is
// treated as valid regardless of its business day; only a failed provider
// fetch with no cached fallback returns an error. Conversion itself is the
// pure function domain.ConvertMinor.
type FxSvcFacade interface {
	EnsureDailyRates(ctx context.Context, base string) (*domain.FxRateRow, error)

	// ConvertMinor converts a minor-unit amount between currencies using the
	// ensured daily table and returns the amount plus the rate date used.
	ConvertMinor(ctx context.Context, amountMinor int64, from, to string) (int64, string, error)
}
