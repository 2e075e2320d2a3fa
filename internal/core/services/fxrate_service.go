package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/clients/frankfurter"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	"github.com/blance-app/blance_backend/internal/platform/cache"
)

// RatesFetcher fetches a daily rate table from the upstream provider.
// *frankfurter.Client satisfies it; tests substitute a stub.
type RatesFetcher interface {
	FetchLatest(ctx context.Context, base string) (*frankfurter.LatestRates, error)
}

// fxService resolves daily FX rate tables through a three-step fallback
// chain: persistent store, then the in-process memo cache, then a provider
// fetch. Fetched tables are written back to the store best-effort and always
// memoized, so a store outage degrades to memo-plus-fetch instead of
// failing conversions.
type fxService struct {
	BaseService
	repo     portsrepo.FxRateRepositoryFacade
	fetcher  RatesFetcher
	cache    *cache.RatesCache
	provider string
	group    singleflight.Group
}

// NewFxService creates the FX rate service. The cache must be a dedicated
// instance owned by the caller; it is keyed per (provider, base).
func NewFxService(repo portsrepo.FxRateRepositoryFacade, fetcher RatesFetcher, ratesCache *cache.RatesCache) *fxService {
	return &fxService{
		repo:     repo,
		fetcher:  fetcher,
		cache:    ratesCache,
		provider: domain.DefaultFxProvider,
	}
}

// EnsureDailyRates returns a usable rate row for the base currency.
//
// Stored rows are trusted regardless of age: the newest row for the
// (provider, base) pair wins and no staleness check is applied. Only when
// neither the store nor the memo has anything is the provider contacted,
// deduplicated per (provider, base) so concurrent callers share one fetch.
func (s *fxService) EnsureDailyRates(ctx context.Context, base string) (*domain.FxRateRow, error) {
	base = strings.ToUpper(base)
	if base == "" {
		base = domain.DefaultBaseCurrency
	}

	row, err := s.repo.FindLatestRate(ctx, s.provider, base)
	if err == nil {
		s.cache.Set(s.provider, base, *row)
		return row, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		// Store trouble is not fatal while the memo or provider can serve.
		s.LogWarn(ctx, "rate store read failed, falling back", "base", base, "error", err.Error())
	}

	if cached, ok := s.cache.Get(s.provider, base); ok {
		return &cached, nil
	}

	fetched, err, _ := s.group.Do(s.provider+"|"+base, func() (any, error) {
		return s.fetchAndPersist(ctx, base)
	})
	if err != nil {
		return nil, fmt.Errorf("ensuring daily rates for %s: %w", base, err)
	}

	result := fetched.(domain.FxRateRow)
	return &result, nil
}

// fetchAndPersist pulls the latest table from the provider, writes it back
// to the store best-effort and memoizes it. An upsert failure is logged and
// swallowed; the fetched table is still returned.
func (s *fxService) fetchAndPersist(ctx context.Context, base string) (domain.FxRateRow, error) {
	latest, err := s.fetcher.FetchLatest(ctx, base)
	if err != nil {
		return domain.FxRateRow{}, err
	}

	row := domain.FxRateRow{
		Provider: s.provider,
		RateDate: latest.Date,
		Base:     base,
		Rates:    latest.Rates,
	}

	if err := s.repo.UpsertRate(ctx, row); err != nil {
		s.LogWarn(ctx, "failed to persist fetched rates, serving from memory",
			"provider", s.provider, "base", base, "rate_date", row.RateDate, "error", err.Error())
	}

	s.cache.Set(s.provider, base, row)
	return row, nil
}

// ConvertMinor converts amountMinor from one currency to another using the
// ensured daily table for the default base. It returns the converted amount
// and the business date of the table used. Identity conversions skip the
// rate lookup entirely.
func (s *fxService) ConvertMinor(ctx context.Context, amountMinor int64, from, to string) (int64, string, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return amountMinor, "", nil
	}

	row, err := s.EnsureDailyRates(ctx, domain.DefaultBaseCurrency)
	if err != nil {
		return 0, "", err
	}
	return domain.ConvertMinor(amountMinor, from, to, *row), row.RateDate, nil
}
