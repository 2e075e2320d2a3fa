package cache_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/platform/cache"
)

func TestRatesCache_GetSet(t *testing.T) {
	c := cache.NewRatesCache()

	_, ok := c.Get("frankfurter", "EUR")
	assert.False(t, ok)

	row := domain.FxRateRow{
		Provider: "frankfurter",
		RateDate: "2026-08-28",
		Base:     "EUR",
		Rates:    map[string]decimal.Decimal{"USD": decimal.NewFromFloat(1.1)},
	}
	c.Set("frankfurter", "EUR", row)

	got, ok := c.Get("frankfurter", "EUR")
	assert.True(t, ok)
	assert.Equal(t, "2026-08-28", got.RateDate)

	// Keys are per (provider, base), not per provider.
	_, ok = c.Get("frankfurter", "USD")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestRatesCache_ConcurrentAccess(t *testing.T) {
	c := cache.NewRatesCache()
	row := domain.FxRateRow{Provider: "frankfurter", Base: "EUR", RateDate: "2026-08-28"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("frankfurter", "EUR", row)
		}()
		go func() {
			defer wg.Done()
			c.Get("frankfurter", "EUR")
		}()
	}
	wg.Wait()

	got, ok := c.Get("frankfurter", "EUR")
	assert.True(t, ok)
	assert.Equal(t, "EUR", got.Base)
}
