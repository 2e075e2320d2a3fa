// Package cache holds small in-process caches shared across services.
package cache

import (
	"sync"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// RatesCache memoizes FX rate rows per (provider, base) pair for the life of
// the process. It is injected explicitly into the FX service rather than
// living as a package-level global, so tests can use a fresh instance.
type RatesCache struct {
	mu   sync.RWMutex
	rows map[ratesKey]domain.FxRateRow
}

type ratesKey struct {
	provider string
	base     string
}

// NewRatesCache returns an empty cache ready for use.
func NewRatesCache() *RatesCache {
	return &RatesCache{rows: make(map[ratesKey]domain.FxRateRow)}
}

// Get returns the memoized row for the pair, if any.
func (c *RatesCache) Get(provider, base string) (domain.FxRateRow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	row, ok := c.rows[ratesKey{provider: provider, base: base}]
	return row, ok
}

// Set stores the row for the pair, replacing any previous value.
func (c *RatesCache) Set(provider, base string, row domain.FxRateRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows[ratesKey{provider: provider, base: base}] = row
}

// Len reports how many pairs are memoized.
func (c *RatesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}
