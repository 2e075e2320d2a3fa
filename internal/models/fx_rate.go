package models

import "time"

// FxRate is the fx_rates table row. Rates is the raw jsonb blob of
// quote-currency multipliers keyed by currency code.
type FxRate struct {
	Provider  string    `db:"provider"`
	RateDate  string    `db:"rate_date"` // YYYY-MM-DD business day
	Base      string    `db:"base"`
	Rates     []byte    `db:"rates"`
	CreatedAt time.Time `db:"created_at"`
}
