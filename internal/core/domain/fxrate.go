package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultFxProvider is the only rate source currently in use.
const DefaultFxProvider = "frankfurter"

// DefaultBaseCurrency is the base used when the caller does not specify one.
const DefaultBaseCurrency = "EUR"

// FxRateRow is one day's rate table for a base currency from a provider.
// Rows are keyed by (provider, rate_date, base) and are immutable once
// written; a newer business day produces a new row.
type FxRateRow struct {
	Provider string                     `json:"provider"`
	RateDate string                     `json:"rateDate"` // YYYY-MM-DD, provider business day
	Base     string                     `json:"base"`
	Rates    map[string]decimal.Decimal `json:"rates"` // units of quote currency per 1 base unit
}

// rateOrOne returns the multiplier for code, defaulting to 1 when the
// provider does not quote it. The silent default mirrors the original
// behavior; callers that need strictness should check Rates themselves.
func (fx FxRateRow) rateOrOne(code string) decimal.Decimal {
	if r, ok := fx.Rates[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// ConvertMinor converts an integer minor-unit amount between currencies using
// a single rate row. Quotes are target-per-base, so base->quote multiplies
// and quote->base divides; a cross conversion goes through the base.
// Results are rounded half away from zero to the nearest minor unit.
// Identity conversions return the amount untouched.
func ConvertMinor(amountMinor int64, from, to string, fx FxRateRow) int64 {
	if from == to {
		return amountMinor
	}

	amount := decimal.NewFromInt(amountMinor)

	if from == fx.Base {
		return amount.Mul(fx.rateOrOne(to)).Round(0).IntPart()
	}

	if to == fx.Base {
		return amount.Div(fx.rateOrOne(from)).Round(0).IntPart()
	}

	return amount.Mul(fx.rateOrOne(to)).Div(fx.rateOrOne(from)).Round(0).IntPart()
}
