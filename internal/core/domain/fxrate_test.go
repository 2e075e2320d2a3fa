package domain_test

import (
	"testing"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func eurRow() domain.FxRateRow {
	return domain.FxRateRow{
		Provider: domain.DefaultFxProvider,
		RateDate: "2025-06-02",
		Base:     "EUR",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(1.10),
			"GBP": decimal.NewFromFloat(0.85),
			"JPY": decimal.NewFromFloat(169.42),
		},
	}
}

func TestConvertMinor_Identity(t *testing.T) {
	fx := eurRow()
	for _, amount := range []int64{0, 1, -250, 1000, 987654321} {
		assert.Equal(t, amount, domain.ConvertMinor(amount, "USD", "USD", fx))
		assert.Equal(t, amount, domain.ConvertMinor(amount, "EUR", "EUR", fx))
		// identity holds even for codes the row does not quote
		assert.Equal(t, amount, domain.ConvertMinor(amount, "XXX", "XXX", fx))
	}
}

func TestConvertMinor_BaseToQuote(t *testing.T) {
	fx := eurRow()
	assert.Equal(t, int64(1100), domain.ConvertMinor(1000, "EUR", "USD", fx))
	assert.Equal(t, int64(850), domain.ConvertMinor(1000, "EUR", "GBP", fx))
}

func TestConvertMinor_QuoteToBase(t *testing.T) {
	fx := eurRow()
	assert.Equal(t, int64(1000), domain.ConvertMinor(1100, "USD", "EUR", fx))
}

func TestConvertMinor_CrossRate(t *testing.T) {
	fx := eurRow()
	// 1000 * (0.85 / 1.10) = 772.7... -> 773
	assert.Equal(t, int64(773), domain.ConvertMinor(1000, "USD", "GBP", fx))
}

func TestConvertMinor_CrossMatchesViaBase(t *testing.T) {
	fx := eurRow()
	for _, amount := range []int64{1, 99, 1000, 123456} {
		direct := domain.ConvertMinor(amount, "USD", "GBP", fx)
		viaBase := domain.ConvertMinor(domain.ConvertMinor(amount, "USD", "EUR", fx), "EUR", "GBP", fx)
		assert.InDelta(t, float64(direct), float64(viaBase), 1.0,
			"cross conversion should agree with the two-hop path within one minor unit")
	}
}

func TestConvertMinor_BaseRoundTrip(t *testing.T) {
	fx := eurRow()
	for _, amount := range []int64{1, 10, 999, 12345, 1000000} {
		there := domain.ConvertMinor(amount, "EUR", "USD", fx)
		back := domain.ConvertMinor(there, "USD", "EUR", fx)
		assert.InDelta(t, float64(amount), float64(back), 1.0)
	}
}

func TestConvertMinor_MissingRateDefaultsToOne(t *testing.T) {
	fx := eurRow()
	// XXX is not quoted; the multiplier silently defaults to 1
	assert.Equal(t, int64(1000), domain.ConvertMinor(1000, "EUR", "XXX", fx))
	assert.Equal(t, int64(1000), domain.ConvertMinor(1000, "XXX", "EUR", fx))
}

func TestConvertMinor_RoundsHalfAwayFromZero(t *testing.T) {
	fx := domain.FxRateRow{
		Base:  "EUR",
		Rates: map[string]decimal.Decimal{"USD": decimal.NewFromFloat(1.005)},
	}
	assert.Equal(t, int64(101), domain.ConvertMinor(100, "EUR", "USD", fx))
	assert.Equal(t, int64(-101), domain.ConvertMinor(-100, "EUR", "USD", fx))
}
