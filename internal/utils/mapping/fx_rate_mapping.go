package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/models"
)

// ToModelFxRate converts a domain rate row for persistence.
func ToModelFxRate(d domain.FxRateRow) (models.FxRate, error) {
	rates, err := json.Marshal(d.Rates)
	if err != nil {
		return models.FxRate{}, fmt.Errorf("marshalling rates: %w", err)
	}
	return models.FxRate{
		Provider: d.Provider,
		RateDate: d.RateDate,
		Base:     d.Base,
		Rates:    rates,
	}, nil
}

// ToDomainFxRate converts a stored rate row back to the domain type.
func ToDomainFxRate(m models.FxRate) (domain.FxRateRow, error) {
	rates := map[string]decimal.Decimal{}
	if len(m.Rates) > 0 {
		if err := json.Unmarshal(m.Rates, &rates); err != nil {
			return domain.FxRateRow{}, fmt.Errorf("unmarshalling rates: %w", err)
		}
	}
	return domain.FxRateRow{
		Provider: m.Provider,
		RateDate: m.RateDate,
		Base:     m.Base,
		Rates:    rates,
	}, nil
}
