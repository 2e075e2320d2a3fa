package dto

import (
	"github.com/shopspring/decimal"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// FxRatesResponse is one day's rate table as returned to clients.
type FxRatesResponse struct {
	Provider string                     `json:"provider"`
	RateDate string                     `json:"rateDate"`
	Base     string                     `json:"base"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

// ToFxRatesResponse converts a domain rate row to its response DTO.
func ToFxRatesResponse(row domain.FxRateRow) FxRatesResponse {
	return FxRatesResponse{
		Provider: row.Provider,
		RateDate: row.RateDate,
		Base:     row.Base,
		Rates:    row.Rates,
	}
}

// ConvertRequest asks for a single minor-unit conversion.
type ConvertRequest struct {
	AmountMinor int64  `form:"amountMinor" binding:"required"`
	From        string `form:"from" binding:"required,currencycode"`
	To          string `form:"to" binding:"required,currencycode"`
}

// ConvertResponse carries the converted amount and the rates used.
type ConvertResponse struct {
	AmountMinor    int64  `json:"amountMinor"`
	From           string `json:"from"`
	To             string `json:"to"`
	ConvertedMinor int64  `json:"convertedMinor"`
	RateDate       string `json:"rateDate"`
}
