package dto

import "github.com/blance-app/blance_backend/internal/core/domain"

// MonthlySummaryRequest selects the dashboard month and display currency.
type MonthlySummaryRequest struct {
	Year            int    `form:"year" binding:"required,gte=1970"`
	Month           int    `form:"month" binding:"required,gte=1,lte=12"`
	DisplayCurrency string `form:"displayCurrency" binding:"omitempty,currencycode"`
}

// MonthlySummaryResponse mirrors domain.MonthlySummary.
type MonthlySummaryResponse struct {
	Year            int                     `json:"year"`
	Month           int                     `json:"month"`
	DisplayCurrency string                  `json:"displayCurrency"`
	PerCurrency     []domain.CurrencyTotals `json:"perCurrency"`
	Converted       domain.CurrencyTotals   `json:"converted"`
	RateDate        string                  `json:"rateDate"`
}

// CategoryBreakdownResponse lists converted totals per category for a month.
type CategoryBreakdownResponse struct {
	DisplayCurrency string                 `json:"displayCurrency"`
	Categories      []domain.CategoryTotal `json:"categories"`
}

// AccountBalancesResponse lists converted lifetime balances per account.
type AccountBalancesResponse struct {
	DisplayCurrency string                  `json:"displayCurrency"`
	Accounts        []domain.AccountBalance `json:"accounts"`
}

// ToMonthlySummaryResponse converts a domain summary.
func ToMonthlySummaryResponse(s domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:            s.Year,
		Month:           s.Month,
		DisplayCurrency: s.DisplayCurrency,
		PerCurrency:     s.PerCurrency,
		Converted:       s.Converted,
		RateDate:        s.RateDate,
	}
}
