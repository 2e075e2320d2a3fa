package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// CreateBudgetRequest sets an overall (Category nil) or per-category budget.
type CreateBudgetRequest struct {
	Category     *string         `json:"category"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Period       string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// BudgetResponse is one budget row.
type BudgetResponse struct {
	BudgetID     string          `json:"budgetID"`
	Category     *string         `json:"category,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Period       string          `json:"period"`
	IsActive     bool            `json:"isActive"`
}

// BudgetProgressResponse is a budget with its current-period spend.
type BudgetProgressResponse struct {
	BudgetResponse
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Spent       decimal.Decimal `json:"spent"`
	SpentMinor  int64           `json:"spentMinor"`
}

// ToBudgetResponse converts a domain budget to its response DTO.
func ToBudgetResponse(b domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:     b.BudgetID,
		Category:     b.Category,
		Amount:       b.Amount,
		CurrencyCode: b.CurrencyCode,
		Period:       string(b.Period),
		IsActive:     b.IsActive,
	}
}

// ToBudgetProgressResponse converts a domain budget progress report.
func ToBudgetProgressResponse(p domain.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		BudgetResponse: ToBudgetResponse(p.Budget),
		PeriodStart:    p.PeriodStart,
		PeriodEnd:      p.PeriodEnd,
		Spent:          p.Spent,
		SpentMinor:     p.SpentMinor,
	}
}
