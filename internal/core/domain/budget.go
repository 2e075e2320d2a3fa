package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence window of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// IsValid reports whether p is a known period.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Window returns the half-open interval [start, end) of the period containing
// the reference time. Weeks start on Monday.
func (p BudgetPeriod) Window(ref time.Time) (time.Time, time.Time) {
	switch p {
	case BudgetPeriodWeekly:
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week started the previous Monday
		}
		start := time.Date(ref.Year(), ref.Month(), ref.Day()-(weekday-1), 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 0, 7)
	case BudgetPeriodYearly:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(1, 0, 0)
	default: // monthly
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 1, 0)
	}
}

// Budget caps spending for a user, either overall (Category nil) or for a
// single category, per recurring period. Amount is in major units of
// CurrencyCode.
type Budget struct {
	BudgetID     string          `json:"budgetID"`
	UserID       string          `json:"userID"`
	Category     *string         `json:"category,omitempty"` // nil means overall
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Period       BudgetPeriod    `json:"period"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// BudgetProgress reports actual spend against a budget for the current
// period, both in the budget's currency.
type BudgetProgress struct {
	Budget
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	SpentMinor  int64           `json:"spentMinor"`
	Spent       decimal.Decimal `json:"spent"`
}
