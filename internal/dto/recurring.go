package dto

import (
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// CreateRecurringRequest registers a recurring transaction template.
type CreateRecurringRequest struct {
	Account          string     `json:"account" binding:"required"`
	Category         string     `json:"category" binding:"required"`
	PaymentMethod    string     `json:"paymentMethod" binding:"required"`
	Description      string     `json:"description"`
	CurrencyCode     string     `json:"currencyCode" binding:"required,currencycode"`
	ExpenseMinor     int64      `json:"expenseMinor" binding:"gte=0"`
	GrossIncomeMinor int64      `json:"grossIncomeMinor" binding:"gte=0"`
	NetIncomeMinor   int64      `json:"netIncomeMinor" binding:"gte=0"`
	TaxPaidMinor     int64      `json:"taxPaidMinor" binding:"gte=0"`
	Frequency        string     `json:"frequency" binding:"required,oneof=daily weekly biweekly monthly quarterly yearly"`
	StartDate        time.Time  `json:"startDate" binding:"required"`
	EndDate          *time.Time `json:"endDate"`
}

// UpdateRecurringRequest replaces a template's fields; the schedule anchor
// (start date) is immutable.
type UpdateRecurringRequest struct {
	Account          string     `json:"account" binding:"required"`
	Category         string     `json:"category" binding:"required"`
	PaymentMethod    string     `json:"paymentMethod" binding:"required"`
	Description      string     `json:"description"`
	CurrencyCode     string     `json:"currencyCode" binding:"required,currencycode"`
	ExpenseMinor     int64      `json:"expenseMinor" binding:"gte=0"`
	GrossIncomeMinor int64      `json:"grossIncomeMinor" binding:"gte=0"`
	NetIncomeMinor   int64      `json:"netIncomeMinor" binding:"gte=0"`
	TaxPaidMinor     int64      `json:"taxPaidMinor" binding:"gte=0"`
	EndDate          *time.Time `json:"endDate"`
	IsActive         *bool      `json:"isActive"`
}

// RecurringResponse is one recurring template row.
type RecurringResponse struct {
	RecurringID        string     `json:"recurringID"`
	Account            string     `json:"account"`
	Category           string     `json:"category"`
	PaymentMethod      string     `json:"paymentMethod"`
	Description        string     `json:"description"`
	CurrencyCode       string     `json:"currencyCode"`
	ExpenseMinor       int64      `json:"expenseMinor"`
	GrossIncomeMinor   int64      `json:"grossIncomeMinor"`
	NetIncomeMinor     int64      `json:"netIncomeMinor"`
	TaxPaidMinor       int64      `json:"taxPaidMinor"`
	Frequency          string     `json:"frequency"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            *time.Time `json:"endDate,omitempty"`
	NextOccurrenceDate time.Time  `json:"nextOccurrenceDate"`
	IsActive           bool       `json:"isActive"`
}

// ToRecurringResponse converts a domain template to its response DTO.
func ToRecurringResponse(r domain.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		RecurringID:        r.RecurringID,
		Account:            r.Account,
		Category:           r.Category,
		PaymentMethod:      r.PaymentMethod,
		Description:        r.Description,
		CurrencyCode:       r.CurrencyCode,
		ExpenseMinor:       r.ExpenseMinor,
		GrossIncomeMinor:   r.GrossIncomeMinor,
		NetIncomeMinor:     r.NetIncomeMinor,
		TaxPaidMinor:       r.TaxPaidMinor,
		Frequency:          string(r.Frequency),
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		NextOccurrenceDate: r.NextOccurrenceDate,
		IsActive:           r.IsActive,
	}
}

// ToRecurringResponseSlice converts a slice of domain templates.
func ToRecurringResponseSlice(rs []domain.RecurringTransaction) []RecurringResponse {
	out := make([]RecurringResponse, len(rs))
	for i, r := range rs {
		out[i] = ToRecurringResponse(r)
	}
	return out
}
