package dto

import (
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// CreateTransactionRequest records a new transaction on a dashboard.
// Amounts are integer minor units; a transaction is either an expense or an
// income entry, the unused side stays zero.
type CreateTransactionRequest struct {
	Date             time.Time `json:"date" binding:"required"`
	Account          string    `json:"account" binding:"required"`
	Category         string    `json:"category" binding:"required"`
	PaymentMethod    string    `json:"paymentMethod" binding:"required"`
	Description      string    `json:"description"`
	CurrencyCode     string    `json:"currencyCode" binding:"required,currencycode"`
	ExpenseMinor     int64     `json:"expenseMinor" binding:"gte=0"`
	GrossIncomeMinor int64     `json:"grossIncomeMinor" binding:"gte=0"`
	NetIncomeMinor   int64     `json:"netIncomeMinor" binding:"gte=0"`
	TaxPaidMinor     int64     `json:"taxPaidMinor" binding:"gte=0"`
}

// UpdateTransactionRequest mirrors the create payload; all fields are
// replaced on update.
type UpdateTransactionRequest = CreateTransactionRequest

// ListTransactionsRequest narrows and paginates a transaction listing.
type ListTransactionsRequest struct {
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Account   *string    `form:"account"`
	Category  *string    `form:"category"`
	Limit     int        `form:"limit,default=50" binding:"gte=1,lte=200"`
	NextToken string     `form:"nextToken"`
}

// TransactionResponse is one transaction row.
type TransactionResponse struct {
	TransactionID    string    `json:"transactionID"`
	UserID           string    `json:"userID"`
	Date             time.Time `json:"date"`
	Account          string    `json:"account"`
	Category         string    `json:"category"`
	PaymentMethod    string    `json:"paymentMethod"`
	Description      string    `json:"description"`
	CurrencyCode     string    `json:"currencyCode"`
	ExpenseMinor     int64     `json:"expenseMinor"`
	GrossIncomeMinor int64     `json:"grossIncomeMinor"`
	NetIncomeMinor   int64     `json:"netIncomeMinor"`
	TaxPaidMinor     int64     `json:"taxPaidMinor"`
	NetFlowMinor     int64     `json:"netFlowMinor"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ListTransactionsResponse is a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		UserID:           t.UserID,
		Date:             t.Date,
		Account:          t.Account,
		Category:         t.Category,
		PaymentMethod:    t.PaymentMethod,
		Description:      t.Description,
		CurrencyCode:     t.CurrencyCode,
		ExpenseMinor:     t.ExpenseMinor,
		GrossIncomeMinor: t.GrossIncomeMinor,
		NetIncomeMinor:   t.NetIncomeMinor,
		TaxPaidMinor:     t.TaxPaidMinor,
		NetFlowMinor:     t.NetFlowMinor(),
		CreatedAt:        t.CreatedAt,
	}
}

// ToTransactionResponseSlice converts a slice of domain transactions.
func ToTransactionResponseSlice(ts []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
