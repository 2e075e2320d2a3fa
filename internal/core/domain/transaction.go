package domain

import "time"

// Transaction is a single dated income or expense entry on a user's
// dashboard. All money fields are integer minor units (cents) paired with
// CurrencyCode; summing integers avoids floating-point drift.
type Transaction struct {
	TransactionID    string    `json:"transactionID"`
	UserID           string    `json:"userID"` // dashboard owner
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
	AuditFields
}

// NetFlowMinor is the signed contribution of the transaction to an account
// balance: net income minus expense.
func (t Transaction) NetFlowMinor() int64 {
	return t.NetIncomeMinor - t.ExpenseMinor
}

// TransactionFilter narrows transaction list queries.
type TransactionFilter struct {
	From     *time.Time
	To       *time.Time
	Account  *string
	Category *string
}
