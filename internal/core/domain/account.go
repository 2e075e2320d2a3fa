package domain

// UserAccount is a named account (e.g. "Checking", "Savings") owned by a
// user. Accounts referenced by transactions are deactivated, not deleted.
type UserAccount struct {
	AccountID   string `json:"accountID"`
	UserID      string `json:"userID"`
	AccountName string `json:"accountName"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
