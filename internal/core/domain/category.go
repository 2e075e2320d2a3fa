package domain

// UserCategory is a transaction category owned by a user. IsExpense
// distinguishes spending categories from income categories.
type UserCategory struct {
	CategoryID   string `json:"categoryID"`
	UserID       string `json:"userID"`
	CategoryName string `json:"categoryName"`
	IsExpense    bool   `json:"isExpense"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
