package dto

import "github.com/blance-app/blance_backend/internal/core/domain"

// CreateAccountRequest adds a named account for the caller.
type CreateAccountRequest struct {
	AccountName string `json:"accountName" binding:"required,max=100"`
}

// UpdateAccountRequest renames or toggles an account.
type UpdateAccountRequest struct {
	AccountName string `json:"accountName" binding:"required,max=100"`
	IsActive    *bool  `json:"isActive"`
}

// AccountResponse is one user account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	AccountName string `json:"accountName"`
	IsActive    bool   `json:"isActive"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a domain.UserAccount) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		AccountName: a.AccountName,
		IsActive:    a.IsActive,
	}
}

// ToAccountResponseSlice converts a slice of domain accounts.
func ToAccountResponseSlice(as []domain.UserAccount) []AccountResponse {
	out := make([]AccountResponse, len(as))
	for i, a := range as {
		out[i] = ToAccountResponse(a)
	}
	return out
}
