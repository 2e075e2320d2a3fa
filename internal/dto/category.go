package dto

import "github.com/blance-app/blance_backend/internal/core/domain"

// CreateCategoryRequest adds a transaction category for the caller.
type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required,max=100"`
	IsExpense    bool   `json:"isExpense"`
}

// UpdateCategoryRequest renames or toggles a category.
type UpdateCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required,max=100"`
	IsExpense    *bool  `json:"isExpense"`
	IsActive     *bool  `json:"isActive"`
}

// CategoryResponse is one user category.
type CategoryResponse struct {
	CategoryID   string `json:"categoryID"`
	CategoryName string `json:"categoryName"`
	IsExpense    bool   `json:"isExpense"`
	IsActive     bool   `json:"isActive"`
}

// ToCategoryResponse converts a domain category to its response DTO.
func ToCategoryResponse(c domain.UserCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		IsExpense:    c.IsExpense,
		IsActive:     c.IsActive,
	}
}

// ToCategoryResponseSlice converts a slice of domain categories.
func ToCategoryResponseSlice(cs []domain.UserCategory) []CategoryResponse {
	out := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCategoryResponse(c)
	}
	return out
}
