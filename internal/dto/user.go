package dto

import "github.com/blance-app/blance_backend/internal/core/domain"

// SignupRequest registers a new user with email and password.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"max=200"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ExchangeCodeRequest carries a Google OAuth authorization code.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// RefreshRequest rotates the session; the refresh token itself travels in the
// HTTP-only cookie set at login.
type RefreshRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// UpdateProfileRequest updates the caller's profile and preferences.
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName"`
	DisplayCurrency *string `json:"displayCurrency" binding:"omitempty,currencycode"`
}

// ProfileResponse is the caller's own profile.
type ProfileResponse struct {
	UserID          string `json:"userID"`
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	DisplayCurrency string `json:"displayCurrency"`
}

// ProfileSearchResult is one public profile matched by an invite search.
type ProfileSearchResult struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName"`
}

// ToProfileResponse converts a domain user to the caller-facing profile DTO.
func ToProfileResponse(u domain.User) ProfileResponse {
	display := u.Preferences.DisplayCurrency
	if display == "" {
		display = domain.DefaultBaseCurrency
	}
	return ProfileResponse{
		UserID:          u.UserID,
		Email:           u.Email,
		FullName:        u.FullName,
		DisplayCurrency: display,
	}
}

// ToProfileSearchResults converts public profiles to search result DTOs.
func ToProfileSearchResults(ps []domain.Profile) []ProfileSearchResult {
	out := make([]ProfileSearchResult, len(ps))
	for i, p := range ps {
		out[i] = ProfileSearchResult{
			ID:          p.ID,
			FullName:    p.FullName,
			Email:       p.Email,
			DisplayName: p.DisplayName(),
		}
	}
	return out
}
