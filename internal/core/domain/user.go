package domain

import "time"

// UserPreferences is the free-form preference blob stored on a profile.
type UserPreferences struct {
	DisplayCurrency string `json:"displayCurrency,omitempty"`
}

// User represents an application user and their profile.
type User struct {
	UserID       string          `json:"userID"`
	Email        string          `json:"email"`
	FullName     string          `json:"fullName"`
	PasswordHash string          `json:"-"`
	Preferences  UserPreferences `json:"preferences"`

	// Refresh token state; only the hash is ever stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // soft delete
}

// Profile is the public subset of a user exposed to other users, e.g. in
// invite search results and share listings.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// DisplayName picks the best human-readable label for the profile:
// full name, then email, then the raw id.
func (p Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.Email != "" {
		return p.Email
	}
	return p.ID
}
