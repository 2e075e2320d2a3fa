package dto

import "time"

// AuthResponse is returned after a successful login, signup, code exchange
// or token refresh. The refresh token itself travels in an HTTP-only cookie.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    string    `json:"userID"`
}
