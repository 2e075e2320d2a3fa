package models

import (
	"database/sql"
	"time"
)

// User is the users table row.
type User struct {
	UserID       string         `db:"user_id"`
	Email        string         `db:"email"`
	FullName     string         `db:"full_name"`
	PasswordHash sql.NullString `db:"password_hash"`
	Preferences  []byte         `db:"preferences"` // jsonb blob
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
