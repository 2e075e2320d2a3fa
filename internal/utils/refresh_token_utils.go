package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RefreshTokenValidity is how long a refresh token stays usable.
const RefreshTokenValidity = 30 * 24 * time.Hour

// HashRefreshToken generates a SHA256 hash of a refresh token. Only the hash
// is stored; a leaked users table exposes no usable tokens.
func HashRefreshToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareRefreshTokenHash compares a raw refresh token with its stored hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return HashRefreshToken(token) == storedHash
}
