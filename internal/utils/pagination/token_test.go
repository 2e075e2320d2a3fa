package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, createdAt)
	assert.NotEmpty(t, token)

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.True(t, date.Equal(decodedDate))
	assert.True(t, createdAt.Equal(decodedCreatedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but no separator.
	_, _, err = DecodeToken("MjAyMy0wNS0xNVQwMDowMDowMFo=")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")
}
