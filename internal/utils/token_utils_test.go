package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", "finance-tracker", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "finance-tracker")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)

	_, err = ParseAndValidateJWT(token, "other-secret", "finance-tracker")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)

	expired, err := GenerateJWT("user-1", "secret", "finance-tracker", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "")
	assert.Error(t, err)

	_, err = GenerateJWT("", "secret", "", time.Hour)
	assert.Error(t, err)
}
