package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSigning(t *testing.T, secret string) {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	require.NoError(t, InitTokenSigning())
}

func TestIssueAndValidateToken(t *testing.T) {
	initSigning(t, "test-secret")

	token, err := IssueToken(42, "maria@test.com")
	require.NoError(t, err)

	data, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.UserID)
	assert.Equal(t, "maria@test.com", data.Email)
	assert.Greater(t, data.Exp, time.Now().UTC().Unix())
}

func TestValidateTokenStripsBearerPrefix(t *testing.T) {
	initSigning(t, "test-secret")

	token, err := IssueToken(42, "maria@test.com")
	require.NoError(t, err)

	data, err := ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.UserID)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	initSigning(t, "first-secret")
	token, err := IssueToken(42, "maria@test.com")
	require.NoError(t, err)

	initSigning(t, "second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	initSigning(t, "test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestInitTokenSigningRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitTokenSigning())
}
