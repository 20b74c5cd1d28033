package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("secret")

	token, err := GenerateToken(secret, 42, TypeAccess, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)

	_, err = ParseToken([]byte("other"), TypeAccess, token)
	assert.Error(t, err)

	_, err = ParseToken(secret, "refresh", token)
	assert.ErrorIs(t, err, ErrTokenType)

	expired, err := GenerateToken(secret, 42, TypeAccess, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TypeAccess, expired)
	assert.Error(t, err)
}
