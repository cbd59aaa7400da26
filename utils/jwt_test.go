package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaacjdv/futbolapp-backend/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(42, "user@example.com", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(42, "user@example.com", "secret", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	token, err := utils.GenerateToken(42, "user@example.com", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "secret")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	_, err := utils.ParseToken("not-a-token", "secret")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
