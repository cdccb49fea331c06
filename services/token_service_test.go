package services_test

import (
	"testing"
	"time"

	"footballclub/models"
	"footballclub/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := services.NewTokenService("secret")

	token, err := tokens.Issue("user0", models.RoleUser, time.Minute)
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user0", claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestTokenExpires(t *testing.T) {
	tokens := services.NewTokenService("secret")
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokens.SetClock(func() time.Time { return issuedAt })

	token, err := tokens.Issue("user0", models.RoleUser, 30*time.Minute)
	require.NoError(t, err)

	tokens.SetClock(func() time.Time { return issuedAt.Add(29 * time.Minute) })
	_, err = tokens.Verify(token)
	require.NoError(t, err)

	expiry := issuedAt.Add(30 * time.Minute)
	tokens.SetClock(func() time.Time { return expiry })
	_, err = tokens.Verify(token)
	require.NoError(t, err, "token is still valid at its expiry instant")

	tokens.SetClock(func() time.Time { return expiry.Add(time.Second) })
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, services.ErrTokenExpired)

	tokens.SetClock(func() time.Time { return issuedAt.Add(31 * time.Minute) })
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, services.ErrTokenExpired)
}

func TestTokenBadSignature(t *testing.T) {
	token, err := services.NewTokenService("secret").Issue("admin", models.RoleAdmin, time.Minute)
	require.NoError(t, err)

	_, err = services.NewTokenService("another-secret").Verify(token)
	assert.ErrorIs(t, err, services.ErrTokenBadSignature)
}

func TestTokenMalformed(t *testing.T) {
	tokens := services.NewTokenService("secret")

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := tokens.Verify(raw)
		assert.ErrorIs(t, err, services.ErrTokenMalformed, "token %q", raw)
	}
}

func TestTokenWithoutRoleIsMalformed(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "user0",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = services.NewTokenService("secret").Verify(token)
	assert.ErrorIs(t, err, services.ErrTokenMalformed)
}

func TestTokenOtherAlgorithmRejected(t *testing.T) {
	claims := services.Claims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = services.NewTokenService("secret").Verify(token)
	assert.ErrorIs(t, err, services.ErrTokenBadSignature)
}
