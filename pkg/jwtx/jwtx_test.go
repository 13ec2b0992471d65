package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "huddle-idp"

var testSecret = []byte("test-secret-material")

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return raw
}

func TestHMACVerifier(t *testing.T) {
	t.Parallel()

	v := NewHMACVerifier(testSecret, testIssuer)

	t.Run("accepts a valid token", func(t *testing.T) {
		raw := mintToken(t, jwt.MapClaims{
			"sub":   "01JMUSER0000000000000000AA",
			"iss":   testIssuer,
			"email": "alice@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		claims, err := v.Verify(raw)
		require.NoError(t, err)
		require.Equal(t, "01JMUSER0000000000000000AA", claims.Subject)
		require.Equal(t, "alice@example.com", claims.Email)
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		raw := mintToken(t, jwt.MapClaims{
			"sub": "user",
			"iss": testIssuer,
			"exp": time.Now().Add(-time.Minute).Unix(),
		})

		_, err := v.Verify(raw)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		raw := mintToken(t, jwt.MapClaims{
			"sub": "user",
			"iss": "someone-else",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := v.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects missing subject", func(t *testing.T) {
		raw := mintToken(t, jwt.MapClaims{
			"iss": testIssuer,
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := v.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects wrong signing key", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user",
			"iss": testIssuer,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		raw, err := token.SignedString([]byte("a-different-secret"))
		require.NoError(t, err)

		_, err = v.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
