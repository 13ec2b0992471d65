// Package jwtx verifies the bearer tokens minted by the external identity
// provider. The team service never issues credentials itself; it only needs
// a trusted subject (the actor ID) and, when present, the actor's email.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrTokenExpired = errors.New("jwtx: token expired")
)

// Claims is the subset of identity-provider claims this service relies on.
type Claims struct {
	Subject   string // actor/user ID
	Issuer    string
	Email     string
	ExpiresAt time.Time
}

// ValidateExpiry rejects claims past their expiry. Tokens without an exp
// claim are treated as expired.
func (c Claims) ValidateExpiry() error {
	if c.ExpiresAt.IsZero() || time.Now().After(c.ExpiresAt) {
		return ErrTokenExpired
	}
	return nil
}

// Verifier checks a raw bearer token and extracts its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HMACVerifier verifies HS256 tokens with a shared secret. Suitable when the
// identity provider and this service share signing material.
type HMACVerifier struct {
	secret []byte
	issuer string
}

// NewHMACVerifier builds a verifier for HS256 tokens from the given issuer.
// An empty issuer disables the issuer check.
func NewHMACVerifier(secret []byte, issuer string) *HMACVerifier {
	return &HMACVerifier{secret: secret, issuer: issuer}
}

func (v *HMACVerifier) Verify(raw string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{}
	if sub, err := mc.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iss, err := mc.GetIssuer(); err == nil {
		claims.Issuer = iss
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}

	if claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
