// Package token issues and verifies the signed bearer tokens used for
// API authentication. Tokens are HMAC-signed JWTs carrying the user's
// identity and role.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrSecretIsRequired = errors.New("token secret is required")
	ErrTokenIsInvalid   = errors.New("token is invalid or expired")
)

// Claims is the payload carried by every issued token.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer. The secret must be non-empty; tokens expire
// after ttl.
func NewIssuer(secret string, ttl time.Duration) (Issuer, error) {
	if secret == "" {
		return Issuer{}, ErrSecretIsRequired
	}

	return Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue signs a token for the given user identity and role.
func (i Issuer) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies the signature and expiry of a token string and returns
// its claims. All failure modes map to ErrTokenIsInvalid.
func (i Issuer) Parse(tokenStr string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrTokenIsInvalid
	}

	return claims, nil
}
