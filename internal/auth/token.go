package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The token is signed and verified server-side; the client only reads claims
// to avoid issuing requests that are guaranteed to bounce.

// Claims is the subset of token claims the client cares about.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Parse decodes a bearer token without verifying its signature.
func Parse(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the token carries an expiry in the past.
// Unparseable tokens count as expired, so callers fall back to a fresh login
// rather than a doomed request. A token without an expiry claim is left to
// the server to judge.
func Expired(token string) bool {
	claims, err := Parse(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
