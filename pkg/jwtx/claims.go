// Package jwtx verifies the bearer tokens issued by the external identity
// provider. The service never mints tokens for end users; it only checks
// them, using an HS256 shared secret agreed with the IdP. A signer is
// provided for tests and tooling.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims the service cares about. The subject
// is the timeclock user id; email is the fallback identity for IdPs that
// only assert an address.
type Claims struct {
	jwt.RegisteredClaims

	// Email asserted by the identity provider.
	Email string `json:"email,omitempty"`

	// Name is the display name, informational only.
	Name string `json:"name,omitempty"`

	// Scopes gate endpoint access, e.g. "clock:write admin:read".
	Scopes []string `json:"scopes,omitempty"`
}

// NewClaims builds minimally-correct claims for a caller.
func NewClaims(
	subject, email, name string,
	scopes []string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:  email,
		Name:   name,
		Scopes: scopes,
	}
}
