package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrNotYet     = errors.New("jwtx: token not yet valid")
)

// DefaultLeeway absorbs small clock skew between the IdP and this service.
const DefaultLeeway = 30 * time.Second

// HS256Verifier checks HS256-signed tokens against a shared secret.
type HS256Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHS256Verifier returns a verifier bound to secret and the expected
// issuer. An empty issuer means "don't care".
func NewHS256Verifier(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{secret: secret, issuer: issuer, leeway: DefaultLeeway}
}

func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	return claims, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYet
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return ErrMalformed
	}
}

// HS256Signer mints tokens in the same shape the IdP would. It exists for
// tests, local development and the e2e suite; production tokens come from
// the identity provider.
type HS256Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (s *HS256Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Mint is a convenience wrapper that builds claims and signs them in one go.
func (s *HS256Signer) Mint(subject, email, name string, scopes []string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return s.Sign(NewClaims(subject, email, name, scopes, s.Issuer, ttl, time.Now()))
}
