package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "timeclock-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	signer := &HS256Signer{Secret: testSecret, Issuer: testIssuer, TTL: time.Minute}
	token, err := signer.Mint("user-1", "alice@example.com", "Alice", []string{"clock:write"})
	require.NoError(t, err)

	verifier := NewHS256Verifier(testSecret, testIssuer)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "Alice", claims.Name)
	require.Equal(t, []string{"clock:write"}, claims.Scopes)
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := &HS256Signer{Secret: testSecret, Issuer: testIssuer, TTL: time.Minute}
	token, err := signer.Mint("user-1", "alice@example.com", "", nil)
	require.NoError(t, err)

	verifier := NewHS256Verifier([]byte("not-the-shared-secret-at-all!!!!"), testIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256RejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := &HS256Signer{Secret: testSecret, Issuer: "some-other-idp", TTL: time.Minute}
	token, err := signer.Mint("user-1", "", "", nil)
	require.NoError(t, err)

	verifier := NewHS256Verifier(testSecret, testIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256RejectsExpired(t *testing.T) {
	t.Parallel()

	signer := &HS256Signer{Secret: testSecret, Issuer: testIssuer}
	claims := NewClaims("user-1", "", "", nil, testIssuer, time.Minute,
		time.Now().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := NewHS256Verifier(testSecret, testIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256RejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier := NewHS256Verifier(testSecret, testIssuer)
	_, err := verifier.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestHS256RejectsNone(t *testing.T) {
	t.Parallel()

	// alg=none must never be accepted, even with a valid payload.
	token := jwt.NewWithClaims(jwt.SigningMethodNone,
		NewClaims("user-1", "", "", nil, testIssuer, time.Minute, time.Now()))
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	verifier := NewHS256Verifier(testSecret, testIssuer)
	_, err = verifier.Verify(raw)
	require.Error(t, err)
}
