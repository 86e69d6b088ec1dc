package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/jwtx"
)

const testIssuer = "gp-portal"

var testSecret = []byte("test-secret-at-least-32-bytes-long!!")

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, testIssuer)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("alice@x.com", "User", testIssuer, time.Hour, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice@x.com", got.Subject)
	require.Equal(t, "User", got.Role)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte("a-completely-different-secret-value"), testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("alice@x.com", "User", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, testIssuer)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	token, err := signer.Sign(jwtx.NewAccessClaims("alice@x.com", "User", testIssuer, time.Hour, issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier, err := jwtx.NewVerifierHS256(testSecret, testIssuer)
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := verifier.Verify(raw)
		require.Error(t, err)
	}
}

func TestVerifyEnforcesIssuer(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "someone-else")
	require.NoError(t, err)

	token, err := signer.Sign(jwtx.NewAccessClaims("alice@x.com", "User", testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEmptySecretRejected(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerHS256(nil)
	require.Error(t, err)
	_, err = jwtx.NewVerifierHS256(nil, testIssuer)
	require.Error(t, err)
}
