package cryptox_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/cryptox"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := cryptox.HashPassword("pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	require.True(t, strings.HasPrefix(digest, "$2"))

	require.NoError(t, cryptox.VerifyPassword("pw123456", digest))
	require.Error(t, cryptox.VerifyPassword("pw1234567", digest))
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	a, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestOverlongPasswordRejected(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", cryptox.MaxPasswordBytes+1)
	_, err := cryptox.HashPassword(long)
	require.ErrorIs(t, err, cryptox.ErrPasswordTooLong)

	digest, err := cryptox.HashPassword(strings.Repeat("a", cryptox.MaxPasswordBytes))
	require.NoError(t, err)
	require.ErrorIs(t, cryptox.VerifyPassword(long, digest), cryptox.ErrPasswordTooLong)
}

func TestGenerateOTPShape(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 32 {
		code, err := cryptox.GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, cryptox.OTPDigits)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9')
		}
		seen[code] = struct{}{}
	}
	// 32 draws from a million-code space should not all collide.
	require.Greater(t, len(seen), 1)
}

func TestFingerprintTokenDeterministic(t *testing.T) {
	t.Parallel()

	tok, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.Equal(t, cryptox.FingerprintToken(tok), cryptox.FingerprintToken(tok))
	require.NotEqual(t, tok, cryptox.FingerprintToken(tok))
}
