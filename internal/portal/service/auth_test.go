package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/internal/portal/store/drivers/sqlite"
	"github.com/victorygp/portal/pkg/cryptox"
	"github.com/victorygp/portal/pkg/jwtx"
)

func newAuthService(t *testing.T) (*AuthService, *mail.MemorySender) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte("test-secret"))
	require.NoError(t, err)

	sender := mail.NewMemorySender()
	return &AuthService{
		Store:  st,
		Mail:   sender,
		Signer: signer,
		Issuer: "portal-test",
	}, sender
}

func TestLoginFlow(t *testing.T) {
	ctx := context.Background()
	svc, sender := newAuthService(t)

	_, err := svc.Register(ctx, "Alice", "Smith", "alice", "Alice@Example.com", "hunter2secret")
	require.NoError(t, err)

	t.Run("check email is case-insensitive", func(t *testing.T) {
		exists, err := svc.CheckEmail(ctx, "ALICE@example.COM")
		require.NoError(t, err)
		require.True(t, exists)

		exists, err = svc.CheckEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("wrong password sends nothing", func(t *testing.T) {
		err := svc.LoginInit(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Empty(t, sender.Messages())
	})

	t.Run("verify before any login-init finds no challenge", func(t *testing.T) {
		_, _, err := svc.VerifyOTP(ctx, "alice@example.com", "123456")
		require.ErrorIs(t, err, ErrNoChallenge)
	})

	t.Run("correct password dispatches one code", func(t *testing.T) {
		require.NoError(t, svc.LoginInit(ctx, "alice@example.com", "hunter2secret"))

		msgs := sender.Messages()
		require.Len(t, msgs, 1)
		require.Equal(t, "alice@example.com", msgs[0].To)
		require.Equal(t, "otp", msgs[0].Kind)
		require.Len(t, msgs[0].Body, 6)
	})

	t.Run("plaintext code is never stored", func(t *testing.T) {
		code := sender.Messages()[0].Body

		user, err := svc.Store.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		challenge, err := svc.Store.OTPChallenges().GetOTPChallengeByUser(ctx, user.ID)
		require.NoError(t, err)
		require.NotEqual(t, code, challenge.Code)
		require.Equal(t, cryptox.FingerprintToken(code), challenge.Code)
	})

	t.Run("verify mints a token and consumes the code", func(t *testing.T) {
		code := sender.Messages()[0].Body

		token, user, err := svc.VerifyOTP(ctx, "alice@example.com", code)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, "alice@example.com", user.Email)

		verifier, err := jwtx.NewVerifierHS256([]byte("test-secret"), "portal-test")
		require.NoError(t, err)
		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", claims.Subject)
		require.Equal(t, "User", claims.Role)

		// Second redemption of the same code must fail: the challenge is gone.
		_, _, err = svc.VerifyOTP(ctx, "alice@example.com", code)
		require.ErrorIs(t, err, ErrNoChallenge)
	})
}

func TestLoginInitVerifiesStoredHash(t *testing.T) {
	ctx := context.Background()
	svc, sender := newAuthService(t)

	// Passwords on either side of the length boundary must round-trip through
	// the bcrypt digest, and the digest itself must never pass as a password.
	_, err := svc.Register(ctx, "Frank", "Green", "frank", "frank@example.com", "pw123456")
	require.NoError(t, err)

	require.NoError(t, svc.LoginInit(ctx, "frank@example.com", "pw123456"))
	require.Len(t, sender.Messages(), 1)

	user, err := svc.Store.Users().GetUserByEmail(ctx, "frank@example.com")
	require.NoError(t, err)
	err = svc.LoginInit(ctx, "frank@example.com", user.PasswordHash)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyOTPRejectsWrongCode(t *testing.T) {
	ctx := context.Background()
	svc, sender := newAuthService(t)

	_, err := svc.Register(ctx, "Bob", "Jones", "bob", "bob@example.com", "correct-horse")
	require.NoError(t, err)
	require.NoError(t, svc.LoginInit(ctx, "bob@example.com", "correct-horse"))

	code := sender.Messages()[0].Body
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	_, _, err = svc.VerifyOTP(ctx, "bob@example.com", wrong)
	require.ErrorIs(t, err, ErrInvalidOTP)

	// The real code is still redeemable after a failed guess.
	_, _, err = svc.VerifyOTP(ctx, "bob@example.com", code)
	require.NoError(t, err)
}

func TestVerifyOTPRejectsExpiredCode(t *testing.T) {
	ctx := context.Background()
	svc, sender := newAuthService(t)

	now := time.Now()
	svc.Now = func() time.Time { return now }

	_, err := svc.Register(ctx, "Carol", "White", "carol", "carol@example.com", "pass-phrase-1")
	require.NoError(t, err)
	require.NoError(t, svc.LoginInit(ctx, "carol@example.com", "pass-phrase-1"))

	code := sender.Messages()[0].Body

	// Jump past the challenge TTL.
	now = now.Add(DefaultOTPTTL + time.Second)

	_, _, err = svc.VerifyOTP(ctx, "carol@example.com", code)
	require.ErrorIs(t, err, ErrOTPExpired)

	// The expired challenge is cleared, so a replay is not a mismatch.
	_, _, err = svc.VerifyOTP(ctx, "carol@example.com", code)
	require.ErrorIs(t, err, ErrNoChallenge)
}

func TestLoginInitReplacesPreviousCode(t *testing.T) {
	ctx := context.Background()
	svc, sender := newAuthService(t)

	_, err := svc.Register(ctx, "Dave", "Brown", "dave", "dave@example.com", "pass-phrase-2")
	require.NoError(t, err)

	require.NoError(t, svc.LoginInit(ctx, "dave@example.com", "pass-phrase-2"))
	require.NoError(t, svc.LoginInit(ctx, "dave@example.com", "pass-phrase-2"))

	msgs := sender.Messages()
	require.Len(t, msgs, 2)

	if msgs[0].Body != msgs[1].Body {
		// The older code must be dead once replaced.
		_, _, err = svc.VerifyOTP(ctx, "dave@example.com", msgs[0].Body)
		require.ErrorIs(t, err, ErrInvalidOTP)
	}

	_, _, err = svc.VerifyOTP(ctx, "dave@example.com", msgs[1].Body)
	require.NoError(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Register(ctx, "Eve", "Black", "eve", "eve@example.com", "some-password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Evil", "Eve", "eve2", "EVE@example.com", "other-password")
	require.ErrorIs(t, err, ErrEmailTaken)
}
