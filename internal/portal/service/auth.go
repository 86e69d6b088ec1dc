package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/cryptox"
	"github.com/victorygp/portal/pkg/idx"
	"github.com/victorygp/portal/pkg/jwtx"
)

// DefaultOTPTTL is how long a login code stays redeemable.
const DefaultOTPTTL = 5 * time.Minute

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoChallenge        = errors.New("no pending login challenge")
	ErrOTPExpired         = errors.New("login code expired")
	ErrInvalidOTP         = errors.New("invalid login code")
	ErrEmailTaken         = errors.New("email or username already registered")
)

// AuthService implements the two-step email login: password check dispatches
// a one-time code, code verification mints the access token.
type AuthService struct {
	Store  store.Store
	Mail   mail.Sender
	Signer jwtx.Signer
	Issuer string

	// OTPTTL defaults to DefaultOTPTTL when zero.
	OTPTTL time.Duration

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AuthService) otpTTL() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return DefaultOTPTTL
}

// NormalizeEmail lowercases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account with role "User".
func (s *AuthService) Register(ctx context.Context, firstName, lastName, username, email, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// CheckEmail reports whether an account exists for the email. Drives the
// first login screen.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// LoginInit verifies the password and, on success, replaces any live
// challenge for the account and emails a fresh code. A wrong password
// returns ErrInvalidCredentials without touching the challenge table.
func (s *AuthService) LoginInit(ctx context.Context, email, password string) error {
	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return ErrInvalidCredentials
	}

	code, err := cryptox.GenerateOTP()
	if err != nil {
		return fmt.Errorf("generate login code: %w", err)
	}

	id, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return fmt.Errorf("generate challenge id: %w", err)
	}

	// Only the fingerprint is persisted; the plaintext code exists in the
	// outbound email and nowhere else.
	now := s.now()
	challenge := domain.OTPChallenge{
		ID:        id,
		UserID:    u.ID,
		Code:      cryptox.FingerprintToken(code),
		CreatedAt: now,
		ExpiresAt: now.Add(s.otpTTL()),
	}

	if err := s.Store.OTPChallenges().ReplaceOTPChallenge(ctx, challenge); err != nil {
		return fmt.Errorf("store login challenge: %w", err)
	}

	if err := s.Mail.SendLoginOTP(ctx, u.Email, u.FullName(), code); err != nil {
		return fmt.Errorf("send login code: %w", err)
	}
	return nil
}

// VerifyOTP redeems a login code. The challenge is consumed on success, so a
// code can be used exactly once. An account with no live challenge returns
// ErrNoChallenge; an expired challenge is cleared and returns ErrOTPExpired;
// a mismatched code returns ErrInvalidOTP and leaves the challenge standing.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrNoChallenge
		}
		return "", domain.User{}, err
	}

	challenge, err := s.Store.OTPChallenges().GetOTPChallengeByUser(ctx, u.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrNoChallenge
		}
		return "", domain.User{}, err
	}

	if challenge.Expired(s.now()) {
		// A replayed expired code must not look like a mismatch later.
		if err := s.Store.OTPChallenges().DeleteOTPChallenge(ctx, challenge.ID); err != nil {
			return "", domain.User{}, fmt.Errorf("clear expired challenge: %w", err)
		}
		return "", domain.User{}, ErrOTPExpired
	}

	if challenge.Code != cryptox.FingerprintToken(code) {
		return "", domain.User{}, ErrInvalidOTP
	}

	if err := s.Store.OTPChallenges().DeleteOTPChallenge(ctx, challenge.ID); err != nil {
		return "", domain.User{}, fmt.Errorf("consume login challenge: %w", err)
	}

	claims := jwtx.NewAccessClaims(u.Email, u.Role, s.Issuer, jwtx.DefaultAccessTokenTTL, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("sign access token: %w", err)
	}
	return token, u, nil
}
