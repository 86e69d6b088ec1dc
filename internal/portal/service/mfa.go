package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnabled     = errors.New("MFA not enabled for this user")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this user")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled, enroll first")
)

type MFAService struct {
	Store  store.Store
	Issuer string // Issuer name for TOTP (shows up in authenticator apps)
}

// MFAEnrollment is returned by EnrollTOTP for the client to render a QR code.
type MFAEnrollment struct {
	Secret  string // Base32 encoded secret
	URL     string // otpauth:// URL
	Issuer  string
	Account string
}

// EnrollTOTP generates a TOTP secret for the user. MFA is not enabled until
// the user verifies a code from their authenticator.
func (s *MFAService) EnrollTOTP(ctx context.Context, user domain.User) (MFAEnrollment, error) {
	if user.MFAEnabled != nil {
		return MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return MFAEnrollment{}, fmt.Errorf("generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, user.ID, key.Secret()); err != nil {
		return MFAEnrollment{}, fmt.Errorf("store MFA secret: %w", err)
	}

	return MFAEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: user.Email,
	}, nil
}

// VerifyTOTP checks a code against the enrolled secret and enables MFA.
func (s *MFAService) VerifyTOTP(ctx context.Context, user domain.User, code string) error {
	if user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if user.MFAEnabled != nil {
		return ErrMFAAlreadyEnabled
	}

	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Users().EnableMFA(ctx, user.ID)
}

// RemoveMFA disables MFA after verifying a current code.
func (s *MFAService) RemoveMFA(ctx context.Context, user domain.User, code string) error {
	if user.MFAEnabled == nil || user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnabled
	}

	if !totp.Validate(code, *user.MFASecret) {
		return ErrInvalidTOTPCode
	}

	return s.Store.Users().DisableMFA(ctx, user.ID)
}
