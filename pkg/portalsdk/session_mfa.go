package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

// EnrollTOTP starts TOTP enrollment and returns the shared secret and
// otpauth:// URL for the authenticator app.
func (s *Session) EnrollTOTP(ctx context.Context) (*portalapi.MFAEnrollResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/mfa/totp/enroll", nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.MFAEnrollResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTOTP confirms enrollment with a current authenticator code.
func (s *Session) VerifyTOTP(ctx context.Context, code string) error {
	body, err := json.Marshal(portalapi.MFAVerifyRequest{Code: code})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/mfa/totp/verify", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RemoveTOTP removes the authenticator. Requires a current code.
func (s *Session) RemoveTOTP(ctx context.Context, code string) error {
	body, err := json.Marshal(portalapi.MFAVerifyRequest{Code: code})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/mfa/totp", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
