package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// Register creates a new portal account.
func (c *SDKClient) Register(ctx context.Context, req portalapi.RegisterRequest) (*portalapi.RegisterResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoginInit starts a login. With only an email it acts as an existence probe;
// with a password it triggers the OTP email on success.
func (c *SDKClient) LoginInit(ctx context.Context, email, password string) (*portalapi.LoginInitResponse, error) {
	body, err := json.Marshal(portalapi.LoginInitRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.LoginInitResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoginVerify redeems an emailed OTP for an authenticated session.
func (c *SDKClient) LoginVerify(ctx context.Context, email, otp string) (*Session, error) {
	body, err := json.Marshal(portalapi.LoginVerifyRequest{Email: email, OTP: otp})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/login/verify", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.LoginVerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{client: c, accessToken: out.AccessToken, user: out.User}, nil
}
