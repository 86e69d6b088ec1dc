package portalsdk

import (
	"context"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

// Session is an authenticated portal session. Access tokens are short-lived
// bearer tokens; there is no refresh flow, a new login mints a new session.
type Session struct {
	client      *SDKClient
	accessToken string
	user        portalapi.UserInfo
}

// AccessToken returns the session's bearer token.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// User returns the account returned at login. May be zero for sessions built
// with NewSessionFromToken.
func (s *Session) User() portalapi.UserInfo {
	return s.user
}

// Me fetches the current account from the service.
func (s *Session) Me(ctx context.Context) (*portalapi.UserInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.UserInfo
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
