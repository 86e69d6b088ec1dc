package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

// ListProfiles returns the caller's investment profiles.
func (s *Session) ListProfiles(ctx context.Context) ([]portalapi.ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/profiles", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyProfile returns the caller's primary profile, which the service
// creates on first access.
func (s *Session) GetMyProfile(ctx context.Context) (*portalapi.ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/profiles/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProfile creates an investment profile on the caller's account.
func (s *Session) CreateProfile(ctx context.Context, req portalapi.ProfileRequest) (*portalapi.ProfileResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/profiles", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches one of the caller's profiles.
func (s *Session) GetProfile(ctx context.Context, id string) (*portalapi.ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/profiles/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile rewrites one of the caller's profiles.
func (s *Session) UpdateProfile(ctx context.Context, id string, req portalapi.ProfileRequest) (*portalapi.ProfileResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/profiles/"+id, bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProfile removes one of the caller's profiles.
func (s *Session) DeleteProfile(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/profiles/"+id, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
