package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

// Admin-only operations. The service rejects these with 403 for non-admin
// sessions.

// CreateDeal publishes a new offering.
func (s *Session) CreateDeal(ctx context.Context, req portalapi.DealRequest) (*portalapi.DealResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/admin/deals", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.DealResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDeal rewrites an offering.
func (s *Session) UpdateDeal(ctx context.Context, id string, req portalapi.DealRequest) (*portalapi.DealResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/admin/deals/"+id, bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.DealResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDeal removes an offering and its interest rows.
func (s *Session) DeleteDeal(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/admin/deals/"+id, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListDealInterests lists who has flagged interest in a deal.
func (s *Session) ListDealInterests(ctx context.Context, dealID string) ([]portalapi.InterestAdminResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/deals/"+dealID+"/interests", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.InterestAdminResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllInvestments returns every position across all accounts.
func (s *Session) ListAllInvestments(ctx context.Context) ([]portalapi.InvestmentResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/investments", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.InvestmentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllProfiles returns every investment profile across all accounts.
func (s *Session) ListAllProfiles(ctx context.Context) ([]portalapi.ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/profiles", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAnyProfile fetches any user's profile by id.
func (s *Session) GetAnyProfile(ctx context.Context, id string) (*portalapi.ProfileResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/profiles/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.ProfileResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns the user directory.
func (s *Session) ListUsers(ctx context.Context) ([]portalapi.AdminUserResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.AdminUserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
