package portalsdk

import (
	"context"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

// ListDeals returns the published offerings, newest first.
func (s *Session) ListDeals(ctx context.Context) ([]portalapi.DealResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/deals", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.DealResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDeal fetches one offering.
func (s *Session) GetDeal(ctx context.Context, id string) (*portalapi.DealResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/deals/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.DealResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExpressInterest flags the caller's interest in a deal. Repeat calls are
// idempotent.
func (s *Session) ExpressInterest(ctx context.Context, dealID string) (*portalapi.InterestResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/deals/"+dealID+"/interest", nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.InterestResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// WithdrawInterest withdraws the caller's interest in a deal.
func (s *Session) WithdrawInterest(ctx context.Context, dealID string) (*portalapi.InterestResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/deals/"+dealID+"/interest", nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.InterestResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMyInterests returns the caller's deal interests, withdrawn included.
func (s *Session) ListMyInterests(ctx context.Context) ([]portalapi.InterestResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/me/interests", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.InterestResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
