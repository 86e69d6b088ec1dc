package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/victorygp/portal/pkg/portalapi"
)

// ListInvestments returns the caller's investments.
func (s *Session) ListInvestments(ctx context.Context) ([]portalapi.InvestmentResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/investments", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.InvestmentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetInvestmentSummary returns the caller's portfolio totals.
func (s *Session) GetInvestmentSummary(ctx context.Context) (*portalapi.InvestmentSummaryResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/investments/summary", nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.InvestmentSummaryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvestment records an investment on the caller's account.
func (s *Session) CreateInvestment(ctx context.Context, req portalapi.InvestmentRequest) (*portalapi.InvestmentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/investments", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.InvestmentResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvestment fetches one of the caller's investments.
func (s *Session) GetInvestment(ctx context.Context, id string) (*portalapi.InvestmentResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/investments/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var out portalapi.InvestmentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvestment rewrites one of the caller's investments.
func (s *Session) UpdateInvestment(ctx context.Context, id string, req portalapi.InvestmentRequest) (*portalapi.InvestmentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/investments/"+id, bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var out portalapi.InvestmentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvestment removes one of the caller's investments.
func (s *Session) DeleteInvestment(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/investments/"+id, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
