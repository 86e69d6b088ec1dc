package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/idx"
)

// ErrNotOwner is returned when a user touches a row that belongs to someone
// else. Handlers translate it to a 404 so row existence isn't leaked.
var ErrNotOwner = errors.New("resource belongs to another user")

type InvestmentService struct {
	Store store.Store
}

// CreateInvestment records a position for the given owner.
func (s *InvestmentService) CreateInvestment(ctx context.Context, ownerID string, inv domain.Investment) (domain.Investment, error) {
	inv.ID = idx.New().String()
	inv.UserID = ownerID
	if inv.Status == "" {
		inv.Status = domain.InvestmentStatusActive
	}

	if err := s.Store.Investments().CreateInvestment(ctx, inv); err != nil {
		return domain.Investment{}, fmt.Errorf("create investment: %w", err)
	}
	return s.Store.Investments().GetInvestmentByID(ctx, inv.ID)
}

// ListInvestments returns the owner's positions.
func (s *InvestmentService) ListInvestments(ctx context.Context, ownerID string) ([]domain.Investment, error) {
	return s.Store.Investments().ListInvestmentsByUser(ctx, ownerID)
}

// ListAllInvestments returns every position. Admin view.
func (s *InvestmentService) ListAllInvestments(ctx context.Context) ([]domain.Investment, error) {
	return s.Store.Investments().ListAllInvestments(ctx)
}

// GetInvestment fetches a position, enforcing ownership.
func (s *InvestmentService) GetInvestment(ctx context.Context, ownerID, id string) (domain.Investment, error) {
	inv, err := s.Store.Investments().GetInvestmentByID(ctx, id)
	if err != nil {
		return domain.Investment{}, err
	}
	if inv.UserID != ownerID {
		return domain.Investment{}, ErrNotOwner
	}
	return inv, nil
}

// UpdateInvestment rewrites a position's mutable fields, enforcing ownership.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, ownerID, id string, inv domain.Investment) (domain.Investment, error) {
	existing, err := s.GetInvestment(ctx, ownerID, id)
	if err != nil {
		return domain.Investment{}, err
	}

	inv.ID = existing.ID
	inv.UserID = existing.UserID
	if inv.Status == "" {
		inv.Status = existing.Status
	}

	if err := s.Store.Investments().UpdateInvestment(ctx, inv); err != nil {
		return domain.Investment{}, fmt.Errorf("update investment: %w", err)
	}
	return s.Store.Investments().GetInvestmentByID(ctx, id)
}

// DeleteInvestment removes a position, enforcing ownership.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, ownerID, id string) error {
	if _, err := s.GetInvestment(ctx, ownerID, id); err != nil {
		return err
	}
	return s.Store.Investments().DeleteInvestment(ctx, id)
}

// Summary aggregates the owner's totals for the dashboard.
func (s *InvestmentService) Summary(ctx context.Context, ownerID string) (domain.InvestmentSummary, error) {
	return s.Store.Investments().SummarizeInvestmentsByUser(ctx, ownerID)
}
