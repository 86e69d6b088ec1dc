package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/idx"
)

var (
	ErrInvalidDealType   = errors.New("invalid deal type")
	ErrInvalidDealStatus = errors.New("invalid deal status")
)

type DealService struct {
	Store store.Store
}

// CreateDeal publishes a new offering. Subtype is only kept for real estate
// deals; any other type has it cleared.
func (s *DealService) CreateDeal(ctx context.Context, d domain.Deal) (domain.Deal, error) {
	if !domain.ValidDealType(d.DealType) {
		return domain.Deal{}, ErrInvalidDealType
	}
	if d.DealType != domain.DealTypeRealEstate {
		d.DealSubtype = ""
	}
	if d.Status == "" {
		d.Status = domain.DealStatusPublished
	}
	if !domain.ValidDealStatus(d.Status) {
		return domain.Deal{}, ErrInvalidDealStatus
	}

	d.ID = idx.New().String()
	if err := s.Store.Deals().CreateDeal(ctx, d); err != nil {
		return domain.Deal{}, fmt.Errorf("create deal: %w", err)
	}
	return s.Store.Deals().GetDealByID(ctx, d.ID)
}

// ListPublishedDeals returns the offerings investors may see, newest first.
// Drafts never leave the admin surface.
func (s *DealService) ListPublishedDeals(ctx context.Context) ([]domain.Deal, error) {
	return s.Store.Deals().ListDeals(ctx, domain.DealStatusPublished)
}

// GetPublishedDeal fetches a single offering for an investor. A draft deal
// surfaces as not-found so its existence isn't leaked.
func (s *DealService) GetPublishedDeal(ctx context.Context, id string) (domain.Deal, error) {
	d, err := s.Store.Deals().GetDealByID(ctx, id)
	if err != nil {
		return domain.Deal{}, err
	}
	if d.Status != domain.DealStatusPublished {
		return domain.Deal{}, store.ErrNotFound
	}
	return d, nil
}

// UpdateDeal rewrites an offering's fields.
func (s *DealService) UpdateDeal(ctx context.Context, id string, d domain.Deal) (domain.Deal, error) {
	existing, err := s.Store.Deals().GetDealByID(ctx, id)
	if err != nil {
		return domain.Deal{}, err
	}

	if !domain.ValidDealType(d.DealType) {
		return domain.Deal{}, ErrInvalidDealType
	}
	if d.DealType != domain.DealTypeRealEstate {
		d.DealSubtype = ""
	}
	if d.Status == "" {
		d.Status = existing.Status
	}
	if !domain.ValidDealStatus(d.Status) {
		return domain.Deal{}, ErrInvalidDealStatus
	}

	d.ID = existing.ID
	if err := s.Store.Deals().UpdateDeal(ctx, d); err != nil {
		return domain.Deal{}, fmt.Errorf("update deal: %w", err)
	}
	return s.Store.Deals().GetDealByID(ctx, id)
}

// DeleteDeal removes an offering and its interest rows.
func (s *DealService) DeleteDeal(ctx context.Context, id string) error {
	if _, err := s.Store.Deals().GetDealByID(ctx, id); err != nil {
		return err
	}
	return s.Store.Deals().DeleteDeal(ctx, id)
}

// ExpressInterest flags a user's interest in a published deal. The insert
// races with itself under double-submits, so a unique-violation falls back to
// reviving whatever row is already there. Idempotent from the caller's view.
func (s *DealService) ExpressInterest(ctx context.Context, dealID, userID string) (domain.DealInterest, error) {
	if _, err := s.GetPublishedDeal(ctx, dealID); err != nil {
		return domain.DealInterest{}, err
	}

	interest := domain.DealInterest{
		ID:     idx.New().String(),
		DealID: dealID,
		UserID: userID,
		Status: domain.InterestStatusInterested,
	}

	err := s.Store.Deals().CreateInterest(ctx, interest)
	if err == nil {
		return s.Store.Deals().GetInterest(ctx, dealID, userID)
	}
	if !errors.Is(err, store.ErrAlreadyExists) {
		return domain.DealInterest{}, fmt.Errorf("create interest: %w", err)
	}

	existing, err := s.Store.Deals().GetInterest(ctx, dealID, userID)
	if err != nil {
		return domain.DealInterest{}, err
	}
	if existing.Status != domain.InterestStatusInterested {
		if err := s.Store.Deals().UpdateInterestStatus(ctx, existing.ID, domain.InterestStatusInterested); err != nil {
			return domain.DealInterest{}, err
		}
		return s.Store.Deals().GetInterest(ctx, dealID, userID)
	}
	return existing, nil
}

// WithdrawInterest flips the user's interest row to withdrawn.
func (s *DealService) WithdrawInterest(ctx context.Context, dealID, userID string) (domain.DealInterest, error) {
	existing, err := s.Store.Deals().GetInterest(ctx, dealID, userID)
	if err != nil {
		return domain.DealInterest{}, err
	}
	if existing.Status != domain.InterestStatusWithdrawn {
		if err := s.Store.Deals().UpdateInterestStatus(ctx, existing.ID, domain.InterestStatusWithdrawn); err != nil {
			return domain.DealInterest{}, err
		}
	}
	return s.Store.Deals().GetInterest(ctx, dealID, userID)
}

// ListUserInterests returns all of a user's interest rows.
func (s *DealService) ListUserInterests(ctx context.Context, userID string) ([]domain.DealInterest, error) {
	return s.Store.Deals().ListInterestsByUser(ctx, userID)
}

// ListDealInterests returns all interest rows for a deal. Admin view.
func (s *DealService) ListDealInterests(ctx context.Context, dealID string) ([]domain.DealInterest, error) {
	if _, err := s.Store.Deals().GetDealByID(ctx, dealID); err != nil {
		return nil, err
	}
	return s.Store.Deals().ListInterestsByDeal(ctx, dealID)
}
