package service

import (
	"context"
	"fmt"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/idx"
)

type ProfileService struct {
	Store store.Store
}

// CreateProfile records an investment entity for the given owner.
func (s *ProfileService) CreateProfile(ctx context.Context, ownerID string, p domain.Profile) (domain.Profile, error) {
	p.ID = idx.New().String()
	p.UserID = ownerID

	if err := s.Store.Profiles().CreateProfile(ctx, p); err != nil {
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return s.Store.Profiles().GetProfileByID(ctx, p.ID)
}

// ListProfiles returns the owner's entities.
func (s *ProfileService) ListProfiles(ctx context.Context, ownerID string) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfilesByUser(ctx, ownerID)
}

// DefaultProfile returns the owner's primary entity, creating an individual
// profile named after the account when none exists yet. First-login UX: the
// frontend always has a profile to render.
func (s *ProfileService) DefaultProfile(ctx context.Context, owner domain.User) (domain.Profile, error) {
	profiles, err := s.Store.Profiles().ListProfilesByUser(ctx, owner.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	if len(profiles) > 0 {
		// Oldest profile is the primary one; listings are newest first.
		return profiles[len(profiles)-1], nil
	}

	return s.CreateProfile(ctx, owner.ID, domain.Profile{
		EntityName:   owner.FullName(),
		ProfileType:  domain.ProfileTypeIndividual,
		ContactEmail: owner.Email,
	})
}

// ListAllProfiles returns every entity. Admin view.
func (s *ProfileService) ListAllProfiles(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListAllProfiles(ctx)
}

// GetProfileByID fetches an entity without an ownership check. Admin view.
func (s *ProfileService) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	return s.Store.Profiles().GetProfileByID(ctx, id)
}

// GetProfile fetches an entity, enforcing ownership.
func (s *ProfileService) GetProfile(ctx context.Context, ownerID, id string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfileByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if p.UserID != ownerID {
		return domain.Profile{}, ErrNotOwner
	}
	return p, nil
}

// UpdateProfile rewrites an entity's fields, enforcing ownership.
func (s *ProfileService) UpdateProfile(ctx context.Context, ownerID, id string, p domain.Profile) (domain.Profile, error) {
	existing, err := s.GetProfile(ctx, ownerID, id)
	if err != nil {
		return domain.Profile{}, err
	}

	p.ID = existing.ID
	p.UserID = existing.UserID

	if err := s.Store.Profiles().UpdateProfile(ctx, p); err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return s.Store.Profiles().GetProfileByID(ctx, id)
}

// DeleteProfile removes an entity, enforcing ownership.
func (s *ProfileService) DeleteProfile(ctx context.Context, ownerID, id string) error {
	if _, err := s.GetProfile(ctx, ownerID, id); err != nil {
		return err
	}
	return s.Store.Profiles().DeleteProfile(ctx, id)
}
