package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/internal/portal/store/drivers/sqlite"
	"github.com/victorygp/portal/pkg/idx"
)

func newDealFixture(t *testing.T) (*DealService, store.Store, domain.User) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	user := domain.User{
		ID:           idx.New().String(),
		Username:     "investor",
		Email:        "investor@example.com",
		PasswordHash: "x",
		Role:         domain.RoleUser,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))

	return &DealService{Store: st}, st, user
}

func TestCreateDealValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newDealFixture(t)

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := svc.CreateDeal(ctx, domain.Deal{Name: "Bad", DealType: "CRYPTO"})
		require.ErrorIs(t, err, ErrInvalidDealType)
	})

	t.Run("clears subtype for non real estate", func(t *testing.T) {
		d, err := svc.CreateDeal(ctx, domain.Deal{
			Name:        "SpaceCo Series F",
			DealType:    domain.DealTypePreIPO,
			DealSubtype: "MULTIFAMILY",
		})
		require.NoError(t, err)
		require.Empty(t, d.DealSubtype)
		require.Equal(t, domain.DealStatusPublished, d.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := svc.CreateDeal(ctx, domain.Deal{
			Name:     "Bad Status",
			DealType: domain.DealTypePreIPO,
			Status:   "OPEN",
		})
		require.ErrorIs(t, err, ErrInvalidDealStatus)
	})

	t.Run("keeps subtype for real estate", func(t *testing.T) {
		d, err := svc.CreateDeal(ctx, domain.Deal{
			Name:        "Sunbelt Apartments",
			DealType:    domain.DealTypeRealEstate,
			DealSubtype: "MULTIFAMILY",
		})
		require.NoError(t, err)
		require.Equal(t, "MULTIFAMILY", d.DealSubtype)
	})
}

func TestExpressInterestIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, st, user := newDealFixture(t)

	deal, err := svc.CreateDeal(ctx, domain.Deal{Name: "Tower One", DealType: domain.DealTypeRealEstate})
	require.NoError(t, err)

	first, err := svc.ExpressInterest(ctx, deal.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InterestStatusInterested, first.Status)

	// A double-submit lands on the same row.
	second, err := svc.ExpressInterest(ctx, deal.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	rows, err := st.Deals().ListInterestsByDeal(ctx, deal.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestWithdrawAndReviveInterest(t *testing.T) {
	ctx := context.Background()
	svc, _, user := newDealFixture(t)

	deal, err := svc.CreateDeal(ctx, domain.Deal{Name: "Tower Two", DealType: domain.DealTypeRealEstate})
	require.NoError(t, err)

	created, err := svc.ExpressInterest(ctx, deal.ID, user.ID)
	require.NoError(t, err)

	withdrawn, err := svc.WithdrawInterest(ctx, deal.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, withdrawn.ID)
	require.Equal(t, domain.InterestStatusWithdrawn, withdrawn.Status)

	// Re-expressing interest revives the same row.
	revived, err := svc.ExpressInterest(ctx, deal.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, revived.ID)
	require.Equal(t, domain.InterestStatusInterested, revived.Status)
}

func TestExpressInterestUnknownDeal(t *testing.T) {
	ctx := context.Background()
	svc, _, user := newDealFixture(t)

	_, err := svc.ExpressInterest(ctx, idx.New().String(), user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDraftDealsAreInvisibleToInvestors(t *testing.T) {
	ctx := context.Background()
	svc, _, user := newDealFixture(t)

	draft, err := svc.CreateDeal(ctx, domain.Deal{
		Name:     "Quiet Raise",
		DealType: domain.DealTypePreIPO,
		Status:   domain.DealStatusDraft,
	})
	require.NoError(t, err)

	published, err := svc.CreateDeal(ctx, domain.Deal{
		Name:     "Public Raise",
		DealType: domain.DealTypePreIPO,
	})
	require.NoError(t, err)

	t.Run("listing only shows published", func(t *testing.T) {
		deals, err := svc.ListPublishedDeals(ctx)
		require.NoError(t, err)
		require.Len(t, deals, 1)
		require.Equal(t, published.ID, deals[0].ID)
	})

	t.Run("fetching a draft is not-found", func(t *testing.T) {
		_, err := svc.GetPublishedDeal(ctx, draft.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := svc.GetPublishedDeal(ctx, published.ID)
		require.NoError(t, err)
		require.Equal(t, published.ID, got.ID)
	})

	t.Run("interest in a draft is not-found", func(t *testing.T) {
		_, err := svc.ExpressInterest(ctx, draft.ID, user.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("publishing the draft makes it visible", func(t *testing.T) {
		updated, err := svc.UpdateDeal(ctx, draft.ID, domain.Deal{
			Name:     draft.Name,
			DealType: draft.DealType,
			Status:   domain.DealStatusPublished,
		})
		require.NoError(t, err)
		require.Equal(t, domain.DealStatusPublished, updated.Status)

		_, err = svc.ExpressInterest(ctx, draft.ID, user.ID)
		require.NoError(t, err)
	})
}
