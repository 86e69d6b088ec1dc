package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store/drivers/sqlite"
	"github.com/victorygp/portal/pkg/idx"
)

func newInvestmentFixture(t *testing.T) (*InvestmentService, domain.User, domain.User) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	alice := domain.User{
		ID: idx.New().String(), Username: "alice",
		Email: "alice@example.com", PasswordHash: "x", Role: domain.RoleUser,
	}
	mallory := domain.User{
		ID: idx.New().String(), Username: "mallory",
		Email: "mallory@example.com", PasswordHash: "x", Role: domain.RoleUser,
	}
	require.NoError(t, st.Users().CreateUser(ctx, alice))
	require.NoError(t, st.Users().CreateUser(ctx, mallory))

	return &InvestmentService{Store: st}, alice, mallory
}

func TestInvestmentsAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc, alice, mallory := newInvestmentFixture(t)

	inv, err := svc.CreateInvestment(ctx, alice.ID, domain.Investment{
		DealName:        "Fund I",
		InvestmentTotal: 50000,
	})
	require.NoError(t, err)
	require.Equal(t, domain.InvestmentStatusActive, inv.Status)

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.GetInvestment(ctx, alice.ID, inv.ID)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
	})

	t.Run("other user cannot read", func(t *testing.T) {
		_, err := svc.GetInvestment(ctx, mallory.ID, inv.ID)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("other user cannot update or delete", func(t *testing.T) {
		_, err := svc.UpdateInvestment(ctx, mallory.ID, inv.ID, domain.Investment{DealName: "Hijacked"})
		require.ErrorIs(t, err, ErrNotOwner)

		err = svc.DeleteInvestment(ctx, mallory.ID, inv.ID)
		require.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("listings never cross owners", func(t *testing.T) {
		mine, err := svc.ListInvestments(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		theirs, err := svc.ListInvestments(ctx, mallory.ID)
		require.NoError(t, err)
		require.Empty(t, theirs)
	})
}

func TestInvestmentSummary(t *testing.T) {
	ctx := context.Background()
	svc, alice, _ := newInvestmentFixture(t)

	_, err := svc.CreateInvestment(ctx, alice.ID, domain.Investment{DealName: "A", InvestmentTotal: 10000, DistributionTotal: 500})
	require.NoError(t, err)
	_, err = svc.CreateInvestment(ctx, alice.ID, domain.Investment{DealName: "B", InvestmentTotal: 2500, DistributionTotal: 125})
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 12500.0, sum.InvestedTotal)
	require.Equal(t, 625.0, sum.DistributionTotal)
	require.Equal(t, 2, sum.Count)
}
