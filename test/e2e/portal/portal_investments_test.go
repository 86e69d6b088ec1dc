package portal_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/portalsdk"
)

// TestInvestmentLifecycle covers create, read, update, summary, and delete
// through the public API.
func TestInvestmentLifecycle(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "investor@example.com", "investor")
	session := performLogin(t, client, container, "investor@example.com")
	ctx := t.Context()

	created, err := session.CreateInvestment(ctx, portalapi.InvestmentRequest{
		DealName:        "Fund I",
		InvestmentTotal: 50000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Active", created.Status)

	fetched, err := session.GetInvestment(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Fund I", fetched.DealName)

	updated, err := session.UpdateInvestment(ctx, created.ID, portalapi.InvestmentRequest{
		DealName:          "Fund I",
		InvestmentTotal:   50000,
		DistributionTotal: 12000,
		Status:            "Exited",
	})
	require.NoError(t, err)
	require.Equal(t, "Exited", updated.Status)

	summary, err := session.GetInvestmentSummary(ctx)
	require.NoError(t, err)
	require.InDelta(t, 50000, summary.InvestedTotal, 0.001)
	require.InDelta(t, 12000, summary.DistributionTotal, 0.001)
	require.Equal(t, 1, summary.Count)

	require.NoError(t, session.DeleteInvestment(ctx, created.ID))

	_, err = session.GetInvestment(ctx, created.ID)
	assertAPIStatus(t, err, http.StatusNotFound, "deleted investment")
}

// TestInvestmentIsolation verifies one user cannot see another's rows.
func TestInvestmentIsolation(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "alice@example.com", "alice")
	registerUser(t, client, "mallory@example.com", "mallory")

	alice := performLogin(t, client, container, "alice@example.com")
	mallory := performLogin(t, client, container, "mallory@example.com")
	ctx := t.Context()

	created, err := alice.CreateInvestment(ctx, portalapi.InvestmentRequest{
		DealName:        "Private Fund",
		InvestmentTotal: 75000,
	})
	require.NoError(t, err)

	// Existence must not leak: the other user gets 404, not 403.
	_, err = mallory.GetInvestment(ctx, created.ID)
	assertAPIStatus(t, err, http.StatusNotFound, "cross-user read")

	err = mallory.DeleteInvestment(ctx, created.ID)
	assertAPIStatus(t, err, http.StatusNotFound, "cross-user delete")

	list, err := mallory.ListInvestments(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

// TestProfileLifecycle covers investment profile CRUD.
func TestProfileLifecycle(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "entity@example.com", "entity")
	session := performLogin(t, client, container, "entity@example.com")
	ctx := t.Context()

	created, err := session.CreateProfile(ctx, portalapi.ProfileRequest{
		EntityName:   "Sunrise Holdings LLC",
		Jurisdiction: "DE",
		ProfileType:  "LLC",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := session.UpdateProfile(ctx, created.ID, portalapi.ProfileRequest{
		EntityName:   "Sunrise Holdings LLC",
		Jurisdiction: "WY",
		ProfileType:  "LLC",
	})
	require.NoError(t, err)
	require.Equal(t, "WY", updated.Jurisdiction)

	list, err := session.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, session.DeleteProfile(ctx, created.ID))

	list, err = session.ListProfiles(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	// With no profiles left, the "me" endpoint provisions a default one.
	me, err := session.GetMyProfile(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, me.ID)
	require.Equal(t, "INDIVIDUAL", me.ProfileType)
}
