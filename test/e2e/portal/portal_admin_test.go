package portal_test

import (
	"net/http"
	"testing"

	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/portalsdk"
)

// TestAdminRoutesRejectRegularUsers verifies the admin surface is role-gated.
// Accounts created through public registration always carry the user role, so
// every admin call here must come back 403.
func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "pleb@example.com", "pleb")
	session := performLogin(t, client, container, "pleb@example.com")
	ctx := t.Context()

	_, err := session.CreateDeal(ctx, portalapi.DealRequest{
		Name:     "Tower One",
		DealType: "REAL_ESTATE",
	})
	assertAPIStatus(t, err, http.StatusForbidden, "create deal as user")

	_, err = session.ListUsers(ctx)
	assertAPIStatus(t, err, http.StatusForbidden, "list users as user")

	_, err = session.ListAllInvestments(ctx)
	assertAPIStatus(t, err, http.StatusForbidden, "list all investments as user")

	_, err = session.ListAllProfiles(ctx)
	assertAPIStatus(t, err, http.StatusForbidden, "list all profiles as user")

	_, err = session.ListDealInterests(ctx, "any-id")
	assertAPIStatus(t, err, http.StatusForbidden, "list interests as user")

	err = session.DeleteDeal(ctx, "any-id")
	assertAPIStatus(t, err, http.StatusForbidden, "delete deal as user")
}
