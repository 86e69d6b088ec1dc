package portal_test

import (
	"testing"

	"github.com/victorygp/portal/pkg/portalsdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works without auth.
func TestLivezEndpoint(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check sees the database.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Readyz endpoint is healthy")
}
