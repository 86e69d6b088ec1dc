package portal_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/portalsdk"
)

// TestEmailLoginFlow walks the full two-step login: register, password check,
// OTP from the email channel, token, and /api/me.
func TestEmailLoginFlow(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "jane@example.com", "jane")

	session := performLogin(t, client, container, "jane@example.com")

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", me.Email)
	require.Equal(t, "User", me.Role)
}

// TestLoginEmailProbe verifies the password-less init reports existence
// without dispatching a code.
func TestLoginEmailProbe(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "probe@example.com", "probe")

	resp, err := client.LoginInit(t.Context(), "probe@example.com", "")
	require.NoError(t, err)
	require.True(t, resp.Exists)
	require.False(t, resp.OTPSent)

	resp, err = client.LoginInit(t.Context(), "nobody@example.com", "")
	require.NoError(t, err)
	require.False(t, resp.Exists)
}

// TestLoginRejectsWrongPassword verifies bad credentials come back as 401.
func TestLoginRejectsWrongPassword(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "wrongpw@example.com", "wrongpw")

	_, err := client.LoginInit(t.Context(), "wrongpw@example.com", "not-the-password")
	assertAPIStatus(t, err, http.StatusUnauthorized, "wrong password")
}

// TestLoginRejectsWrongOTP verifies a bad code is a 401 and the real code
// still works afterwards.
func TestLoginRejectsWrongOTP(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "otp@example.com", "otp")

	initResp, err := client.LoginInit(t.Context(), "otp@example.com", defaultPassword)
	require.NoError(t, err)
	require.True(t, initResp.OTPSent)

	_, err = client.LoginVerify(t.Context(), "otp@example.com", "000000")
	assertAPIStatus(t, err, http.StatusUnauthorized, "wrong OTP")

	// A wrong guess must not burn the issued code.
	code := extractLoginOTP(t, container, "otp@example.com")
	session, err := client.LoginVerify(t.Context(), "otp@example.com", code)
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken())
}

// TestDuplicateRegistrationRejected verifies re-registering an email is 409.
func TestDuplicateRegistrationRejected(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "dupe@example.com", "dupe")

	_, err := client.Register(t.Context(), registerRequestFor("dupe@example.com", "dupe2"))
	assertAPIStatus(t, err, http.StatusConflict, "duplicate email")
}

// TestProtectedRoutesRequireToken verifies a bare request is 401.
func TestProtectedRoutesRequireToken(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	session := client.NewSessionFromToken("not-a-real-token")

	_, err := session.ListInvestments(t.Context())
	assertAPIStatus(t, err, http.StatusUnauthorized, "forged token")
}
