package portal_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/portalsdk"
)

/*
 * Common constants and helper functions for portal service end-to-end tests.
 * This includes container setup, the email login flow, and assertions.
 *
 * The service is started with no SMTP relay configured, so login codes land
 * in the container log instead of a mailbox. Tests fish them out of the log
 * to complete the two-step login.
 */

const (
	testImageName = "portal-test:latest"
	minioImage    = "minio/minio:RELEASE.2024-01-16T16-07-38Z"

	minioUser     = "minioadmin"
	minioPassword = "minioadmin"

	jwtSecret       = "e2e-test-secret-not-for-production"
	defaultPassword = "Portal123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Portal Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Portal Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/portal/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupPortalContainer starts minio and the portal service on a shared
// network and returns the portal base URL, the portal container (for log
// scraping), and a cleanup function.
func setupPortalContainer(t *testing.T) (string, testcontainers.Container, func()) {
	t.Helper()
	ctx := context.Background()

	net, err := network.New(ctx)
	require.NoError(t, err)

	minio, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        minioImage,
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			Networks:       []string{net.Name},
			NetworkAliases: map[string][]string{net.Name: {"minio"}},
			WaitingFor:     wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	portal, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env: map[string]string{
				"PORTAL_JWT_SECRET":    jwtSecret,
				"PORTAL_DATABASE_FILE": "/tmp/portal.db",
				"PORTAL_S3_ENDPOINT":   "http://minio:9000",
				"PORTAL_S3_ACCESS_KEY": minioUser,
				"PORTAL_S3_SECRET_KEY": minioPassword,
				"ENV":                  "test",
				"LOG_LEVEL":            "info",
				"LOG_FORMAT":           "json",
				// Relaxed limits so rapid test requests don't trip the
				// production defaults.
				"RATELIMIT_STRICT_REQUESTS":   "1000",
				"RATELIMIT_STRICT_WINDOW_SEC": "60",
				"RATELIMIT_STRICT_BURST":      "1000",
				"RATELIMIT_MODERATE_REQUESTS": "1000",
				"RATELIMIT_MODERATE_BURST":    "1000",
			},
			Networks: []string{net.Name},
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	mappedPort, err := portal.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := portal.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := portal.Terminate(ctx); err != nil {
			t.Logf("failed to terminate portal container: %v", err)
		}
		if err := minio.Terminate(ctx); err != nil {
			t.Logf("failed to terminate minio container: %v", err)
		}
		if err := net.Remove(ctx); err != nil {
			t.Logf("failed to remove network: %v", err)
		}
	}

	return baseURL, portal, cleanup
}

// extractLoginOTP scrapes the most recent login code for an email address
// from the service log. Retries briefly because log delivery lags the HTTP
// response.
func extractLoginOTP(t *testing.T, container testcontainers.Container, email string) string {
	t.Helper()
	ctx := context.Background()

	pattern := regexp.MustCompile(`"to":"` + regexp.QuoteMeta(email) + `".*?"code":"(\d{6})"`)

	var lastErr error
	for attempt := 0; attempt < 20; attempt++ {
		reader, err := container.Logs(ctx)
		if err != nil {
			lastErr = err
			time.Sleep(250 * time.Millisecond)
			continue
		}
		logs, err := io.ReadAll(reader)
		_ = reader.Close()
		if err != nil {
			lastErr = err
			time.Sleep(250 * time.Millisecond)
			continue
		}

		matches := pattern.FindAllSubmatch(logs, -1)
		if len(matches) > 0 {
			// Last match is the most recently issued code.
			return string(matches[len(matches)-1][1])
		}
		time.Sleep(250 * time.Millisecond)
	}

	t.Fatalf("no login OTP found in logs for %s (last error: %v)", email, lastErr)
	return ""
}

// registerRequestFor builds a registration body with the shared test password.
func registerRequestFor(email, username string) portalapi.RegisterRequest {
	return portalapi.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     email,
		Password:  defaultPassword,
	}
}

// registerUser creates an account through the public registration endpoint.
func registerUser(t *testing.T, client *portalsdk.SDKClient, email, username string) *portalapi.RegisterResponse {
	t.Helper()

	resp, err := client.Register(t.Context(), registerRequestFor(email, username))
	require.NoError(t, err, "Registration should succeed")
	require.NotEmpty(t, resp.ID)

	return resp
}

// performLogin walks the full two-step login and returns a session.
func performLogin(t *testing.T, client *portalsdk.SDKClient, container testcontainers.Container, email string) *portalsdk.Session {
	t.Helper()
	ctx := t.Context()

	initResp, err := client.LoginInit(ctx, email, defaultPassword)
	require.NoError(t, err, "Login init should succeed")
	require.True(t, initResp.Exists)
	require.True(t, initResp.OTPSent, "OTP should have been dispatched")

	code := extractLoginOTP(t, container, email)

	session, err := client.LoginVerify(ctx, email, code)
	require.NoError(t, err, "OTP verification should succeed")
	require.NotEmpty(t, session.AccessToken())

	return session
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *portalapi.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIStatus verifies an error is an *APIError with the given status.
func assertAPIStatus(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)

	apiErr, ok := err.(*portalsdk.APIError)
	require.True(t, ok, "%s - expected *portalsdk.APIError, got %T: %v", context, err, err)
	require.Equal(t, status, apiErr.StatusCode, context)
}
