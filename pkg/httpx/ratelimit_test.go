package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/httpx"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3}
	h := httpx.RateLimitMiddleware(cfg, httpx.IPKeyExtractor)(okHandler())

	for range 3 {
		rec := doRequest(t, h, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitBlocksBeyondBurst(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	h := httpx.RateLimitMiddleware(cfg, httpx.IPKeyExtractor)(okHandler())

	doRequest(t, h, "10.0.0.2:1234")
	doRequest(t, h, "10.0.0.2:1234")
	rec := doRequest(t, h, "10.0.0.2:1234")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitMiddleware(cfg, httpx.IPKeyExtractor)(okHandler())

	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.3:1").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(t, h, "10.0.0.3:1").Code)
	// A different client is unaffected.
	require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.4:1").Code)
}

func TestRateLimitAllowsWhenKeyMissing(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	empty := func(r *http.Request) string { return "" }
	h := httpx.RateLimitMiddleware(cfg, empty)(okHandler())

	for range 5 {
		require.Equal(t, http.StatusOK, doRequest(t, h, "10.0.0.5:1").Code)
	}
}
