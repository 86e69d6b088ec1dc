package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/internal/portal/blob"
	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/internal/portal/store/drivers/sqlite"
	"github.com/victorygp/portal/pkg/idx"
	"github.com/victorygp/portal/pkg/jwtx"
	"github.com/victorygp/portal/pkg/slogx"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (*Router, *jwtx.HS256Signer) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte(testSecret), "portal-test")
	require.NoError(t, err)

	sender := mail.NewMemorySender()
	logger := slogx.New(slogx.Config{Service: "portal-test", Format: "text", Level: "error"})

	r := NewRouter(verifier, "test", st, sender, logger)
	r.AuthService = &service.AuthService{Store: st, Mail: sender, Signer: signer, Issuer: "portal-test"}
	r.UserService = &service.UserService{Store: st}
	r.MFAService = &service.MFAService{Store: st, Issuer: "portal-test"}
	r.InvestmentService = &service.InvestmentService{Store: st}
	r.ProfileService = &service.ProfileService{Store: st}
	r.DocumentService = &service.DocumentService{Store: st, Blobs: blob.NewMemoryStorage()}
	r.DealService = &service.DealService{Store: st}
	r.ApplyRoutes()

	return r, signer
}

func createTestUser(t *testing.T, r *Router, email, role string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     strings.SplitN(email, "@", 2)[0],
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, r.store.Users().CreateUser(context.Background(), u))
	return u
}

func tokenFor(t *testing.T, signer *jwtx.HS256Signer, u domain.User) string {
	t.Helper()

	claims := jwtx.NewAccessClaims(u.Email, u.Role, "portal-test", time.Minute, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *Router, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "127.0.0.1:9999"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutesRequireAuthentication(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/api/investments", "/api/profiles", "/api/deals", "/api/documents", "/api/me"} {
		rec := doJSON(t, r, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestInvestmentIsolationAcrossUsers(t *testing.T) {
	r, signer := newTestRouter(t)

	alice := createTestUser(t, r, "alice@example.com", domain.RoleUser)
	mallory := createTestUser(t, r, "mallory@example.com", domain.RoleUser)

	aliceToken := tokenFor(t, signer, alice)
	malloryToken := tokenFor(t, signer, mallory)

	rec := doJSON(t, r, http.MethodPost, "/api/investments", aliceToken,
		`{"deal_name":"Fund I","investment_total":50000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	t.Run("owner reads own row", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/investments/"+created.ID, aliceToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other user sees 404", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/investments/"+created.ID, malloryToken, "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		rec = doJSON(t, r, http.MethodDelete, "/api/investments/"+created.ID, malloryToken, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("listings stay disjoint", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/investments", malloryToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	r, signer := newTestRouter(t)

	user := createTestUser(t, r, "user@example.com", domain.RoleUser)
	admin := createTestUser(t, r, "admin@example.com", domain.RoleAdmin)

	dealBody := `{"name":"Tower One","deal_type":"REAL_ESTATE"}`

	rec := doJSON(t, r, http.MethodPost, "/api/admin/deals", tokenFor(t, signer, user), dealBody)
	require.Equal(t, http.StatusForbidden, rec.Code)

	for _, path := range []string{"/api/admin/investments", "/api/admin/profiles", "/api/admin/users"} {
		rec := doJSON(t, r, http.MethodGet, path, tokenFor(t, signer, user), "")
		require.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/admin/deals", tokenFor(t, signer, admin), dealBody)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestMyProfileIsCreatedOnFirstAccess(t *testing.T) {
	r, signer := newTestRouter(t)

	alice := createTestUser(t, r, "alice@example.com", domain.RoleUser)
	token := tokenFor(t, signer, alice)

	rec := doJSON(t, r, http.MethodGet, "/api/profiles/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var first struct {
		ID          string `json:"id"`
		ProfileType string `json:"profile_type"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	require.NotEmpty(t, first.ID)
	require.Equal(t, domain.ProfileTypeIndividual, first.ProfileType)

	t.Run("second access returns the same profile", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/profiles/me", token, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var second struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
		require.Equal(t, first.ID, second.ID)
	})
}

func TestAdminListingsSpanAllAccounts(t *testing.T) {
	r, signer := newTestRouter(t)

	alice := createTestUser(t, r, "alice@example.com", domain.RoleUser)
	bob := createTestUser(t, r, "bob@example.com", domain.RoleUser)
	admin := createTestUser(t, r, "admin@example.com", domain.RoleAdmin)

	rec := doJSON(t, r, http.MethodPost, "/api/investments", tokenFor(t, signer, alice),
		`{"deal_name":"Fund I","investment_total":50000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/investments", tokenFor(t, signer, bob),
		`{"deal_name":"Fund II","investment_total":25000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/admin/investments", tokenFor(t, signer, admin), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var investments []struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &investments))
	require.Len(t, investments, 2)

	owners := map[string]bool{}
	for _, inv := range investments {
		owners[inv.UserID] = true
	}
	require.True(t, owners[alice.ID])
	require.True(t, owners[bob.ID])
}

func TestTokenForDeletedAccountIsRejected(t *testing.T) {
	r, signer := newTestRouter(t)

	ghost := createTestUser(t, r, "ghost@example.com", domain.RoleUser)
	token := tokenFor(t, signer, ghost)

	require.NoError(t, r.store.Users().DeleteUser(context.Background(), ghost.ID))

	rec := doJSON(t, r, http.MethodGet, "/api/me", token, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
