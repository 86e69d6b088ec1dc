package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/jwtx"
	"github.com/victorygp/portal/pkg/slogx"

	_ "github.com/victorygp/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	mail  mail.Sender

	AuthService       *service.AuthService
	UserService       *service.UserService
	MFAService        *service.MFAService
	InvestmentService *service.InvestmentService
	ProfileService    *service.ProfileService
	DocumentService   *service.DocumentService
	DealService       *service.DealService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	sender mail.Sender,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		mail:         sender,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMFA()
	r.registerInvestments()
	r.registerProfiles()
	r.registerDeals()
	r.registerDocuments()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Investor Portal API
//	@version		0.1.0
//	@description	Backend for the investor portal: email OTP login, investments, investment profiles, deals, and PDF documents.
//	@description
//	@description				Sessions are JWT bearer tokens signed with HS256.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with token verification, account resolution, and a
// per-subject rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		RequireUser(r.UserService),
		httpx.RateLimitBySubject(limit),
	)
}

// securedAdmin additionally requires the admin role.
func (r *Router) securedAdmin(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		RequireUser(r.UserService),
		RequireAdmin(),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Unauthenticated endpoints carry strict per-IP limits: they are the
	// brute-force surface.
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/auth/login/verify",
		httpx.Chain(http.HandlerFunc(h.HandleLoginVerify),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /api/me", r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFAService}

	r.Mux.Handle("POST /api/mfa/totp/enroll", r.secured(http.HandlerFunc(h.HandleEnroll), httpx.ModerateLimit))
	// Strict limit on verify to slow down TOTP guessing.
	r.Mux.Handle("POST /api/mfa/totp/verify", r.secured(http.HandlerFunc(h.HandleVerify), httpx.StrictLimit))
	r.Mux.Handle("DELETE /api/mfa/totp", r.secured(http.HandlerFunc(h.HandleRemove), httpx.ModerateLimit))
}

func (r *Router) registerInvestments() {
	h := &InvestmentsHandler{InvestmentService: r.InvestmentService}

	r.Mux.Handle("GET /api/investments", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /api/investments/summary", r.secured(http.HandlerFunc(h.HandleSummary), httpx.LenientLimit))
	r.Mux.Handle("POST /api/investments", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/investments/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/investments/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/investments/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /api/profiles", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /api/profiles/me", r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
	r.Mux.Handle("POST /api/profiles", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/profiles/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /api/profiles/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/profiles/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerDeals() {
	h := &DealsHandler{DealService: r.DealService}

	r.Mux.Handle("GET /api/deals", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /api/deals/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("POST /api/deals/{id}/interest", r.secured(http.HandlerFunc(h.HandleExpressInterest), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/deals/{id}/interest", r.secured(http.HandlerFunc(h.HandleWithdrawInterest), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/me/interests", r.secured(http.HandlerFunc(h.HandleMyInterests), httpx.LenientLimit))
}

func (r *Router) registerDocuments() {
	h := &DocumentsHandler{DocumentService: r.DocumentService}

	r.Mux.Handle("GET /api/documents", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /api/documents", r.secured(http.HandlerFunc(h.HandleUpload), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/documents/{id}/download", r.secured(http.HandlerFunc(h.HandleDownload), httpx.LenientLimit))
	r.Mux.Handle("GET /api/documents/{id}/view", r.secured(http.HandlerFunc(h.HandleView), httpx.LenientLimit))
	r.Mux.Handle("DELETE /api/documents/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		DealService:       r.DealService,
		UserService:       r.UserService,
		DocumentService:   r.DocumentService,
		InvestmentService: r.InvestmentService,
		ProfileService:    r.ProfileService,
		Mail:              r.mail,
	}

	r.Mux.Handle("POST /api/admin/deals", r.securedAdmin(http.HandlerFunc(h.HandleCreateDeal), httpx.ModerateLimit))
	r.Mux.Handle("PUT /api/admin/deals/{id}", r.securedAdmin(http.HandlerFunc(h.HandleUpdateDeal), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/admin/deals/{id}", r.securedAdmin(http.HandlerFunc(h.HandleDeleteDeal), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/deals/{id}/interests", r.securedAdmin(http.HandlerFunc(h.HandleDealInterests), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/investments", r.securedAdmin(http.HandlerFunc(h.HandleListInvestments), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/profiles", r.securedAdmin(http.HandlerFunc(h.HandleListProfiles), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/profiles/{id}", r.securedAdmin(http.HandlerFunc(h.HandleGetProfile), httpx.ModerateLimit))
	r.Mux.Handle("GET /api/admin/users", r.securedAdmin(http.HandlerFunc(h.HandleListUsers), httpx.ModerateLimit))
	r.Mux.Handle("POST /api/admin/users/{id}/documents", r.securedAdmin(http.HandlerFunc(h.HandleUploadForUser), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
