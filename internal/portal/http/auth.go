package http

import (
	"errors"
	"net/http"

	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/pkg/cryptox"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates a new investor account.
//
//	@Summary		Register a new account
//	@Description	Creates a user account with role "User". Email must be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.RegisterRequest	true	"Account details"
//	@Success		201		{object}	portalapi.RegisterResponse
//	@Failure		400		{object}	portalapi.APIError	"Missing required fields"
//	@Failure		409		{object}	portalapi.APIError	"Email or username already registered"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		portalapi.ErrBadRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		portalapi.ErrBadRequest.WithMessage("email, username and password are required").WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, req.FirstName, req.LastName, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			portalapi.ErrConflict.WriteError(w)
		case errors.Is(err, cryptox.ErrPasswordTooLong):
			portalapi.ErrBadRequest.WithMessage("password too long").WriteError(w)
		default:
			log.Error("register failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, portalapi.RegisterResponse{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
}

// HandleLogin is the first login step. Without a password it only reports
// whether the account exists; with a password it verifies it and dispatches
// a one-time code to the account's email.
//
//	@Summary		Start a login
//	@Description	Probe for account existence (no password) or trigger the one-time code email (with password).
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.LoginInitRequest	true	"Email, optionally with password"
//	@Success		200		{object}	portalapi.LoginInitResponse
//	@Failure		401		{object}	portalapi.APIError	"Wrong password"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.LoginInitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" {
		portalapi.ErrBadRequest.WriteError(w)
		return
	}

	exists, err := h.AuthService.CheckEmail(ctx, req.Email)
	if err != nil {
		log.Error("email lookup failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)

	if req.Password == "" {
		httpx.WriteJSON(w, http.StatusOK, portalapi.LoginInitResponse{Exists: exists})
		return
	}

	if err := h.AuthService.LoginInit(ctx, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			portalapi.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("login init failed", "err", err)
		portalapi.ErrUpstream.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalapi.LoginInitResponse{Exists: true, OTPSent: true})
}

// HandleLoginVerify redeems a one-time code for an access token.
//
//	@Summary		Verify a login code
//	@Description	Exchanges a valid one-time code for a bearer token. Codes are single use.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalapi.LoginVerifyRequest	true	"Email and code"
//	@Success		200		{object}	portalapi.LoginVerifyResponse
//	@Failure		401		{object}	portalapi.APIError	"Invalid or expired code"
//	@Failure		404		{object}	portalapi.APIError	"No pending login challenge"
//	@Router			/api/auth/login/verify [post].
func (h *AuthHandler) HandleLoginVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.LoginVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" || req.OTP == "" {
		portalapi.ErrBadRequest.WriteError(w)
		return
	}

	token, user, err := h.AuthService.VerifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoChallenge):
			portalapi.ErrNotFound.WithMessage("no pending login challenge").WriteError(w)
		case errors.Is(err, service.ErrOTPExpired):
			portalapi.ErrUnauthorized.WithMessage("login code expired").WriteError(w)
		case errors.Is(err, service.ErrInvalidOTP):
			portalapi.ErrUnauthorized.WithMessage("invalid login code").WriteError(w)
		default:
			log.Error("login verify failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalapi.LoginVerifyResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: portalapi.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.FullName(),
			Role:  user.Role,
		},
	})
}

// HandleMe returns the authenticated account.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalapi.UserInfo
//	@Failure		401	{object}	portalapi.APIError
//	@Router			/api/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromCtx(r.Context())
	if !ok {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalapi.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.FullName(),
		Role:  user.Role,
	})
}
