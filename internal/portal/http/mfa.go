package http

import (
	"errors"
	"net/http"

	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/slogx"
)

type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll generates a TOTP secret for the authenticated user.
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret and otpauth URL. MFA stays off until a code is verified.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalapi.MFAEnrollResponse
//	@Failure		409	{object}	portalapi.APIError	"MFA already enabled"
//	@Router			/api/mfa/totp/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromCtx(ctx)
	if !ok {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	enrollment, err := h.MFAService.EnrollTOTP(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrMFAAlreadyEnabled) {
			portalapi.ErrConflict.WithMessage("MFA already enabled").WriteError(w)
			return
		}
		log.Error("mfa enroll failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, portalapi.MFAEnrollResponse{
		Secret:     enrollment.Secret,
		OTPAuthURL: enrollment.URL,
		Issuer:     enrollment.Issuer,
		Account:    enrollment.Account,
	})
}

// HandleVerify checks a TOTP code and turns MFA on.
//
//	@Summary		Verify TOTP enrollment
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	portalapi.MFAVerifyRequest	true	"Six digit code"
//	@Success		204
//	@Failure		401	{object}	portalapi.APIError	"Invalid code"
//	@Router			/api/mfa/totp/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromCtx(ctx)
	if !ok {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	var req portalapi.MFAVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Code == "" {
		portalapi.ErrBadRequest.WriteError(w)
		return
	}

	if err := h.MFAService.VerifyTOTP(ctx, user, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTOTPCode):
			portalapi.ErrUnauthorized.WithMessage("invalid TOTP code").WriteError(w)
		case errors.Is(err, service.ErrMFANotEnrolled):
			portalapi.ErrBadRequest.WithMessage("enroll before verifying").WriteError(w)
		case errors.Is(err, service.ErrMFAAlreadyEnabled):
			portalapi.ErrConflict.WithMessage("MFA already enabled").WriteError(w)
		default:
			log.Error("mfa verify failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove disables MFA after a valid current code.
//
//	@Summary		Remove TOTP MFA
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	portalapi.MFAVerifyRequest	true	"Six digit code"
//	@Success		204
//	@Failure		401	{object}	portalapi.APIError	"Invalid code"
//	@Router			/api/mfa/totp [delete].
func (h *MFAHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := UserFromCtx(ctx)
	if !ok {
		portalapi.ErrUnauthorized.WriteError(w)
		return
	}

	var req portalapi.MFAVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Code == "" {
		portalapi.ErrBadRequest.WriteError(w)
		return
	}

	if err := h.MFAService.RemoveMFA(ctx, user, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTOTPCode):
			portalapi.ErrUnauthorized.WithMessage("invalid TOTP code").WriteError(w)
		case errors.Is(err, service.ErrMFANotEnabled):
			portalapi.ErrBadRequest.WithMessage("MFA not enabled").WriteError(w)
		default:
			log.Error("mfa remove failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
