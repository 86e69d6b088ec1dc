package http

import (
	"net/http"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
)

type ProfilesHandler struct {
	ProfileService *service.ProfileService
}

func profileResponse(p domain.Profile) portalapi.ProfileResponse {
	return portalapi.ProfileResponse{
		ID:                p.ID,
		EntityName:        p.EntityName,
		Jurisdiction:      p.Jurisdiction,
		TaxClassification: p.TaxClassification,
		ProfileType:       p.ProfileType,
		ContactEmail:      p.ContactEmail,
		ContactPhone:      p.ContactPhone,
	}
}

func profileFromRequest(req portalapi.ProfileRequest) domain.Profile {
	return domain.Profile{
		EntityName:        req.EntityName,
		Jurisdiction:      req.Jurisdiction,
		TaxClassification: req.TaxClassification,
		ProfileType:       req.ProfileType,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
	}
}

// HandleList returns the caller's investment entities.
//
//	@Summary	List investment profiles
//	@Tags		Profiles
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.ProfileResponse
//	@Router		/api/profiles [get].
func (h *ProfilesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	profiles, err := h.ProfileService.ListProfiles(ctx, user.ID)
	if err != nil {
		writeOwnedError(w, r, err, "list profiles")
		return
	}

	out := make([]portalapi.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, profileResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMe returns the caller's primary entity, creating a default
// individual profile on first access.
//
//	@Summary	Get my profile
//	@Tags		Profiles
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalapi.ProfileResponse
//	@Router		/api/profiles/me [get].
func (h *ProfilesHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	p, err := h.ProfileService.DefaultProfile(ctx, user)
	if err != nil {
		writeOwnedError(w, r, err, "default profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResponse(p))
}

// HandleCreate records an investment entity for the caller.
//
//	@Summary	Create investment profile
//	@Tags		Profiles
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalapi.ProfileRequest	true	"Entity details"
//	@Success	201		{object}	portalapi.ProfileResponse
//	@Failure	400		{object}	portalapi.APIError
//	@Router		/api/profiles [post].
func (h *ProfilesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	var req portalapi.ProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.EntityName == "" {
		portalapi.ErrBadRequest.WithMessage("entity_name is required").WriteError(w)
		return
	}

	p, err := h.ProfileService.CreateProfile(ctx, user.ID, profileFromRequest(req))
	if err != nil {
		writeOwnedError(w, r, err, "create profile")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, profileResponse(p))
}

// HandleGet fetches one of the caller's entities.
//
//	@Summary	Get investment profile
//	@Tags		Profiles
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Profile ID"
//	@Success	200	{object}	portalapi.ProfileResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/profiles/{id} [get].
func (h *ProfilesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	p, err := h.ProfileService.GetProfile(ctx, user.ID, r.PathValue("id"))
	if err != nil {
		writeOwnedError(w, r, err, "get profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResponse(p))
}

// HandleUpdate rewrites one of the caller's entities.
//
//	@Summary	Update investment profile
//	@Tags		Profiles
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Profile ID"
//	@Param		request	body		portalapi.ProfileRequest	true	"New values"
//	@Success	200		{object}	portalapi.ProfileResponse
//	@Failure	404		{object}	portalapi.APIError
//	@Router		/api/profiles/{id} [put].
func (h *ProfilesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	var req portalapi.ProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.EntityName == "" {
		portalapi.ErrBadRequest.WithMessage("entity_name is required").WriteError(w)
		return
	}

	p, err := h.ProfileService.UpdateProfile(ctx, user.ID, r.PathValue("id"), profileFromRequest(req))
	if err != nil {
		writeOwnedError(w, r, err, "update profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profileResponse(p))
}

// HandleDelete removes one of the caller's entities.
//
//	@Summary	Delete investment profile
//	@Tags		Profiles
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Profile ID"
//	@Success	204
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/profiles/{id} [delete].
func (h *ProfilesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	if err := h.ProfileService.DeleteProfile(ctx, user.ID, r.PathValue("id")); err != nil {
		writeOwnedError(w, r, err, "delete profile")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
