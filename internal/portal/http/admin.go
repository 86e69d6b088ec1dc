package http

import (
	"errors"
	"net/http"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/slogx"
)

// AdminHandler holds the admin-only operations: publishing deals, browsing
// the user directory, and uploading documents on a user's behalf.
type AdminHandler struct {
	DealService       *service.DealService
	UserService       *service.UserService
	DocumentService   *service.DocumentService
	InvestmentService *service.InvestmentService
	ProfileService    *service.ProfileService
	Mail              mail.Sender
}

func dealFromRequest(req portalapi.DealRequest) domain.Deal {
	return domain.Deal{
		Name:                req.Name,
		DealType:            req.DealType,
		DealSubtype:         req.DealSubtype,
		DealStage:           req.DealStage,
		Sponsors:            req.Sponsors,
		CloseDate:           req.CloseDate,
		OfferingSize:        req.OfferingSize,
		UnitPrice:           req.UnitPrice,
		Status:              req.Status,
		FundingInstructions: req.FundingInstructions,
		DetailsJSON:         req.DetailsJSON,
	}
}

// HandleCreateDeal publishes a new offering.
//
//	@Summary	Create deal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalapi.DealRequest	true	"Deal details"
//	@Success	201		{object}	portalapi.DealResponse
//	@Failure	400		{object}	portalapi.APIError	"Invalid deal type"
//	@Router		/api/admin/deals [post].
func (h *AdminHandler) HandleCreateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.DealRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Name == "" {
		portalapi.ErrBadRequest.WithMessage("name and deal_type are required").WriteError(w)
		return
	}

	d, err := h.DealService.CreateDeal(ctx, dealFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDealType):
			portalapi.ErrBadRequest.WithMessage("deal_type must be REAL_ESTATE or PRE_IPO").WriteError(w)
		case errors.Is(err, service.ErrInvalidDealStatus):
			portalapi.ErrBadRequest.WithMessage("status must be PUBLISHED or DRAFT").WriteError(w)
		default:
			log.Error("create deal failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, dealResponse(d))
}

// HandleUpdateDeal rewrites an offering.
//
//	@Summary	Update deal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Deal ID"
//	@Param		request	body		portalapi.DealRequest	true	"New values"
//	@Success	200		{object}	portalapi.DealResponse
//	@Failure	404		{object}	portalapi.APIError
//	@Router		/api/admin/deals/{id} [put].
func (h *AdminHandler) HandleUpdateDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalapi.DealRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Name == "" {
		portalapi.ErrBadRequest.WithMessage("name and deal_type are required").WriteError(w)
		return
	}

	d, err := h.DealService.UpdateDeal(ctx, r.PathValue("id"), dealFromRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			portalapi.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrInvalidDealType):
			portalapi.ErrBadRequest.WithMessage("deal_type must be REAL_ESTATE or PRE_IPO").WriteError(w)
		case errors.Is(err, service.ErrInvalidDealStatus):
			portalapi.ErrBadRequest.WithMessage("status must be PUBLISHED or DRAFT").WriteError(w)
		default:
			log.Error("update deal failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dealResponse(d))
}

// HandleDeleteDeal removes an offering and its interest rows.
//
//	@Summary	Delete deal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Deal ID"
//	@Success	204
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/admin/deals/{id} [delete].
func (h *AdminHandler) HandleDeleteDeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.DealService.DeleteDeal(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("delete deal failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDealInterests lists who has flagged interest in a deal.
//
//	@Summary	List deal interests
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path	string	true	"Deal ID"
//	@Success	200	{array}	portalapi.InterestAdminResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/admin/deals/{id}/interests [get].
func (h *AdminHandler) HandleDealInterests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	interests, err := h.DealService.ListDealInterests(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("list deal interests failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.InterestAdminResponse, 0, len(interests))
	for _, i := range interests {
		entry := portalapi.InterestAdminResponse{InterestResponse: interestResponse(i)}
		if u, err := h.UserService.GetUserByID(ctx, i.UserID); err == nil {
			entry.UserEmail = u.Email
			entry.UserName = u.FullName()
		}
		out = append(out, entry)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListUsers returns the user directory for upload-for-user.
//
//	@Summary	List users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.AdminUserResponse
//	@Router		/api/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("list users failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, portalapi.AdminUserResponse{ID: u.ID, Email: u.Email})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListInvestments returns every position across all accounts.
//
//	@Summary	List all investments
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.InvestmentResponse
//	@Router		/api/admin/investments [get].
func (h *AdminHandler) HandleListInvestments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	investments, err := h.InvestmentService.ListAllInvestments(ctx)
	if err != nil {
		log.Error("list all investments failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		entry := investmentResponse(inv)
		entry.UserID = inv.UserID
		out = append(out, entry)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListProfiles returns every investment entity across all accounts.
//
//	@Summary	List all profiles
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.ProfileResponse
//	@Router		/api/admin/profiles [get].
func (h *AdminHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	profiles, err := h.ProfileService.ListAllProfiles(ctx)
	if err != nil {
		log.Error("list all profiles failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		entry := profileResponse(p)
		entry.UserID = p.UserID
		out = append(out, entry)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGetProfile fetches any user's entity without an ownership check.
//
//	@Summary	Get any profile
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Profile ID"
//	@Success	200	{object}	portalapi.ProfileResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/admin/profiles/{id} [get].
func (h *AdminHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, err := h.ProfileService.GetProfileByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("get profile failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	entry := profileResponse(p)
	entry.UserID = p.UserID
	httpx.WriteJSON(w, http.StatusOK, entry)
}

// HandleUploadForUser stores a PDF on another user's account and emails them
// a notification. A failed notification does not undo the upload.
//
//	@Summary	Upload a document for a user
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		string	true	"Recipient user ID"
//	@Param		file	formData	file	true	"PDF file"
//	@Success	201		{object}	portalapi.UploadResponse
//	@Failure	400		{object}	portalapi.APIError	"Not a PDF"
//	@Failure	404		{object}	portalapi.APIError	"Unknown recipient"
//	@Router		/api/admin/users/{id}/documents [post].
func (h *AdminHandler) HandleUploadForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	admin, _ := UserFromCtx(ctx)

	recipient, err := h.UserService.GetUserByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WithMessage("unknown recipient").WriteError(w)
			return
		}
		log.Error("recipient lookup failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	up, closer, err := uploadFromRequest(r)
	if err != nil {
		portalapi.ErrBadRequest.WithMessage("multipart file field is required").WriteError(w)
		return
	}
	defer closer.Close()

	doc, err := h.DocumentService.Upload(ctx, admin, recipient.ID, up)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotPDF):
			portalapi.ErrBadRequest.WithMessage("only PDF files are accepted").WriteError(w)
		case errors.Is(err, service.ErrInvalidDocumentType):
			portalapi.ErrBadRequest.WithMessage("document_type must be LLC, EIN, VOID_CHECK, TAX or OTHER").WriteError(w)
		default:
			log.Error("admin upload failed", "err", err)
			portalapi.ErrUpstream.WriteError(w)
		}
		return
	}

	if err := h.Mail.SendDocumentNotification(ctx, recipient.Email, recipient.FullName(), doc.Name); err != nil {
		log.Warn("document notification failed", "recipient", recipient.Email, "err", err)
	}

	httpx.WriteJSON(w, http.StatusCreated, portalapi.UploadResponse{
		Message:    "uploaded",
		ID:         doc.ID,
		FileName:   doc.Name,
		FileURL:    "/api/documents/" + doc.ID + "/download",
		UploadedAt: doc.UploadedAt,
	})
}
