package http

import (
	"errors"
	"net/http"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/slogx"
)

type DealsHandler struct {
	DealService *service.DealService
}

func dealResponse(d domain.Deal) portalapi.DealResponse {
	return portalapi.DealResponse{
		ID:           d.ID,
		Name:         d.Name,
		DealType:     d.DealType,
		DealSubtype:  d.DealSubtype,
		DealStage:    d.DealStage,
		Sponsors:     d.Sponsors,
		CloseDate:    d.CloseDate,
		OfferingSize: d.OfferingSize,
		UnitPrice:    d.UnitPrice,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}

func interestResponse(i domain.DealInterest) portalapi.InterestResponse {
	return portalapi.InterestResponse{
		ID:        i.ID,
		DealID:    i.DealID,
		UserID:    i.UserID,
		Status:    i.Status,
		CreatedAt: i.CreatedAt,
	}
}

// HandleList returns the published offerings.
//
//	@Summary	List deals
//	@Tags		Deals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.DealResponse
//	@Router		/api/deals [get].
func (h *DealsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	deals, err := h.DealService.ListPublishedDeals(ctx)
	if err != nil {
		log.Error("list deals failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, dealResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one published offering, including funding instructions
// and the free-form details blob. Drafts come back 404.
//
//	@Summary	Get deal
//	@Tags		Deals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Deal ID"
//	@Success	200	{object}	portalapi.DealResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/deals/{id} [get].
func (h *DealsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	d, err := h.DealService.GetPublishedDeal(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("get deal failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	resp := struct {
		portalapi.DealResponse

		FundingInstructions string `json:"funding_instructions,omitempty"`
		DetailsJSON         string `json:"details_json,omitempty"`
	}{
		DealResponse:        dealResponse(d),
		FundingInstructions: d.FundingInstructions,
		DetailsJSON:         d.DetailsJSON,
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleExpressInterest flags the caller's interest in a deal. Idempotent.
//
//	@Summary	Express interest in a deal
//	@Tags		Deals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Deal ID"
//	@Success	200	{object}	portalapi.InterestResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/deals/{id}/interest [post].
func (h *DealsHandler) HandleExpressInterest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	user, _ := UserFromCtx(ctx)

	interest, err := h.DealService.ExpressInterest(ctx, r.PathValue("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("express interest failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, interestResponse(interest))
}

// HandleWithdrawInterest flips the caller's interest row to withdrawn.
//
//	@Summary	Withdraw interest in a deal
//	@Tags		Deals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Deal ID"
//	@Success	200	{object}	portalapi.InterestResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/deals/{id}/interest [delete].
func (h *DealsHandler) HandleWithdrawInterest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	user, _ := UserFromCtx(ctx)

	interest, err := h.DealService.WithdrawInterest(ctx, r.PathValue("id"), user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			portalapi.ErrNotFound.WriteError(w)
			return
		}
		log.Error("withdraw interest failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, interestResponse(interest))
}

// HandleMyInterests returns the caller's interest rows.
//
//	@Summary	List my deal interests
//	@Tags		Deals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.InterestResponse
//	@Router		/api/me/interests [get].
func (h *DealsHandler) HandleMyInterests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	user, _ := UserFromCtx(ctx)

	interests, err := h.DealService.ListUserInterests(ctx, user.ID)
	if err != nil {
		log.Error("list interests failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.InterestResponse, 0, len(interests))
	for _, i := range interests {
		out = append(out, interestResponse(i))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
