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

type InvestmentsHandler struct {
	InvestmentService *service.InvestmentService
}

func investmentResponse(inv domain.Investment) portalapi.InvestmentResponse {
	return portalapi.InvestmentResponse{
		ID:                inv.ID,
		DealName:          inv.DealName,
		InvestmentTotal:   inv.InvestmentTotal,
		DistributionTotal: inv.DistributionTotal,
		Status:            inv.Status,
		CloseDate:         inv.CloseDate,
	}
}

// writeOwnedError maps the shared service errors for owner-scoped rows.
// ErrNotOwner deliberately reads as 404 so row existence isn't leaked.
func writeOwnedError(w http.ResponseWriter, r *http.Request, err error, what string) {
	log := slogx.FromContext(r.Context())
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrNotOwner):
		portalapi.ErrNotFound.WriteError(w)
	default:
		log.Error(what+" failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
	}
}

// HandleList returns the caller's positions.
//
//	@Summary	List investments
//	@Tags		Investments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.InvestmentResponse
//	@Router		/api/investments [get].
func (h *InvestmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	invs, err := h.InvestmentService.ListInvestments(ctx, user.ID)
	if err != nil {
		writeOwnedError(w, r, err, "list investments")
		return
	}

	out := make([]portalapi.InvestmentResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, investmentResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSummary aggregates the caller's totals.
//
//	@Summary	Investment summary
//	@Tags		Investments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalapi.InvestmentSummaryResponse
//	@Router		/api/investments/summary [get].
func (h *InvestmentsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	sum, err := h.InvestmentService.Summary(ctx, user.ID)
	if err != nil {
		writeOwnedError(w, r, err, "investment summary")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalapi.InvestmentSummaryResponse{
		InvestedTotal:     sum.InvestedTotal,
		DistributionTotal: sum.DistributionTotal,
		Count:             sum.Count,
	})
}

// HandleCreate records a position for the caller.
//
//	@Summary	Create investment
//	@Tags		Investments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalapi.InvestmentRequest	true	"Position details"
//	@Success	201		{object}	portalapi.InvestmentResponse
//	@Failure	400		{object}	portalapi.APIError
//	@Router		/api/investments [post].
func (h *InvestmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	var req portalapi.InvestmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.DealName == "" {
		portalapi.ErrBadRequest.WithMessage("deal_name is required").WriteError(w)
		return
	}

	inv, err := h.InvestmentService.CreateInvestment(ctx, user.ID, domain.Investment{
		DealName:          req.DealName,
		InvestmentTotal:   req.InvestmentTotal,
		DistributionTotal: req.DistributionTotal,
		Status:            req.Status,
		CloseDate:         req.CloseDate,
	})
	if err != nil {
		writeOwnedError(w, r, err, "create investment")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, investmentResponse(inv))
}

// HandleGet fetches one of the caller's positions.
//
//	@Summary	Get investment
//	@Tags		Investments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Investment ID"
//	@Success	200	{object}	portalapi.InvestmentResponse
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/investments/{id} [get].
func (h *InvestmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	inv, err := h.InvestmentService.GetInvestment(ctx, user.ID, r.PathValue("id"))
	if err != nil {
		writeOwnedError(w, r, err, "get investment")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, investmentResponse(inv))
}

// HandleUpdate rewrites one of the caller's positions.
//
//	@Summary	Update investment
//	@Tags		Investments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Investment ID"
//	@Param		request	body		portalapi.InvestmentRequest	true	"New values"
//	@Success	200		{object}	portalapi.InvestmentResponse
//	@Failure	404		{object}	portalapi.APIError
//	@Router		/api/investments/{id} [put].
func (h *InvestmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	var req portalapi.InvestmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.DealName == "" {
		portalapi.ErrBadRequest.WithMessage("deal_name is required").WriteError(w)
		return
	}

	inv, err := h.InvestmentService.UpdateInvestment(ctx, user.ID, r.PathValue("id"), domain.Investment{
		DealName:          req.DealName,
		InvestmentTotal:   req.InvestmentTotal,
		DistributionTotal: req.DistributionTotal,
		Status:            req.Status,
		CloseDate:         req.CloseDate,
	})
	if err != nil {
		writeOwnedError(w, r, err, "update investment")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, investmentResponse(inv))
}

// HandleDelete removes one of the caller's positions.
//
//	@Summary	Delete investment
//	@Tags		Investments
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Investment ID"
//	@Success	204
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/investments/{id} [delete].
func (h *InvestmentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	if err := h.InvestmentService.DeleteInvestment(ctx, user.ID, r.PathValue("id")); err != nil {
		writeOwnedError(w, r, err, "delete investment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
