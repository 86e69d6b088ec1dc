package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/slogx"
)

// maxUploadBytes caps a single PDF upload at 32 MiB.
const maxUploadBytes = 32 << 20

type DocumentsHandler struct {
	DocumentService *service.DocumentService
}

func documentResponse(d domain.Document) portalapi.DocumentResponse {
	return portalapi.DocumentResponse{
		ID:             d.ID,
		Name:           d.Name,
		Label:          d.Label,
		DocumentType:   d.DocumentType,
		RequirementKey: d.RequirementKey,
		DealName:       d.DealName,
		ProfileName:    d.ProfileName,
		DealID:         d.DealID,
		ProfileID:      d.ProfileID,
		InvestmentID:   d.InvestmentID,
		FilePath:       d.FilePath,
		UploadedByRole: d.UploadedByRole,
		UploadedAt:     d.UploadedAt,
	}
}

// uploadFromRequest pulls the multipart file and metadata fields out of the
// request. The caller closes the returned file.
func uploadFromRequest(r *http.Request) (service.DocumentUpload, io.Closer, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return service.DocumentUpload{}, nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return service.DocumentUpload{}, nil, err
	}

	return service.DocumentUpload{
		FileName:       header.Filename,
		Label:          r.FormValue("label"),
		DocumentType:   r.FormValue("document_type"),
		RequirementKey: r.FormValue("requirement_key"),
		DealName:       r.FormValue("deal_name"),
		ProfileName:    r.FormValue("profile_name"),
		DealID:         r.FormValue("deal_id"),
		ProfileID:      r.FormValue("profile_id"),
		InvestmentID:   r.FormValue("investment_id"),
		ContentType:    header.Header.Get("Content-Type"),
		Size:           header.Size,
		Body:           file,
	}, file, nil
}

// HandleList returns the caller's documents.
//
//	@Summary	List documents
//	@Tags		Documents
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	portalapi.DocumentResponse
//	@Router		/api/documents [get].
func (h *DocumentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	user, _ := UserFromCtx(ctx)

	docs, err := h.DocumentService.ListDocuments(ctx, user)
	if err != nil {
		log.Error("list documents failed", "err", err)
		portalapi.ErrServerError.WriteError(w)
		return
	}

	out := make([]portalapi.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpload stores a PDF for the caller's own account.
//
//	@Summary	Upload a document
//	@Description	Multipart upload. Only PDFs are accepted; name collisions are renamed with a numeric suffix.
//	@Tags		Documents
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file			formData	file	true	"PDF file"
//	@Param		label			formData	string	false	"Display label"
//	@Param		document_type	formData	string	false	"LLC, EIN, VOID_CHECK, TAX or OTHER (default OTHER)"
//	@Param		requirement_key	formData	string	false	"Onboarding requirement this document fills"
//	@Param		deal_id			formData	string	false	"Linked deal"
//	@Param		profile_id		formData	string	false	"Linked profile"
//	@Param		investment_id	formData	string	false	"Linked investment"
//	@Success	201		{object}	portalapi.UploadResponse
//	@Failure	400		{object}	portalapi.APIError	"Not a PDF or unknown document type"
//	@Failure	502		{object}	portalapi.APIError	"Object store unavailable"
//	@Router		/api/documents [post].
func (h *DocumentsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := UserFromCtx(ctx)

	up, closer, err := uploadFromRequest(r)
	if err != nil {
		portalapi.ErrBadRequest.WithMessage("multipart file field is required").WriteError(w)
		return
	}
	defer closer.Close()

	h.finishUpload(w, r, user, user.ID, up)
}

func (h *DocumentsHandler) finishUpload(w http.ResponseWriter, r *http.Request, uploader domain.User, recipientID string, up service.DocumentUpload) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	doc, err := h.DocumentService.Upload(ctx, uploader, recipientID, up)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotPDF):
			portalapi.ErrBadRequest.WithMessage("only PDF files are accepted").WriteError(w)
		case errors.Is(err, service.ErrInvalidDocumentType):
			portalapi.ErrBadRequest.WithMessage("document_type must be LLC, EIN, VOID_CHECK, TAX or OTHER").WriteError(w)
		case errors.Is(err, store.ErrNotFound):
			portalapi.ErrNotFound.WriteError(w)
		default:
			log.Error("document upload failed", "err", err)
			portalapi.ErrUpstream.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portalapi.UploadResponse{
		Message:    "uploaded",
		ID:         doc.ID,
		FileName:   doc.Name,
		FileURL:    "/api/documents/" + doc.ID + "/download",
		UploadedAt: doc.UploadedAt,
	})
}

// HandleDownload streams a document's bytes. ?inline=1 serves it for
// in-browser viewing instead of as an attachment.
//
//	@Summary	Download a document
//	@Tags		Documents
//	@Security	BearerAuth
//	@Produce	application/pdf
//	@Param		id		path	string	true	"Document ID"
//	@Param		inline	query	bool	false	"Serve inline instead of as attachment"
//	@Success	200		{file}	file
//	@Failure	403		{object}	portalapi.APIError
//	@Failure	404		{object}	portalapi.APIError
//	@Router		/api/documents/{id}/download [get].
func (h *DocumentsHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	disposition := "attachment"
	if r.URL.Query().Get("inline") == "1" {
		disposition = "inline"
	}
	h.stream(w, r, disposition)
}

// HandleView serves a document inline for the browser's PDF viewer.
//
//	@Summary	View a document
//	@Tags		Documents
//	@Security	BearerAuth
//	@Produce	application/pdf
//	@Param		id	path	string	true	"Document ID"
//	@Success	200	{file}	file
//	@Failure	403	{object}	portalapi.APIError
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/documents/{id}/view [get].
func (h *DocumentsHandler) HandleView(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, "inline")
}

func (h *DocumentsHandler) stream(w http.ResponseWriter, r *http.Request, disposition string) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	user, _ := UserFromCtx(ctx)

	doc, body, err := h.DocumentService.Open(ctx, user, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			portalapi.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrDocumentForbidden):
			portalapi.ErrForbidden.WriteError(w)
		default:
			log.Error("document download failed", "err", err)
			portalapi.ErrUpstream.WriteError(w)
		}
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Name))
	if doc.SizeBytes > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", doc.SizeBytes))
	}

	if _, err := io.Copy(w, body); err != nil {
		log.Warn("document stream interrupted", "document_id", doc.ID, "err", err)
	}
}

// HandleDelete removes a document. Only the uploader and admins may delete.
//
//	@Summary	Delete a document
//	@Tags		Documents
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Document ID"
//	@Success	204
//	@Failure	403	{object}	portalapi.APIError
//	@Failure	404	{object}	portalapi.APIError
//	@Router		/api/documents/{id} [delete].
func (h *DocumentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	user, _ := UserFromCtx(ctx)

	if err := h.DocumentService.DeleteDocument(ctx, user, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			portalapi.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrDocumentForbidden):
			portalapi.ErrForbidden.WriteError(w)
		default:
			log.Error("document delete failed", "err", err)
			portalapi.ErrServerError.WriteError(w)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
