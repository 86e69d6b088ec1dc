package portalsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/victorygp/portal/pkg/portalapi"
)

// DocumentUpload carries a file and its metadata for upload. DocumentType
// defaults to OTHER server-side; DealID, ProfileID and InvestmentID are
// optional row linkages.
type DocumentUpload struct {
	FileName       string
	Label          string
	DocumentType   string
	RequirementKey string
	DealName       string
	ProfileName    string
	DealID         string
	ProfileID      string
	InvestmentID   string
	Body           io.Reader
}

// ListDocuments returns the documents the caller can see.
func (s *Session) ListDocuments(ctx context.Context) ([]portalapi.DocumentResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/documents", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []portalapi.DocumentResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument uploads a PDF to the caller's own account.
func (s *Session) UploadDocument(ctx context.Context, up DocumentUpload) (*portalapi.UploadResponse, error) {
	return s.uploadTo(ctx, "/api/documents", up)
}

// UploadDocumentForUser uploads a PDF to another user's account. Admin only.
func (s *Session) UploadDocumentForUser(ctx context.Context, userID string, up DocumentUpload) (*portalapi.UploadResponse, error) {
	return s.uploadTo(ctx, "/api/admin/users/"+userID+"/documents", up)
}

func (s *Session) uploadTo(ctx context.Context, path string, up DocumentUpload) (*portalapi.UploadResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, up.FileName))
	hdr.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, up.Body); err != nil {
		return nil, fmt.Errorf("failed to buffer file: %w", err)
	}

	for field, value := range map[string]string{
		"label":           up.Label,
		"document_type":   up.DocumentType,
		"requirement_key": up.RequirementKey,
		"deal_name":       up.DealName,
		"profile_name":    up.ProfileName,
		"deal_id":         up.DealID,
		"profile_id":      up.ProfileID,
		"investment_id":   up.InvestmentID,
	} {
		if value == "" {
			continue
		}
		if err := w.WriteField(field, value); err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, &buf,
		map[string]string{"Content-Type": w.FormDataContentType()})
	if err != nil {
		return nil, err
	}

	var out portalapi.UploadResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadDocument fetches a document's bytes.
func (s *Session) DownloadDocument(ctx context.Context, id string) ([]byte, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/documents/"+id+"/download", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}
	return body, nil
}

// DeleteDocument removes a document. Only the uploader and admins may delete.
func (s *Session) DeleteDocument(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/documents/"+id, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
