package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/victorygp/portal/internal/portal/blob"
	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/pkg/idx"
)

var (
	ErrNotPDF              = errors.New("only PDF files are accepted")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrDocumentForbidden   = errors.New("not allowed to view this document")
)

// maxRenameAttempts bounds the collision-rename loop.
const maxRenameAttempts = 1000

type DocumentService struct {
	Store  store.Store
	Blobs  blob.Storage
	Logger *slog.Logger

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DocumentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// DocumentUpload carries an incoming file and its metadata. DocumentType
// defaults to OTHER; DealID, ProfileID and InvestmentID are optional row
// linkages.
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
	ContentType    string
	Size           int64
	Body           io.Reader
}

// Upload validates and stores a PDF for the recipient. When the recipient
// already holds a document with the same name, the new one is stored as
// base_1.pdf, base_2.pdf and so on. The uploader may differ from the
// recipient when an admin uploads on a user's behalf.
func (s *DocumentService) Upload(ctx context.Context, uploader domain.User, recipientID string, up DocumentUpload) (domain.Document, error) {
	name := filepath.Base(strings.TrimSpace(up.FileName))
	if name == "" || name == "." || name == "/" {
		return domain.Document{}, ErrNotPDF
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return domain.Document{}, ErrNotPDF
	}

	docType := up.DocumentType
	if docType == "" {
		docType = domain.DocumentTypeOther
	}
	if !domain.ValidDocumentType(docType) {
		return domain.Document{}, ErrInvalidDocumentType
	}

	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	if contentType != "application/pdf" {
		return domain.Document{}, ErrNotPDF
	}

	doc := domain.Document{
		ID:             idx.New().String(),
		Label:          up.Label,
		DocumentType:   docType,
		RequirementKey: up.RequirementKey,
		DealName:       up.DealName,
		ProfileName:    up.ProfileName,
		DealID:         up.DealID,
		ProfileID:      up.ProfileID,
		InvestmentID:   up.InvestmentID,
		ContentType:    contentType,
		SizeBytes:      up.Size,
		UploaderID:     uploader.ID,
		UploadedByRole: uploader.Role,
		RecipientID:    recipientID,
		UploadedAt:     s.now(),
	}

	// Find a free name, then insert. A concurrent upload can still win the
	// name between the probe and the insert, so the unique index is the
	// backstop and we keep renaming until the insert lands.
	base := strings.TrimSuffix(name, filepath.Ext(name))
	ext := filepath.Ext(name)

	candidate := name
	inserted := false
	for n := 1; n <= maxRenameAttempts; n++ {
		taken, err := s.Store.Documents().NameExistsForRecipient(ctx, recipientID, candidate)
		if err != nil {
			return domain.Document{}, err
		}
		if !taken {
			doc.Name = candidate
			doc.FilePath = recipientID + "/" + candidate
			err = s.Store.Documents().CreateDocument(ctx, doc)
			if err == nil {
				inserted = true
				break
			}
			if !errors.Is(err, store.ErrAlreadyExists) {
				return domain.Document{}, fmt.Errorf("create document: %w", err)
			}
		}
		candidate = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	if !inserted {
		return domain.Document{}, fmt.Errorf("could not find a free name for %q", name)
	}

	if err := s.Blobs.Put(ctx, doc.FilePath, doc.ContentType, doc.SizeBytes, up.Body); err != nil {
		// Roll the metadata back so a failed upload doesn't leave a phantom row.
		if delErr := s.Store.Documents().DeleteDocument(ctx, doc.ID); delErr != nil {
			s.logger().Error("orphaned document row after blob failure",
				"document_id", doc.ID, "err", delErr)
		}
		return domain.Document{}, fmt.Errorf("store document blob: %w", err)
	}

	return doc, nil
}

// ListDocuments returns the documents a viewer can see: the ones addressed
// to them, the ones they uploaded, and for admins everything.
func (s *DocumentService) ListDocuments(ctx context.Context, viewer domain.User) ([]domain.Document, error) {
	if viewer.IsAdmin() {
		return s.Store.Documents().ListAllDocuments(ctx)
	}
	return s.Store.Documents().ListDocumentsByRecipient(ctx, viewer.ID)
}

// Open returns a document's metadata and a reader over its bytes. Only the
// uploader, the recipient, and admins may open a document.
func (s *DocumentService) Open(ctx context.Context, viewer domain.User, documentID string) (domain.Document, io.ReadCloser, error) {
	doc, err := s.Store.Documents().GetDocumentByID(ctx, documentID)
	if err != nil {
		return domain.Document{}, nil, err
	}

	if !doc.ViewableBy(viewer) {
		return domain.Document{}, nil, ErrDocumentForbidden
	}

	body, _, err := s.Blobs.Get(ctx, doc.FilePath)
	if err != nil {
		return domain.Document{}, nil, fmt.Errorf("fetch document blob: %w", err)
	}
	return doc, body, nil
}

// DeleteDocument removes a document's row and blob. Only the uploader and
// admins may delete.
func (s *DocumentService) DeleteDocument(ctx context.Context, actor domain.User, documentID string) error {
	doc, err := s.Store.Documents().GetDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() && doc.UploaderID != actor.ID {
		return ErrDocumentForbidden
	}

	if err := s.Store.Documents().DeleteDocument(ctx, doc.ID); err != nil {
		return err
	}
	if err := s.Blobs.Delete(ctx, doc.FilePath); err != nil {
		s.logger().Error("orphaned blob after document delete",
			"document_id", doc.ID, "key", doc.FilePath, "err", err)
	}
	return nil
}

func (s *DocumentService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
