package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/internal/portal/blob"
	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/internal/portal/store/drivers/sqlite"
	"github.com/victorygp/portal/pkg/idx"
)

func newDocumentFixture(t *testing.T) (*DocumentService, *blob.MemoryStorage, domain.User, domain.User) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	user := domain.User{
		ID: idx.New().String(), Username: "user1",
		Email: "user1@example.com", PasswordHash: "x", Role: domain.RoleUser,
	}
	admin := domain.User{
		ID: idx.New().String(), Username: "admin1",
		Email: "admin1@example.com", PasswordHash: "x", Role: domain.RoleAdmin,
	}
	require.NoError(t, st.Users().CreateUser(ctx, user))
	require.NoError(t, st.Users().CreateUser(ctx, admin))

	blobs := blob.NewMemoryStorage()
	svc := &DocumentService{Store: st, Blobs: blobs}
	return svc, blobs, user, admin
}

func pdfUpload(name, content string) DocumentUpload {
	return DocumentUpload{
		FileName:    name,
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Body:        strings.NewReader(content),
	}
}

func TestUploadTypedMetadata(t *testing.T) {
	ctx := context.Background()
	svc, _, user, admin := newDocumentFixture(t)

	t.Run("defaults to OTHER", func(t *testing.T) {
		doc, err := svc.Upload(ctx, user, user.ID, pdfUpload("w9.pdf", "tax"))
		require.NoError(t, err)
		require.Equal(t, domain.DocumentTypeOther, doc.DocumentType)
		require.Equal(t, domain.RoleUser, doc.UploadedByRole)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		up := pdfUpload("mystery.pdf", "x")
		up.DocumentType = "PASSPORT"
		_, err := svc.Upload(ctx, user, user.ID, up)
		require.ErrorIs(t, err, ErrInvalidDocumentType)
	})

	t.Run("round-trips type, requirement and linkages", func(t *testing.T) {
		profile := domain.Profile{
			ID: idx.New().String(), UserID: user.ID, EntityName: "Acme LLC",
		}
		require.NoError(t, svc.Store.Profiles().CreateProfile(ctx, profile))

		up := pdfUpload("articles.pdf", "llc-doc")
		up.DocumentType = domain.DocumentTypeLLC
		up.RequirementKey = "entity_formation"
		up.ProfileID = profile.ID

		doc, err := svc.Upload(ctx, admin, user.ID, up)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, doc.UploadedByRole)

		stored, err := svc.Store.Documents().GetDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		require.Equal(t, domain.DocumentTypeLLC, stored.DocumentType)
		require.Equal(t, "entity_formation", stored.RequirementKey)
		require.Equal(t, profile.ID, stored.ProfileID)
		require.Empty(t, stored.DealID)
		require.Equal(t, domain.RoleAdmin, stored.UploadedByRole)
	})
}

func TestUploadRejectsNonPDF(t *testing.T) {
	ctx := context.Background()
	svc, blobs, user, _ := newDocumentFixture(t)

	_, err := svc.Upload(ctx, user, user.ID, pdfUpload("notes.txt", "hi"))
	require.ErrorIs(t, err, ErrNotPDF)

	up := pdfUpload("report.pdf", "pdf-bytes")
	up.ContentType = "text/plain"
	_, err = svc.Upload(ctx, user, user.ID, up)
	require.ErrorIs(t, err, ErrNotPDF)

	require.Zero(t, blobs.Len())
}

func TestUploadRenamesOnCollision(t *testing.T) {
	ctx := context.Background()
	svc, _, user, _ := newDocumentFixture(t)

	first, err := svc.Upload(ctx, user, user.ID, pdfUpload("k1.pdf", "v1"))
	require.NoError(t, err)
	require.Equal(t, "k1.pdf", first.Name)

	second, err := svc.Upload(ctx, user, user.ID, pdfUpload("k1.pdf", "v2"))
	require.NoError(t, err)
	require.Equal(t, "k1_1.pdf", second.Name)

	third, err := svc.Upload(ctx, user, user.ID, pdfUpload("k1.pdf", "v3"))
	require.NoError(t, err)
	require.Equal(t, "k1_2.pdf", third.Name)

	// The first upload is untouched.
	doc, body, err := svc.Open(ctx, user, first.ID)
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, "v1", string(data))
	require.Equal(t, "k1.pdf", doc.Name)
}

func TestCollisionScopedToRecipient(t *testing.T) {
	ctx := context.Background()
	svc, _, user, admin := newDocumentFixture(t)

	mine, err := svc.Upload(ctx, user, user.ID, pdfUpload("k2.pdf", "mine"))
	require.NoError(t, err)
	require.Equal(t, "k2.pdf", mine.Name)

	// Same name for a different recipient does not collide.
	theirs, err := svc.Upload(ctx, admin, admin.ID, pdfUpload("k2.pdf", "theirs"))
	require.NoError(t, err)
	require.Equal(t, "k2.pdf", theirs.Name)
}

func TestOpenEnforcesPermissions(t *testing.T) {
	ctx := context.Background()
	svc, _, user, admin := newDocumentFixture(t)

	st := svc.Store
	other := domain.User{
		ID: idx.New().String(), Username: "other",
		Email: "other@example.com", PasswordHash: "x", Role: domain.RoleUser,
	}
	require.NoError(t, st.Users().CreateUser(ctx, other))

	// Admin uploads on the user's behalf.
	doc, err := svc.Upload(ctx, admin, user.ID, pdfUpload("statement.pdf", "secret"))
	require.NoError(t, err)

	t.Run("recipient can open", func(t *testing.T) {
		_, body, err := svc.Open(ctx, user, doc.ID)
		require.NoError(t, err)
		require.NoError(t, body.Close())
	})

	t.Run("uploader can open", func(t *testing.T) {
		_, body, err := svc.Open(ctx, admin, doc.ID)
		require.NoError(t, err)
		require.NoError(t, body.Close())
	})

	t.Run("unrelated user cannot open", func(t *testing.T) {
		_, _, err := svc.Open(ctx, other, doc.ID)
		require.ErrorIs(t, err, ErrDocumentForbidden)
	})

	t.Run("unrelated user cannot delete", func(t *testing.T) {
		err := svc.DeleteDocument(ctx, other, doc.ID)
		require.ErrorIs(t, err, ErrDocumentForbidden)
	})

	t.Run("admin can delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteDocument(ctx, admin, doc.ID))
		_, _, err := svc.Open(ctx, admin, doc.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
