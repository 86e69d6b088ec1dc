package portal_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/victorygp/portal/pkg/portalsdk"
)

// pdfBytes is a minimal PDF header, enough to exercise upload and download
// round trips against real object storage.
var pdfBytes = []byte("%PDF-1.4\n%e2e test fixture\n%%EOF\n")

// TestDocumentUploadDownload verifies the upload, list, download, delete loop
// against the object store.
func TestDocumentUploadDownload(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "docs@example.com", "docs")
	session := performLogin(t, client, container, "docs@example.com")
	ctx := t.Context()

	uploaded, err := session.UploadDocument(ctx, portalsdk.DocumentUpload{
		FileName: "subscription.pdf",
		Label:    "Subscription Agreement",
		DealName: "Fund I",
		Body:     bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	require.Equal(t, "subscription.pdf", uploaded.FileName)

	list, err := session.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Subscription Agreement", list[0].Label)

	body, err := session.DownloadDocument(ctx, uploaded.ID)
	require.NoError(t, err)
	require.Equal(t, pdfBytes, body)

	require.NoError(t, session.DeleteDocument(ctx, uploaded.ID))

	list, err = session.ListDocuments(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

// TestDocumentCollisionRename verifies duplicate filenames get numbered
// suffixes instead of overwriting.
func TestDocumentCollisionRename(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "k1@example.com", "k1user")
	session := performLogin(t, client, container, "k1@example.com")
	ctx := t.Context()

	first, err := session.UploadDocument(ctx, portalsdk.DocumentUpload{
		FileName: "k1.pdf",
		Body:     bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	require.Equal(t, "k1.pdf", first.FileName)

	second, err := session.UploadDocument(ctx, portalsdk.DocumentUpload{
		FileName: "k1.pdf",
		Body:     bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	require.Equal(t, "k1_1.pdf", second.FileName)

	third, err := session.UploadDocument(ctx, portalsdk.DocumentUpload{
		FileName: "k1.pdf",
		Body:     bytes.NewReader(pdfBytes),
	})
	require.NoError(t, err)
	require.Equal(t, "k1_2.pdf", third.FileName)
}

// TestNonPDFUploadRejected verifies the PDF-only rule at the edge.
func TestNonPDFUploadRejected(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	registerUser(t, client, "nopdf@example.com", "nopdf")
	session := performLogin(t, client, container, "nopdf@example.com")

	_, err := session.UploadDocument(t.Context(), portalsdk.DocumentUpload{
		FileName: "malware.exe",
		Body:     bytes.NewReader([]byte("MZ")),
	})
	assertAPIStatus(t, err, http.StatusBadRequest, "non-PDF upload")
}
