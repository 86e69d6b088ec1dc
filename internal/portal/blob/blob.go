// Package blob abstracts the object store that holds the uploaded PDFs. The
// production driver targets any S3-compatible endpoint (AWS, minio); the
// in-memory driver backs unit tests.
package blob

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("blob: object not found")

// Storage stores and retrieves immutable document blobs by key. Keys are
// opaque to this package; the document service derives them from the
// recipient and stored file name.
type Storage interface {
	// Put writes the object. An existing object under the same key is
	// overwritten; collision handling happens before the key is chosen.
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error

	// Get returns the object's bytes and content type. The caller must close
	// the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
