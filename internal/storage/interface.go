package storage

import (
	"context"
	"io"
)

// StorageInterface abstracts the object store holding listing images.
// Backends: S3 and a local filesystem mock for development and tests.
type StorageInterface interface {
	// UploadImage stores the object under key and returns its public URL.
	UploadImage(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// DeleteImage removes an object. Deleting a missing object is not an error.
	DeleteImage(ctx context.Context, key string) error
}
