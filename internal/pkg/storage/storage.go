package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage is the object-store capability consumed by grievance
// attachments and file access. Implementations must be safe for concurrent
// use.
type FileStorage interface {
	// Upload stores a blob and returns its public URL
	Upload(ctx context.Context, file io.Reader, blobName string, contentType string) (string, error)

	// Download retrieves a blob
	Download(ctx context.Context, blobName string) (io.ReadCloser, error)

	// Delete removes a blob
	Delete(ctx context.Context, blobName string) error

	// GetURL generates a time-limited access URL
	GetURL(ctx context.Context, blobName string, expiry time.Duration) (string, error)

	// Exists checks if a blob exists
	Exists(ctx context.Context, blobName string) (bool, error)
}
