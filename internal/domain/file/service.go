package file

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
)

type FileService interface {
	// Upload validates the MIME type, stores the blob and records its
	// metadata. Used by workflows that take attachments.
	Upload(ctx context.Context, uploadedBy string, content []byte, originalName, mimeType string, entityType RelatedEntityType) (FileMeta, error)

	// Access returns a short-lived signed URL for a stored blob. Uploader,
	// hr and admin may access; everyone else is denied.
	Access(ctx context.Context, actor authz.Actor, blobName string) (FileAccessResponse, error)

	ListMine(ctx context.Context, uploadedBy string, limit int) ([]FileMetaResponse, error)
}
