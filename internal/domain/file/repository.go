package file

import "context"

type FileMetaRepository interface {
	Create(ctx context.Context, fm FileMeta) (FileMeta, error)
	GetByBlobName(ctx context.Context, blobName string) (FileMeta, error)
	ListByUploader(ctx context.Context, uploadedBy string, limit int) ([]FileMeta, error)
	SetRelatedEntity(ctx context.Context, blobName string, entityType RelatedEntityType, entityID string) error
}
