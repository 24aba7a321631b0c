package file

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/domain/file"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/pkg/storage"
)

// URLExpiry is how long a signed access URL stays valid.
const URLExpiry = 10 * time.Minute

type FileServiceImpl struct {
	storage storage.FileStorage
	file.FileMetaRepository
}

func NewFileService(fileStorage storage.FileStorage, fileMetaRepository file.FileMetaRepository) file.FileService {
	return &FileServiceImpl{
		storage:            fileStorage,
		FileMetaRepository: fileMetaRepository,
	}
}

// Upload implements file.FileService. The blob lands in storage first and
// its metadata row second; callers running inside a transaction get the
// metadata rolled back if the surrounding work fails.
func (s *FileServiceImpl) Upload(ctx context.Context, uploadedBy string, content []byte, originalName, mimeType string, entityType file.RelatedEntityType) (file.FileMeta, error) {
	if !file.IsAllowedMimeType(mimeType) {
		return file.FileMeta{}, file.ErrUnsupportedType
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	uniqueID := uuid.New().String()
	blobName := filepath.Join(string(entityType), uploadedBy, fmt.Sprintf("%s%s", uniqueID, ext))

	blobURL, err := s.storage.Upload(ctx, bytes.NewReader(content), blobName, mimeType)
	if err != nil {
		return file.FileMeta{}, file.ErrStorageUnavailable
	}

	meta, err := s.FileMetaRepository.Create(ctx, file.FileMeta{
		FileName:          filepath.Base(blobName),
		OriginalName:      originalName,
		MimeType:          mimeType,
		Size:              int64(len(content)),
		BlobURL:           blobURL,
		BlobName:          blobName,
		UploadedBy:        uploadedBy,
		RelatedEntityType: entityType,
	})
	if err != nil {
		// Orphaned blob; metadata is the source of truth, so remove it.
		_ = s.storage.Delete(ctx, blobName)
		return file.FileMeta{}, fmt.Errorf("failed to record file metadata: %w", err)
	}

	return meta, nil
}

// Access implements file.FileService.
func (s *FileServiceImpl) Access(ctx context.Context, actor authz.Actor, blobName string) (file.FileAccessResponse, error) {
	meta, err := s.FileMetaRepository.GetByBlobName(ctx, blobName)
	if err != nil {
		return file.FileAccessResponse{}, err
	}

	if actor.ID != meta.UploadedBy {
		switch actor.Role {
		case user.RoleAdmin, user.RoleHR:
		default:
			return file.FileAccessResponse{}, file.ErrFileAccessDenied
		}
	}

	url, err := s.storage.GetURL(ctx, meta.BlobName, URLExpiry)
	if err != nil {
		return file.FileAccessResponse{}, file.ErrStorageUnavailable
	}

	return file.FileAccessResponse{
		URL:       url,
		ExpiresIn: URLExpiry.String(),
		FileMeta:  file.ToMetaResponse(meta),
	}, nil
}

// ListMine implements file.FileService.
func (s *FileServiceImpl) ListMine(ctx context.Context, uploadedBy string, limit int) ([]file.FileMetaResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	metas, err := s.FileMetaRepository.ListByUploader(ctx, uploadedBy, limit)
	if err != nil {
		return nil, err
	}

	out := make([]file.FileMetaResponse, 0, len(metas))
	for _, m := range metas {
		out = append(out, file.ToMetaResponse(m))
	}
	return out, nil
}
