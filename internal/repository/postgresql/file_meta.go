package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/file"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
)

type fileMetaRepositoryImpl struct {
	db *database.DB
}

func NewFileMetaRepository(db *database.DB) file.FileMetaRepository {
	return &fileMetaRepositoryImpl{db: db}
}

// Create implements file.FileMetaRepository.
func (r *fileMetaRepositoryImpl) Create(ctx context.Context, fm file.FileMeta) (file.FileMeta, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO file_metas (file_name, original_name, mime_type, size,
			blob_url, blob_name, uploaded_by, related_entity_type, related_entity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		fm.FileName,
		fm.OriginalName,
		fm.MimeType,
		fm.Size,
		fm.BlobURL,
		fm.BlobName,
		fm.UploadedBy,
		fm.RelatedEntityType,
		fm.RelatedEntityID,
	).Scan(&fm.ID, &fm.CreatedAt, &fm.UpdatedAt)
	if err != nil {
		return file.FileMeta{}, fmt.Errorf("failed to create file meta: %w", err)
	}

	return fm, nil
}

const fileMetaColumns = `
		SELECT id, file_name, original_name, mime_type, size,
			   blob_url, blob_name, uploaded_by, related_entity_type, related_entity_id,
			   created_at, updated_at
		FROM file_metas
`

func scanFileMeta(row pgx.Row) (file.FileMeta, error) {
	var fm file.FileMeta
	err := row.Scan(
		&fm.ID, &fm.FileName, &fm.OriginalName, &fm.MimeType, &fm.Size,
		&fm.BlobURL, &fm.BlobName, &fm.UploadedBy, &fm.RelatedEntityType, &fm.RelatedEntityID,
		&fm.CreatedAt, &fm.UpdatedAt,
	)
	return fm, err
}

// GetByBlobName implements file.FileMetaRepository.
func (r *fileMetaRepositoryImpl) GetByBlobName(ctx context.Context, blobName string) (file.FileMeta, error) {
	q := GetQuerier(ctx, r.db)

	fm, err := scanFileMeta(q.QueryRow(ctx, fileMetaColumns+` WHERE blob_name = $1`, blobName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return file.FileMeta{}, file.ErrFileNotFound
		}
		return file.FileMeta{}, fmt.Errorf("failed to get file meta: %w", err)
	}

	return fm, nil
}

// ListByUploader implements file.FileMetaRepository.
func (r *fileMetaRepositoryImpl) ListByUploader(ctx context.Context, uploadedBy string, limit int) ([]file.FileMeta, error) {
	q := GetQuerier(ctx, r.db)

	query := fileMetaColumns + `
		WHERE uploaded_by = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, uploadedBy, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list file metas: %w", err)
	}
	defer rows.Close()

	var metas []file.FileMeta
	for rows.Next() {
		fm, err := scanFileMeta(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file meta row: %w", err)
		}
		metas = append(metas, fm)
	}
	return metas, rows.Err()
}

// SetRelatedEntity implements file.FileMetaRepository.
func (r *fileMetaRepositoryImpl) SetRelatedEntity(ctx context.Context, blobName string, entityType file.RelatedEntityType, entityID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE file_metas
		SET related_entity_type = $1, related_entity_id = $2, updated_at = NOW()
		WHERE blob_name = $3
	`

	tag, err := q.Exec(ctx, query, entityType, entityID, blobName)
	if err != nil {
		return fmt.Errorf("failed to set related entity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return file.ErrFileNotFound
	}

	return nil
}
