package grievance

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/domain/file"
	"github.com/staffhive/hrms-backend-go/internal/domain/grievance"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
	"github.com/staffhive/hrms-backend-go/internal/repository/postgresql"
)

type GrievanceServiceImpl struct {
	db *database.DB
	grievance.GrievanceRepository
	fileService  file.FileService
	fileMetaRepo file.FileMetaRepository
}

func NewGrievanceService(db *database.DB, grievanceRepository grievance.GrievanceRepository, fileService file.FileService, fileMetaRepository file.FileMetaRepository) grievance.GrievanceService {
	return &GrievanceServiceImpl{
		db:                  db,
		GrievanceRepository: grievanceRepository,
		fileService:         fileService,
		fileMetaRepo:        fileMetaRepository,
	}
}

// Create implements grievance.GrievanceService. When an attachment is
// present its upload must succeed before any grievance row exists; a failed
// upload aborts the whole operation rather than filing a grievance with a
// silently dropped file.
func (g *GrievanceServiceImpl) Create(ctx context.Context, userID string, req grievance.CreateGrievanceRequest, attachment *grievance.Attachment) (grievance.GrievanceResponse, error) {
	if err := req.Validate(); err != nil {
		return grievance.GrievanceResponse{}, err
	}

	priority := grievance.Priority(req.Priority)
	if req.Priority == "" {
		priority = grievance.PriorityMedium
	}

	var created grievance.Grievance
	err := postgresql.WithTransaction(ctx, g.db, func(txCtx context.Context) error {
		newGrievance := grievance.Grievance{
			UserID:      userID,
			Category:    grievance.Category(req.Category),
			Description: req.Description,
			Status:      grievance.StatusOpen,
			Priority:    priority,
		}

		var meta file.FileMeta
		if attachment != nil {
			var err error
			meta, err = g.fileService.Upload(txCtx, userID, attachment.Content, attachment.OriginalName, attachment.MimeType, file.RelatedGrievance)
			if err != nil {
				if errors.Is(err, file.ErrUnsupportedType) {
					return err
				}
				return grievance.ErrAttachmentUpload
			}
			newGrievance.FileURL = &meta.BlobURL
			newGrievance.FileBlob = &meta.BlobName
		}

		var err error
		created, err = g.GrievanceRepository.Create(txCtx, newGrievance)
		if err != nil {
			return fmt.Errorf("failed to create grievance: %w", err)
		}

		if attachment != nil {
			if err := g.fileMetaRepo.SetRelatedEntity(txCtx, meta.BlobName, file.RelatedGrievance, created.ID); err != nil {
				return fmt.Errorf("failed to link attachment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return grievance.GrievanceResponse{}, err
	}

	return grievance.ToResponse(created), nil
}

// Respond implements grievance.GrievanceService. The guarded update treats
// closed as terminal; a response racing a close loses cleanly.
func (g *GrievanceServiceImpl) Respond(ctx context.Context, actor authz.Actor, grievanceID string, req grievance.RespondGrievanceRequest) (grievance.GrievanceResponse, error) {
	if err := req.Validate(); err != nil {
		return grievance.GrievanceResponse{}, err
	}

	target, err := g.GrievanceRepository.GetByID(ctx, grievanceID)
	if err != nil {
		return grievance.GrievanceResponse{}, err
	}

	if !authz.Can(actor, authz.ActionRespondGrievance, authz.Resource{OwnerID: target.UserID}) {
		return grievance.GrievanceResponse{}, grievance.ErrDecisionNotAllowed
	}
	if target.IsTerminal() {
		return grievance.GrievanceResponse{}, grievance.ErrGrievanceClosed
	}

	updated, err := g.GrievanceRepository.Respond(ctx, grievanceID, grievance.Status(req.Status), req.Response, actor.ID)
	if err != nil {
		return grievance.GrievanceResponse{}, fmt.Errorf("failed to respond to grievance: %w", err)
	}
	if !updated {
		return grievance.GrievanceResponse{}, grievance.ErrGrievanceClosed
	}

	result, err := g.GrievanceRepository.GetByID(ctx, grievanceID)
	if err != nil {
		return grievance.GrievanceResponse{}, err
	}
	return grievance.ToResponse(result), nil
}

// Get implements grievance.GrievanceService.
func (g *GrievanceServiceImpl) Get(ctx context.Context, actor authz.Actor, grievanceID string) (grievance.GrievanceResponse, error) {
	target, err := g.GrievanceRepository.GetByID(ctx, grievanceID)
	if err != nil {
		return grievance.GrievanceResponse{}, err
	}

	if !authz.CanRead(actor, target.UserID) {
		return grievance.GrievanceResponse{}, grievance.ErrUnauthorizedAccess
	}

	return grievance.ToResponse(target), nil
}

// ListMine implements grievance.GrievanceService.
func (g *GrievanceServiceImpl) ListMine(ctx context.Context, userID string, status *grievance.Status, limit int) ([]grievance.GrievanceResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	grievances, err := g.GrievanceRepository.ListByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, err
	}
	return grievance.ToResponseList(grievances), nil
}

// List implements grievance.GrievanceService. Ordering (priority rank, then
// recency) comes from the repository.
func (g *GrievanceServiceImpl) List(ctx context.Context, actor authz.Actor, filter grievance.ListFilter) ([]grievance.GrievanceResponse, error) {
	if !authz.Can(actor, authz.ActionListGrievances, authz.Resource{}) {
		return nil, grievance.ErrUnauthorizedAccess
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}

	grievances, err := g.GrievanceRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return grievance.ToResponseList(grievances), nil
}
