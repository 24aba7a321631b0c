package grievance

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
)

type GrievanceService interface {
	// Create files a grievance, optionally with an attachment. Upload
	// failure aborts the whole creation; no grievance row survives it.
	Create(ctx context.Context, userID string, req CreateGrievanceRequest, attachment *Attachment) (GrievanceResponse, error)

	// Respond moves a non-closed grievance to in_progress, resolved or
	// closed. Closed is terminal.
	Respond(ctx context.Context, actor authz.Actor, grievanceID string, req RespondGrievanceRequest) (GrievanceResponse, error)

	Get(ctx context.Context, actor authz.Actor, grievanceID string) (GrievanceResponse, error)
	ListMine(ctx context.Context, userID string, status *Status, limit int) ([]GrievanceResponse, error)
	List(ctx context.Context, actor authz.Actor, filter ListFilter) ([]GrievanceResponse, error)
}
