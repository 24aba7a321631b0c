package grievance

import "context"

type GrievanceRepository interface {
	Create(ctx context.Context, g Grievance) (Grievance, error)
	GetByID(ctx context.Context, id string) (Grievance, error)

	// Respond updates status/response on a non-closed grievance. Returns
	// false when the grievance was already closed (terminal).
	Respond(ctx context.Context, id string, status Status, response *string, respondedBy string) (bool, error)

	ListByUser(ctx context.Context, userID string, status *Status, limit int) ([]Grievance, error)

	// List orders by priority rank descending, then creation time
	// descending (stable within equal priority).
	List(ctx context.Context, filter ListFilter) ([]Grievance, error)
}
