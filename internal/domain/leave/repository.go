package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)

	// HasOverlapping reports whether the user has a non-rejected leave whose
	// range intersects [from, to]. Run inside the creating transaction.
	HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error)

	// Decide flips a pending leave to approved/rejected. Returns false when
	// the leave was not pending (already decided).
	Decide(ctx context.Context, id string, status Status, approvedBy string, remarks *string) (bool, error)

	ListByUser(ctx context.Context, userID string, status *Status, limit int) ([]Leave, error)
	List(ctx context.Context, filter ListFilter) ([]Leave, error)
}
