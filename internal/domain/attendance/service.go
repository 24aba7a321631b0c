package attendance

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
)

type AttendanceService interface {
	// Mark records attendance for one calendar day. A second mark for the
	// same day returns ErrAlreadyMarked.
	Mark(ctx context.Context, userID string, req MarkAttendanceRequest) (AttendanceResponse, error)

	ListMine(ctx context.Context, userID string, filter ListFilter) ([]AttendanceResponse, error)
	List(ctx context.Context, actor authz.Actor, filter ListFilter) ([]AttendanceResponse, error)
}
