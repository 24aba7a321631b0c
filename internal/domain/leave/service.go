package leave

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
)

type LeaveService interface {
	// Apply creates a pending leave for the actor. The overlap check and
	// the insert run in one transaction.
	Apply(ctx context.Context, userID string, req ApplyLeaveRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending leave. Exactly one decision
	// wins; the rest see ErrAlreadyProcessed.
	Decide(ctx context.Context, actor authz.Actor, leaveID string, req DecideLeaveRequest) (LeaveResponse, error)

	Get(ctx context.Context, actor authz.Actor, leaveID string) (LeaveResponse, error)
	ListMine(ctx context.Context, userID string, status *Status, limit int) ([]LeaveResponse, error)

	// List is the privileged cross-user view. Department heads only ever
	// see their own department regardless of the filter.
	List(ctx context.Context, actor authz.Actor, filter ListFilter) ([]LeaveResponse, error)
}
