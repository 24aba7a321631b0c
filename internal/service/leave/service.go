package leave

import (
	"context"
	"fmt"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/domain/leave"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
	"github.com/staffhive/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
	}
}

// Apply implements leave.LeaveService. The overlap check and insert share a
// transaction so two concurrent submissions for the same period cannot both
// pass the check against stale state.
func (l *LeaveServiceImpl) Apply(ctx context.Context, userID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	from, _ := validator.IsValidDate(req.FromDate)
	to, _ := validator.IsValidDate(req.ToDate)
	if from.After(to) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	var created leave.Leave
	err := postgresql.WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		overlapping, err := l.LeaveRepository.HasOverlapping(txCtx, userID, from, to)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leaves: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		created, err = l.LeaveRepository.Create(txCtx, leave.Leave{
			UserID:    userID,
			LeaveType: leave.LeaveType(req.LeaveType),
			FromDate:  from,
			ToDate:    to,
			Reason:    req.Reason,
			Status:    leave.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Decide implements leave.LeaveService. The guarded update is the
// authoritative race arbiter: only the write that still sees pending wins.
func (l *LeaveServiceImpl) Decide(ctx context.Context, actor authz.Actor, leaveID string, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	target, err := l.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	res := authz.Resource{OwnerID: target.UserID}
	if target.UserDepartment != nil {
		res.OwnerDepartment = *target.UserDepartment
	}
	if !authz.Can(actor, authz.ActionDecideLeave, res) {
		return leave.LeaveResponse{}, leave.ErrDecisionNotAllowed
	}

	decided, err := l.LeaveRepository.Decide(ctx, leaveID, leave.Status(req.Status), actor.ID, req.ApproverRemarks)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to decide leave request: %w", err)
	}
	if !decided {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	updated, err := l.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

// Get implements leave.LeaveService. Readable by the owner, hr, admin, and
// anyone who could decide it.
func (l *LeaveServiceImpl) Get(ctx context.Context, actor authz.Actor, leaveID string) (leave.LeaveResponse, error) {
	target, err := l.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	res := authz.Resource{OwnerID: target.UserID}
	if target.UserDepartment != nil {
		res.OwnerDepartment = *target.UserDepartment
	}
	if !authz.CanRead(actor, target.UserID) && !authz.Can(actor, authz.ActionDecideLeave, res) {
		return leave.LeaveResponse{}, leave.ErrUnauthorizedAccess
	}

	return leave.ToResponse(target), nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, userID string, status *leave.Status, limit int) ([]leave.LeaveResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	leaves, err := l.LeaveRepository.ListByUser(ctx, userID, status, limit)
	if err != nil {
		return nil, err
	}
	return leave.ToResponseList(leaves), nil
}

// List implements leave.LeaveService. Department heads are pinned to their
// own department no matter what filter they send.
func (l *LeaveServiceImpl) List(ctx context.Context, actor authz.Actor, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	if !authz.Can(actor, authz.ActionListLeaves, authz.Resource{}) {
		return nil, leave.ErrUnauthorizedAccess
	}
	if actor.Role == user.RoleDepartmentHead {
		filter.Department = &actor.Department
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}

	leaves, err := l.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Department != nil {
		filtered := leaves[:0]
		for _, lv := range leaves {
			if lv.UserDepartment != nil && *lv.UserDepartment == *filter.Department {
				filtered = append(filtered, lv)
			}
		}
		leaves = filtered
	}

	return leave.ToResponseList(leaves), nil
}
