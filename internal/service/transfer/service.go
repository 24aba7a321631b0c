package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/domain/transfer"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
	"github.com/staffhive/hrms-backend-go/internal/repository/postgresql"
)

type TransferServiceImpl struct {
	db *database.DB
	transfer.TransferRepository
	user.UserRepository
}

func NewTransferService(db *database.DB, transferRepository transfer.TransferRepository, userRepository user.UserRepository) transfer.TransferService {
	return &TransferServiceImpl{
		db:                 db,
		TransferRepository: transferRepository,
		UserRepository:     userRepository,
	}
}

// Request implements transfer.TransferService. The single-pending check and
// the insert share a transaction.
func (t *TransferServiceImpl) Request(ctx context.Context, userID string, req transfer.RequestTransferRequest) (transfer.TransferResponse, error) {
	if err := req.Validate(); err != nil {
		return transfer.TransferResponse{}, err
	}

	requester, err := t.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return transfer.TransferResponse{}, err
	}
	if requester.DepartmentOrEmpty() == req.RequestedDepartment {
		return transfer.TransferResponse{}, transfer.ErrSameDepartment
	}

	var created transfer.Transfer
	err = postgresql.WithTransaction(ctx, t.db, func(txCtx context.Context) error {
		pending, err := t.TransferRepository.HasPending(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to check pending transfers: %w", err)
		}
		if pending {
			return transfer.ErrPendingExists
		}

		created, err = t.TransferRepository.Create(txCtx, transfer.Transfer{
			UserID:              userID,
			CurrentDepartment:   requester.DepartmentOrEmpty(),
			RequestedDepartment: req.RequestedDepartment,
			Reason:              req.Reason,
			Status:              transfer.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create transfer request: %w", err)
		}
		return nil
	})
	if err != nil {
		return transfer.TransferResponse{}, err
	}

	return transfer.ToResponse(created), nil
}

// Decide implements transfer.TransferService. On approval the status write
// and the department move commit together or not at all.
func (t *TransferServiceImpl) Decide(ctx context.Context, actor authz.Actor, transferID string, req transfer.DecideTransferRequest) (transfer.TransferResponse, error) {
	if err := req.Validate(); err != nil {
		return transfer.TransferResponse{}, err
	}

	target, err := t.TransferRepository.GetByID(ctx, transferID)
	if err != nil {
		return transfer.TransferResponse{}, err
	}

	if !authz.Can(actor, authz.ActionDecideTransfer, authz.Resource{OwnerID: target.UserID}) {
		return transfer.TransferResponse{}, transfer.ErrDecisionNotAllowed
	}

	var effectiveDate *time.Time
	if req.EffectiveDate != nil {
		d, parseErr := time.Parse("2006-01-02", *req.EffectiveDate)
		if parseErr != nil {
			return transfer.TransferResponse{}, fmt.Errorf("failed to parse effective date: %w", parseErr)
		}
		effectiveDate = &d
	}

	status := transfer.Status(req.Status)
	err = postgresql.WithTransaction(ctx, t.db, func(txCtx context.Context) error {
		decided, err := t.TransferRepository.Decide(txCtx, transferID, status, actor.ID, req.ApproverRemarks, effectiveDate)
		if err != nil {
			return fmt.Errorf("failed to decide transfer request: %w", err)
		}
		if !decided {
			return transfer.ErrAlreadyProcessed
		}

		if status == transfer.StatusApproved {
			if err := t.UserRepository.UpdateDepartment(txCtx, target.UserID, target.RequestedDepartment); err != nil {
				return fmt.Errorf("failed to update user department: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return transfer.TransferResponse{}, err
	}

	updated, err := t.TransferRepository.GetByID(ctx, transferID)
	if err != nil {
		return transfer.TransferResponse{}, err
	}
	return transfer.ToResponse(updated), nil
}

// Get implements transfer.TransferService.
func (t *TransferServiceImpl) Get(ctx context.Context, actor authz.Actor, transferID string) (transfer.TransferResponse, error) {
	target, err := t.TransferRepository.GetByID(ctx, transferID)
	if err != nil {
		return transfer.TransferResponse{}, err
	}

	if !authz.CanRead(actor, target.UserID) {
		return transfer.TransferResponse{}, transfer.ErrUnauthorizedAccess
	}

	return transfer.ToResponse(target), nil
}

// ListMine implements transfer.TransferService.
func (t *TransferServiceImpl) ListMine(ctx context.Context, userID string) ([]transfer.TransferResponse, error) {
	transfers, err := t.TransferRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transfer.ToResponseList(transfers), nil
}

// List implements transfer.TransferService.
func (t *TransferServiceImpl) List(ctx context.Context, actor authz.Actor, status *transfer.Status, limit int) ([]transfer.TransferResponse, error) {
	if !authz.Can(actor, authz.ActionListTransfers, authz.Resource{}) {
		return nil, transfer.ErrUnauthorizedAccess
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	transfers, err := t.TransferRepository.List(ctx, status, limit)
	if err != nil {
		return nil, err
	}
	return transfer.ToResponseList(transfers), nil
}
