package transfer

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
)

type TransferService interface {
	// Request creates a pending transfer for the actor. At most one pending
	// transfer per user; the check and insert run in one transaction.
	Request(ctx context.Context, userID string, req RequestTransferRequest) (TransferResponse, error)

	// Decide approves or rejects a pending transfer. Approval updates the
	// user's department in the same transaction as the status write.
	Decide(ctx context.Context, actor authz.Actor, transferID string, req DecideTransferRequest) (TransferResponse, error)

	Get(ctx context.Context, actor authz.Actor, transferID string) (TransferResponse, error)
	ListMine(ctx context.Context, userID string) ([]TransferResponse, error)
	List(ctx context.Context, actor authz.Actor, status *Status, limit int) ([]TransferResponse, error)
}
