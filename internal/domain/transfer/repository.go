package transfer

import (
	"context"
	"time"
)

type TransferRepository interface {
	Create(ctx context.Context, tr Transfer) (Transfer, error)
	GetByID(ctx context.Context, id string) (Transfer, error)

	// HasPending reports whether the user already has a pending transfer.
	// Run inside the creating transaction.
	HasPending(ctx context.Context, userID string) (bool, error)

	// Decide flips a pending transfer to approved/rejected. Returns false
	// when the transfer was not pending. The caller is responsible for
	// updating the user's department in the same transaction on approval.
	Decide(ctx context.Context, id string, status Status, approvedBy string, remarks *string, effectiveDate *time.Time) (bool, error)

	ListByUser(ctx context.Context, userID string) ([]Transfer, error)
	List(ctx context.Context, status *Status, limit int) ([]Transfer, error)
}
