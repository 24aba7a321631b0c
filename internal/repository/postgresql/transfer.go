package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffhive/hrms-backend-go/internal/domain/transfer"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
)

type transferRepositoryImpl struct {
	db *database.DB
}

func NewTransferRepository(db *database.DB) transfer.TransferRepository {
	return &transferRepositoryImpl{db: db}
}

// Create implements transfer.TransferRepository.
func (r *transferRepositoryImpl) Create(ctx context.Context, tr transfer.Transfer) (transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transfers (user_id, current_department, requested_department, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		tr.UserID,
		tr.CurrentDepartment,
		tr.RequestedDepartment,
		tr.Reason,
		tr.Status,
	).Scan(&tr.ID, &tr.CreatedAt, &tr.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// Partial unique index on pending transfers
			return transfer.Transfer{}, transfer.ErrPendingExists
		}
		return transfer.Transfer{}, fmt.Errorf("failed to create transfer: %w", err)
	}

	return tr, nil
}

// GetByID implements transfer.TransferRepository.
func (r *transferRepositoryImpl) GetByID(ctx context.Context, id string) (transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.current_department, t.requested_department, t.reason,
			   t.status, t.approved_by, t.approver_remarks, t.effective_date,
			   t.created_at, t.updated_at, u.name, u.email
		FROM transfers t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = $1
	`

	var tr transfer.Transfer
	err := q.QueryRow(ctx, query, id).Scan(
		&tr.ID, &tr.UserID, &tr.CurrentDepartment, &tr.RequestedDepartment, &tr.Reason,
		&tr.Status, &tr.ApprovedBy, &tr.ApproverRemarks, &tr.EffectiveDate,
		&tr.CreatedAt, &tr.UpdatedAt, &tr.UserName, &tr.UserEmail,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return transfer.Transfer{}, transfer.ErrTransferNotFound
		}
		return transfer.Transfer{}, fmt.Errorf("failed to get transfer: %w", err)
	}

	return tr, nil
}

// HasPending implements transfer.TransferRepository.
func (r *transferRepositoryImpl) HasPending(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM transfers WHERE user_id = $1 AND status = 'pending')
	`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending transfer: %w", err)
	}
	return exists, nil
}

// Decide implements transfer.TransferRepository.
func (r *transferRepositoryImpl) Decide(ctx context.Context, id string, status transfer.Status, approvedBy string, remarks *string, effectiveDate *time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE transfers
		SET status = $1, approved_by = $2, approver_remarks = $3, effective_date = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'pending'
	`, status, approvedBy, remarks, effectiveDate, id)
	if err != nil {
		return false, fmt.Errorf("failed to decide transfer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

const transferListColumns = `
		SELECT t.id, t.user_id, t.current_department, t.requested_department, t.reason,
			   t.status, t.approved_by, t.approver_remarks, t.effective_date,
			   t.created_at, t.updated_at, u.name, u.email, a.name
		FROM transfers t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN users a ON a.id = t.approved_by
`

func scanTransferRows(rows pgx.Rows) ([]transfer.Transfer, error) {
	defer rows.Close()

	var transfers []transfer.Transfer
	for rows.Next() {
		var tr transfer.Transfer
		if err := rows.Scan(
			&tr.ID, &tr.UserID, &tr.CurrentDepartment, &tr.RequestedDepartment, &tr.Reason,
			&tr.Status, &tr.ApprovedBy, &tr.ApproverRemarks, &tr.EffectiveDate,
			&tr.CreatedAt, &tr.UpdatedAt, &tr.UserName, &tr.UserEmail, &tr.ApproverName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, tr)
	}
	return transfers, rows.Err()
}

// ListByUser implements transfer.TransferRepository.
func (r *transferRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := transferListColumns + `
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers by user: %w", err)
	}
	return scanTransferRows(rows)
}

// List implements transfer.TransferRepository.
func (r *transferRepositoryImpl) List(ctx context.Context, status *transfer.Status, limit int) ([]transfer.Transfer, error) {
	q := GetQuerier(ctx, r.db)

	query := transferListColumns + `
		WHERE ($1::text IS NULL OR t.status = $1)
		ORDER BY t.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return scanTransferRows(rows)
}
