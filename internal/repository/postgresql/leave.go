package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/leave"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (user_id, leave_type, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.UserID,
		l.LeaveType,
		l.FromDate,
		l.ToDate,
		l.Reason,
		l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository. Joins the owner for department
// scoping decisions.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.leave_type, l.from_date, l.to_date, l.reason,
			   l.status, l.approved_by, l.approver_remarks, l.created_at, l.updated_at,
			   u.name, u.email, u.department
		FROM leaves l
		JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`

	var l leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.LeaveType, &l.FromDate, &l.ToDate, &l.Reason,
		&l.Status, &l.ApprovedBy, &l.ApproverRemarks, &l.CreatedAt, &l.UpdatedAt,
		&l.UserName, &l.UserEmail, &l.UserDepartment,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

// HasOverlapping implements leave.LeaveRepository. Closed-interval overlap:
// existing.from <= new.to AND existing.to >= new.from, rejected rows excluded.
func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, userID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leaves
			WHERE user_id = $1
			  AND status <> 'rejected'
			  AND from_date <= $3
			  AND to_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

// Decide implements leave.LeaveRepository. The status='pending' guard in the
// WHERE clause makes the transition single-shot.
func (r *leaveRepositoryImpl) Decide(ctx context.Context, id string, status leave.Status, approvedBy string, remarks *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leaves
		SET status = $1, approved_by = $2, approver_remarks = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`, status, approvedBy, remarks, id)
	if err != nil {
		return false, fmt.Errorf("failed to decide leave: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

const leaveListColumns = `
		SELECT l.id, l.user_id, l.leave_type, l.from_date, l.to_date, l.reason,
			   l.status, l.approved_by, l.approver_remarks, l.created_at, l.updated_at,
			   u.name, u.email, u.department, a.name
		FROM leaves l
		JOIN users u ON u.id = l.user_id
		LEFT JOIN users a ON a.id = l.approved_by
`

func scanLeaveRows(rows pgx.Rows) ([]leave.Leave, error) {
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.LeaveType, &l.FromDate, &l.ToDate, &l.Reason,
			&l.Status, &l.ApprovedBy, &l.ApproverRemarks, &l.CreatedAt, &l.UpdatedAt,
			&l.UserName, &l.UserEmail, &l.UserDepartment, &l.ApproverName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string, status *leave.Status, limit int) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveListColumns + `
		WHERE l.user_id = $1
		  AND ($2::text IS NULL OR l.status = $2)
		ORDER BY l.created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, userID, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves by user: %w", err)
	}
	return scanLeaveRows(rows)
}

// List implements leave.LeaveRepository. The department narrowing happens in
// the service as a post-filter over the joined user.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveListColumns + `
		WHERE ($1::text IS NULL OR l.status = $1)
		ORDER BY l.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, filter.Status, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return scanLeaveRows(rows)
}
