package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffhive/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (user_id, date) is the hard backstop against concurrent double-marking.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (user_id, date, status, remarks, marked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.UserID,
		a.Date,
		a.Status,
		a.Remarks,
		a.Timestamp,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

const attendanceListColumns = `
		SELECT at.id, at.user_id, at.date, at.status, at.remarks, at.marked_at,
			   at.created_at, at.updated_at, u.name, u.email, u.department
		FROM attendances at
		JOIN users u ON u.id = at.user_id
`

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.Status, &a.Remarks, &a.Timestamp,
			&a.CreatedAt, &a.UpdatedAt, &a.UserName, &a.UserEmail, &a.UserDepartment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceListColumns + `
		WHERE at.user_id = $1
		  AND ($2::date IS NULL OR at.date >= $2)
		  AND ($3::date IS NULL OR at.date <= $3)
		ORDER BY at.date DESC
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, userID, filter.From, filter.To, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by user: %w", err)
	}
	return scanAttendanceRows(rows)
}

// List implements attendance.AttendanceRepository. Department narrowing is a
// service-level post-filter over the joined user.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceListColumns + `
		WHERE ($1::date IS NULL OR at.date >= $1)
		  AND ($2::date IS NULL OR at.date <= $2)
		  AND ($3::text IS NULL OR at.user_id::text = $3)
		ORDER BY at.date DESC
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, filter.From, filter.To, filter.UserID, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return scanAttendanceRows(rows)
}
