package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/grievance"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
)

type grievanceRepositoryImpl struct {
	db *database.DB
}

func NewGrievanceRepository(db *database.DB) grievance.GrievanceRepository {
	return &grievanceRepositoryImpl{db: db}
}

// Create implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) Create(ctx context.Context, g grievance.Grievance) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO grievances (user_id, category, description, status, priority, file_url, file_blob_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.UserID,
		g.Category,
		g.Description,
		g.Status,
		g.Priority,
		g.FileURL,
		g.FileBlob,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return grievance.Grievance{}, fmt.Errorf("failed to create grievance: %w", err)
	}

	return g, nil
}

// GetByID implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) GetByID(ctx context.Context, id string) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.user_id, g.category, g.description, g.status, g.priority,
			   g.response, g.responded_by, g.responded_at, g.file_url, g.file_blob_name,
			   g.created_at, g.updated_at, u.name, u.email, u.department
		FROM grievances g
		JOIN users u ON u.id = g.user_id
		WHERE g.id = $1
	`

	var g grievance.Grievance
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.UserID, &g.Category, &g.Description, &g.Status, &g.Priority,
		&g.Response, &g.RespondedBy, &g.RespondedAt, &g.FileURL, &g.FileBlob,
		&g.CreatedAt, &g.UpdatedAt, &g.UserName, &g.UserEmail, &g.UserDepartment,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return grievance.Grievance{}, grievance.ErrGrievanceNotFound
		}
		return grievance.Grievance{}, fmt.Errorf("failed to get grievance: %w", err)
	}

	return g, nil
}

// Respond implements grievance.GrievanceRepository. The status <> 'closed'
// guard enforces the terminal state.
func (r *grievanceRepositoryImpl) Respond(ctx context.Context, id string, status grievance.Status, response *string, respondedBy string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE grievances
		SET status = $1, response = $2, responded_by = $3, responded_at = NOW(), updated_at = NOW()
		WHERE id = $4 AND status <> 'closed'
	`, status, response, respondedBy, id)
	if err != nil {
		return false, fmt.Errorf("failed to respond to grievance: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

const grievanceListColumns = `
		SELECT g.id, g.user_id, g.category, g.description, g.status, g.priority,
			   g.response, g.responded_by, g.responded_at, g.file_url, g.file_blob_name,
			   g.created_at, g.updated_at, u.name, u.email, u.department, resp.name
		FROM grievances g
		JOIN users u ON u.id = g.user_id
		LEFT JOIN users resp ON resp.id = g.responded_by
`

func scanGrievanceRows(rows pgx.Rows) ([]grievance.Grievance, error) {
	defer rows.Close()

	var grievances []grievance.Grievance
	for rows.Next() {
		var g grievance.Grievance
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Category, &g.Description, &g.Status, &g.Priority,
			&g.Response, &g.RespondedBy, &g.RespondedAt, &g.FileURL, &g.FileBlob,
			&g.CreatedAt, &g.UpdatedAt, &g.UserName, &g.UserEmail, &g.UserDepartment,
			&g.ResponderName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grievance row: %w", err)
		}
		grievances = append(grievances, g)
	}
	return grievances, rows.Err()
}

// ListByUser implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) ListByUser(ctx context.Context, userID string, status *grievance.Status, limit int) ([]grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := grievanceListColumns + `
		WHERE g.user_id = $1
		  AND ($2::text IS NULL OR g.status = $2)
		ORDER BY g.created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, userID, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list grievances by user: %w", err)
	}
	return scanGrievanceRows(rows)
}

// List implements grievance.GrievanceRepository. Priority ordering is
// urgent > high > medium > low; ties break on recency, so insertion order
// within a priority band is stable.
func (r *grievanceRepositoryImpl) List(ctx context.Context, filter grievance.ListFilter) ([]grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := grievanceListColumns + `
		WHERE ($1::text IS NULL OR g.status = $1)
		  AND ($2::text IS NULL OR g.category = $2)
		  AND ($3::text IS NULL OR g.priority = $3)
		ORDER BY
			CASE g.priority
				WHEN 'urgent' THEN 4
				WHEN 'high' THEN 3
				WHEN 'medium' THEN 2
				ELSE 1
			END DESC,
			g.created_at DESC,
			g.id DESC
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, filter.Status, filter.Category, filter.Priority, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list grievances: %w", err)
	}
	return scanGrievanceRows(rows)
}
