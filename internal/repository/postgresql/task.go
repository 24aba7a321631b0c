package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/task"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Title, t.Description, t.OwnerID).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.owner_id, t.created_at, t.updated_at,
			   u.name, u.email
		FROM tasks t
		JOIN users u ON u.id = t.owner_id
		WHERE t.id = $1
	`

	var t task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
		&t.OwnerName, &t.OwnerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func scanTaskRows(rows pgx.Rows) ([]task.Task, error) {
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
			&t.OwnerName, &t.OwnerEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListByOwner implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.owner_id, t.created_at, t.updated_at,
			   u.name, u.email
		FROM tasks t
		JOIN users u ON u.id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by owner: %w", err)
	}
	return scanTaskRows(rows)
}

// ListAll implements task.TaskRepository.
func (r *taskRepositoryImpl) ListAll(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.owner_id, t.created_at, t.updated_at,
			   u.name, u.email
		FROM tasks t
		JOIN users u ON u.id = t.owner_id
		ORDER BY t.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return scanTaskRows(rows)
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, t.Title, t.Description, t.ID).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
