package task

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
)

type TaskService interface {
	Create(ctx context.Context, ownerID string, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, actor authz.Actor, taskID string) (TaskResponse, error)

	// List returns the actor's own tasks; admin and hr see every task.
	List(ctx context.Context, actor authz.Actor) ([]TaskResponse, error)

	// Update and Delete are owner-only, regardless of role.
	Update(ctx context.Context, actor authz.Actor, taskID string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, actor authz.Actor, taskID string) error
}
