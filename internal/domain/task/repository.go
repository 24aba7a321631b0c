package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)
	ListAll(ctx context.Context) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id string) error
}
