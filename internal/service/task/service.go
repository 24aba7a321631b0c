package task

import (
	"context"
	"fmt"

	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/domain/task"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
}

func NewTaskService(taskRepository task.TaskRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
	}
}

// Create implements task.TaskService.
func (t *TaskServiceImpl) Create(ctx context.Context, ownerID string, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	created, err := t.TaskRepository.Create(ctx, task.Task{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ToResponse(created), nil
}

// Get implements task.TaskService. Tasks are personal: only the owner and
// admins may read one; hr has no special standing here.
func (t *TaskServiceImpl) Get(ctx context.Context, actor authz.Actor, taskID string) (task.TaskResponse, error) {
	target, err := t.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if target.OwnerID != actor.ID && actor.Role != user.RoleAdmin {
		return task.TaskResponse{}, task.ErrNotOwner
	}

	return task.ToResponse(target), nil
}

// List implements task.TaskService. Admin sees every task, everyone else
// only their own.
func (t *TaskServiceImpl) List(ctx context.Context, actor authz.Actor) ([]task.TaskResponse, error) {
	var (
		tasks []task.Task
		err   error
	)
	if actor.Role == user.RoleAdmin {
		tasks, err = t.TaskRepository.ListAll(ctx)
	} else {
		tasks, err = t.TaskRepository.ListByOwner(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}
	return task.ToResponseList(tasks), nil
}

// Update implements task.TaskService. Owner-only, including for admins.
func (t *TaskServiceImpl) Update(ctx context.Context, actor authz.Actor, taskID string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	target, err := t.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if target.OwnerID != actor.ID {
		return task.TaskResponse{}, task.ErrNotOwner
	}

	if req.Title != nil {
		target.Title = *req.Title
	}
	if req.Description != nil {
		target.Description = *req.Description
	}

	updated, err := t.TaskRepository.Update(ctx, target)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(updated), nil
}

// Delete implements task.TaskService. Owner-only, including for admins.
func (t *TaskServiceImpl) Delete(ctx context.Context, actor authz.Actor, taskID string) error {
	target, err := t.TaskRepository.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if target.OwnerID != actor.ID {
		return task.ErrNotOwner
	}

	return t.TaskRepository.Delete(ctx, taskID)
}
