package task

import (
	"time"

	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if !validator.WithinLength(r.Title, 1, 200) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title cannot exceed 200 characters",
		})
	}

	if !validator.WithinLength(r.Description, 0, 2000) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description cannot exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil {
		if validator.IsEmpty(*r.Title) {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title must not be empty",
			})
		} else if !validator.WithinLength(*r.Title, 1, 200) {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title cannot exceed 200 characters",
			})
		}
	}

	if r.Description != nil && !validator.WithinLength(*r.Description, 0, 2000) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description cannot exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	OwnerID     string  `json:"owner_id"`
	OwnerName   *string `json:"owner_name,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		OwnerID:     t.OwnerID,
		OwnerName:   t.OwnerName,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToResponse(t))
	}
	return out
}
