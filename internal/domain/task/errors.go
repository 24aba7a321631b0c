package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotOwner     = errors.New("not authorized to access this task")
)
