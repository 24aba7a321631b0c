package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrEmployeeCodeExists  = errors.New("employee code already in use")
	ErrAdminAccessRequired = errors.New("admin access required")
)
