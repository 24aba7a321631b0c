package user

import (
	"time"

	"github.com/staffhive/hrms-backend-go/internal/pkg/validator"
)

// UserResponse is the safe projection of a user: no password hash, no
// refresh token material.
type UserResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	Department    *string `json:"department,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
		Designation:  u.Designation,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
	if u.DateOfJoining != nil {
		doj := u.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &doj
	}
	return resp
}

// CreateUserRequest is the admin-only request to create a user with an
// explicit role, department and employee code.
type CreateUserRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	Department    *string `json:"department,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if !validator.WithinLength(r.Name, 1, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if r.EmployeeCode != nil && !validator.IsValidEmployeeCode(*r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match EMP-0000",
		})
	}

	if r.Department != nil && !validator.WithinLength(*r.Department, 1, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department cannot exceed 100 characters",
		})
	}

	if r.DateOfJoining != nil {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
