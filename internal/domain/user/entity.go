package user

import "time"

type Role string

const (
	RoleEmployee       Role = "employee"        // Regular staff member
	RoleHR             Role = "hr"              // Can decide leave/transfer/grievance across departments
	RoleDepartmentHead Role = "department_head" // Can decide leave within own department
	RoleAdmin          Role = "admin"           // Full cross-user read access, user management
)

// ValidRoles lists every role the system accepts.
var ValidRoles = []Role{RoleEmployee, RoleHR, RoleDepartmentHead, RoleAdmin}

func IsValidRole(r string) bool {
	for _, role := range ValidRoles {
		if string(role) == r {
			return true
		}
	}
	return false
}

type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  *string
	Role          Role
	EmployeeCode  *string
	Department    *string
	Designation   *string
	DateOfJoining *time.Time

	// Single active refresh token, stored hashed. Nil means no session.
	RefreshTokenHash *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if user is admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsHR checks if user is HR
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// DepartmentOrEmpty returns the department or "" when not assigned.
func (u *User) DepartmentOrEmpty() string {
	if u.Department == nil {
		return ""
	}
	return *u.Department
}
