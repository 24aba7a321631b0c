package auth

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/user"
)

type AuthService interface {
	// Register creates a new employee-role account and opens a session.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// CreateUser is the admin path: role, department and employee code may
	// be assigned. No session is opened.
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)

	// Login verifies credentials and issues a fresh token pair; the refresh
	// token replaces any previously stored one.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh rotates the refresh token: the presented token must match the
	// single stored value for the user, and a new pair supersedes it.
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)

	// Logout revokes the stored refresh token for the user.
	Logout(ctx context.Context, userID string) error
}
