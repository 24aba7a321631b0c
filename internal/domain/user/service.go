package user

import "context"

type UserService interface {
	// GetMe returns the authenticated user's own profile.
	GetMe(ctx context.Context, userID string) (UserResponse, error)

	// GetByID is the privileged lookup (admin, hr).
	GetByID(ctx context.Context, id string) (UserResponse, error)
}
