package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateDepartment(ctx context.Context, id string, department string) error
	SetRefreshTokenHash(ctx context.Context, id string, tokenHash *string) error

	// ReplaceRefreshTokenHash swaps the stored hash only while it still
	// equals oldHash. Returns false when another rotation got there first.
	ReplaceRefreshTokenHash(ctx context.Context, id string, oldHash, newHash string) (bool, error)
}
