package user

import (
	"context"

	"github.com/staffhive/hrms-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

// GetMe implements user.UserService.
func (u *UserServiceImpl) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := u.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}

// GetByID implements user.UserService.
func (u *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := u.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}
