package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/staffhive/hrms-backend-go/internal/domain/auth"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/pkg/database"
	"github.com/staffhive/hrms-backend-go/internal/pkg/jwt"
	"github.com/staffhive/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// hashToken digests a refresh token for storage. Only the hash ever touches
// the database, so a dump cannot replay live sessions.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// issueTokenPair generates an access/refresh pair and stores the refresh
// hash, superseding any previous session for the user.
func (a *AuthServiceImpl) issueTokenPair(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.Department)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		tokenHash := hashToken(tokenResponse.RefreshToken)
		if err := a.UserRepository.SetRefreshTokenHash(txCtx, userData.ID, &tokenHash); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Register implements auth.AuthService. Self-registration always yields an
// employee-role account; privileged roles go through CreateUser.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := a.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	tokens, err := a.issueTokenPair(ctx, newUser)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{
		User:   user.ToResponse(newUser),
		Tokens: tokens,
	}, nil
}

// CreateUser implements auth.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         user.Role(req.Role),
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
		Designation:  req.Designation,
	}
	if req.DateOfJoining != nil {
		doj, err := time.Parse("2006-01-02", *req.DateOfJoining)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to parse date of joining: %w", err)
		}
		newUser.DateOfJoining = &doj
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokenPair(ctx, userData)
}

// Refresh implements auth.AuthService. The presented token must carry a
// valid signature AND match the single stored hash. Rotation is a guarded
// UPDATE keyed on the presented hash, so a superseded or replayed token can
// never win the swap, not even against a concurrent refresh.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, err := a.Service.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if userData.RefreshTokenHash == nil {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	presented := hashToken(req.RefreshToken)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(*userData.RefreshTokenHash)) != 1 {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.Department)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresAt, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	replaced, err := a.UserRepository.ReplaceRefreshTokenHash(ctx, userData.ID, presented, hashToken(tokenResponse.RefreshToken))
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !replaced {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := a.UserRepository.SetRefreshTokenHash(ctx, userID, nil); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
