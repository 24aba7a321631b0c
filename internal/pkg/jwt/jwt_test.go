package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-for-tests"
	testRefreshSecret = "refresh-secret-for-tests"
)

func newTestService() Service {
	return NewJWTService(testAccessSecret, testRefreshSecret, "15m", "168h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()
	dept := "Engineering"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "a@example.com", user.RoleHR, &dept)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "a@example.com", claims["email"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.Equal(t, "Engineering", claims["department"])
}

func TestVerifyRefreshToken_Valid(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.VerifyRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestVerifyRefreshToken_RejectsAccessToken(t *testing.T) {
	// An access token must never pass refresh verification: different
	// secret and different type claim.
	svc := newTestService()

	accessToken, _, err := svc.GenerateAccessToken("user-1", "a@example.com", user.RoleEmployee, nil)
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_RejectsForeignSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(testAccessSecret, "some-other-refresh-secret", "15m", "168h")

	tokenString, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_RejectsExpired(t *testing.T) {
	svc := NewJWTService(testAccessSecret, testRefreshSecret, "15m", "-1h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRefreshToken_RejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.VerifyRefreshToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
