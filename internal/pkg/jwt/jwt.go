package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
)

var ErrInvalidToken = errors.New("invalid token")

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role, department *string) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	VerifyRefreshToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

// JWTService signs access and refresh tokens with distinct secrets so a leak
// of one secret never compromises the other token class.
type JWTService struct {
	accessExpirationTime  string
	refreshExpirationTime string
	accessAuth            *jwtauth.JWTAuth
	refreshAuth           *jwtauth.JWTAuth
}

func NewJWTService(accessSecret, refreshSecret, accessExpirationTime, refreshExpirationTime string) Service {
	return &JWTService{
		accessExpirationTime:  accessExpirationTime,
		refreshExpirationTime: refreshExpirationTime,
		accessAuth:            jwtauth.New("HS256", []byte(accessSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		refreshAuth:           jwtauth.New("HS256", []byte(refreshSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// JWTAuth exposes the access-token verifier for the router middleware.
func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.accessAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role, department *string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"exp":     expiresAt,
	}
	if department != nil {
		claims["department"] = *department
	}

	_, tokenString, err := j.accessAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.refreshAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"exp":     expiresAt,
		"type":    "refresh",
	})
	return tokenString, expiresAt, err
}

// VerifyRefreshToken checks signature, expiry and the "refresh" type claim.
// It performs no store lookup; callers must still compare the token against
// the single stored value for the user.
func (j *JWTService) VerifyRefreshToken(tokenString string) (userID string, err error) {
	token, err := jwtauth.VerifyToken(j.refreshAuth, tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", ErrInvalidToken
	}

	userID, ok = userIDVal.(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}
