package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhive/hrms-backend-go/internal/domain/auth"
	"github.com/staffhive/hrms-backend-go/internal/domain/authz"
	"github.com/staffhive/hrms-backend-go/internal/domain/user"
	"github.com/staffhive/hrms-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, invalid, or
// not an access token (refresh tokens never pass here). Runs behind
// jwtauth.Verifier, which parses the token into the request context.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())

		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		claims, err := token.AsMap(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		tokenType, ok := claims["type"].(string)
		if tokenType != "access" || !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}

// ActorFromContext rebuilds the authenticated identity from verified claims.
func ActorFromContext(r *http.Request) (authz.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return authz.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return authz.Actor{}, auth.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !user.IsValidRole(roleStr) {
		return authz.Actor{}, auth.ErrInvalidToken
	}

	actor := authz.Actor{
		ID:   userID,
		Role: user.Role(roleStr),
	}
	if department, ok := claims["department"].(string); ok {
		actor.Department = department
	}
	return actor, nil
}
