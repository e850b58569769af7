package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RoleAuth verifies the bearer token and gates the endpoint by role. An
// empty role list admits any authenticated user.
func RoleAuth(logger *zap.Logger, jwtSecret string, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get(constvars.HeaderAuthorization)
			if authorization == "" {
				utils.BuildErrorResponse(logger, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is empty")))
				return
			}

			tokenString := strings.TrimPrefix(authorization, "Bearer ")
			if tokenString == authorization || tokenString == "" {
				utils.BuildErrorResponse(logger, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is not a bearer token")))
				return
			}

			claims, err := utils.ParseAuthJWT(tokenString, jwtSecret)
			if err != nil {
				utils.BuildErrorResponse(logger, w, exceptions.ErrTokenInvalidOrExpired(err))
				return
			}

			if len(allowedRoles) > 0 && !roleAllowed(claims.Role, allowedRoles) {
				utils.BuildErrorResponse(logger, w, exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s is not in the allowed set", claims.Role)))
				return
			}

			ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_USER_KEY, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func roleAllowed(role string, allowedRoles []string) bool {
	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}
