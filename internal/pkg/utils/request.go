package utils

import (
	"net/http"
	"strconv"

	"afyacare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// ParseURLParamID reads a chi URL parameter that must be a positive integer
// identifier.
func ParseURLParamID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}

func RequestIDFromContext(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func AuthClaimsFromContext(r *http.Request) *AuthClaims {
	claims, _ := r.Context().Value(constvars.CONTEXT_AUTH_USER_KEY).(*AuthClaims)
	return claims
}
