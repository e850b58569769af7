package middlewares

import (
	"fmt"
	"net/http"

	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Recovery converts a handler panic into a 500 response instead of
// tearing down the connection.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("panic recovered",
						zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r)),
						zap.String(constvars.LoggingEndpointKey, r.URL.Path),
						zap.Any("panic", recovered),
					)
					utils.BuildErrorResponse(logger, w, fmt.Errorf("panic: %v", recovered))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
