package middlewares

import (
	"context"
	"net/http"

	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/utils"
)

// RequestID attaches an identifier to every request. An inbound X-Request-Id
// header is trusted; otherwise a fresh UUID is generated. The identifier is
// echoed back on the response and carried in the request context for logging.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}
		w.Header().Set(constvars.HeaderXRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
