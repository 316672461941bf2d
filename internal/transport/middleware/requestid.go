package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/hrcore/hr-management/pkg/logger"
)

// RequestID tags each request with a trace id, reusing the caller's
// X-Trace-ID when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
