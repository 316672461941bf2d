package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hrcore/hr-management/internal"
)

// RequireScope gates a route group on one of the given scopes. A missing
// user means the auth middleware did not run or rejected the request.
func RequireScope(logger *slog.Logger, scopes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				writeDenied(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			for _, scope := range scopes {
				if user.HasScope(scope) {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("access denied: missing scope",
				"user_id", user.ID,
				"required_scopes", scopes,
				"user_scopes", user.Scopes)
			writeDenied(w, http.StatusForbidden, "insufficient scope")
		})
	}
}

func writeDenied(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"success":false,"error":{"message":%q}}`, message)
}
