package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureEnvelope struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteSuccess writes the standard success envelope.
func (h *BaseHandler) WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	h.WriteJSON(w, status, successEnvelope{Success: true, Data: data})
}

// WriteError writes the failure envelope with a plain message.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.WriteJSON(w, status, failureEnvelope{
		Success: false,
		Error:   map[string]string{"message": message},
	})
}

// WriteFailure maps a service error onto the failure envelope. Validation
// errors render as field→messages so clients can attach them to inputs;
// everything else renders as a message. Unknown errors never leak detail.
func (h *BaseHandler) WriteFailure(w http.ResponseWriter, err error) {
	appErr, ok := internal.AsAppError(err)
	if !ok {
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if appErr.Type == internal.ErrorTypeValidation {
		h.WriteJSON(w, appErr.StatusCode, failureEnvelope{
			Success: false,
			Error:   appErr.Fields,
		})
		return
	}

	if appErr.Type == internal.ErrorTypeInternal {
		h.Logger.Error("internal error", "error", appErr)
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}

	h.WriteError(w, appErr.StatusCode, appErr.Message)
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
