package user

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/transport"
)

type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterUserDTO) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetProfile(ctx context.Context, id int64) (*UserResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Register(r.Context(), dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, created.ToResponse())
}

// GetCurrentUser returns the authenticated user's profile with its
// org assignments.
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), authUser.ID)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, profile)
}
