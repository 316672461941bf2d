package location

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateLocationDTO) (*Location, error)
	GetByID(ctx context.Context, id int64) (*Location, error)
	GetAll(ctx context.Context) ([]*Location, error)
	Delete(ctx context.Context, id int64) error
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateLocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loc, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, loc.ToResponse())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	loc, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, loc.ToResponse())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	responses := make([]LocationResponse, 0, len(locs))
	for _, loc := range locs {
		responses = append(responses, loc.ToResponse())
	}

	h.WriteSuccess(w, http.StatusOK, LocationsResponse{Locations: responses})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid location id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, map[string]string{"message": "location deleted"})
}
