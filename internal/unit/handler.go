package unit

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateUnitDTO) (*Unit, error)
	Update(ctx context.Context, id int64, dto UpdateUnitDTO) (*Unit, error)
	GetByID(ctx context.Context, id int64) (*Unit, error)
	GetAll(ctx context.Context) ([]*Unit, error)
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
	var dto CreateUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	unit, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, unit.ToResponse())
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid unit id")
		return
	}

	var dto UpdateUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	unit, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, unit.ToResponse())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid unit id")
		return
	}

	unit, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, unit.ToResponse())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	responses := make([]UnitResponse, 0, len(units))
	for _, unit := range units {
		responses = append(responses, unit.ToResponse())
	}

	h.WriteSuccess(w, http.StatusOK, UnitsResponse{Units: responses})
}
