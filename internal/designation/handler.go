package designation

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateDesignationDTO) (*Designation, error)
	Update(ctx context.Context, id int64, dto UpdateDesignationDTO) (*Designation, error)
	GetByID(ctx context.Context, id int64) (*Designation, error)
	GetAll(ctx context.Context) ([]*Designation, error)
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
	var dto CreateDesignationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	desig, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, desig.ToResponse())
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid designation id")
		return
	}

	var dto UpdateDesignationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	desig, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, desig.ToResponse())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid designation id")
		return
	}

	desig, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, desig.ToResponse())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	desigs, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	responses := make([]DesignationResponse, 0, len(desigs))
	for _, desig := range desigs {
		responses = append(responses, desig.ToResponse())
	}

	h.WriteSuccess(w, http.StatusOK, DesignationsResponse{Designations: responses})
}
