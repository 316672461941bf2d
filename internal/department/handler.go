package department

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateDepartmentDTO) (*Department, error)
	Update(ctx context.Context, id int64, dto UpdateDepartmentDTO) (*Department, error)
	GetByID(ctx context.Context, id int64) (*Department, error)
	GetAll(ctx context.Context) ([]*Department, error)
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
	var dto CreateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dept, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, dept.ToResponse())
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	var dto UpdateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dept, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, dept.ToResponse())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	dept, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, dept.ToResponse())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	depts, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	responses := make([]DepartmentResponse, 0, len(depts))
	for _, dept := range depts {
		responses = append(responses, dept.ToResponse())
	}

	h.WriteSuccess(w, http.StatusOK, DepartmentsResponse{Departments: responses})
}
