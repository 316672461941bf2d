package headofunit

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/hrcore/hr-management/internal/transport"
)

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateHeadOfUnitDTO) (*HeadOfUnit, error)
	GetByID(ctx context.Context, id int64) (*HeadOfUnit, error)
	GetAll(ctx context.Context) ([]*HeadOfUnit, error)
	GetByUnitAndLocation(ctx context.Context, unitID, locationID int64) (*HeadOfUnit, error)
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
	var dto CreateHeadOfUnitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	hou, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, hou.ToResponse())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid head of unit id")
		return
	}

	hou, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, hou.ToResponse())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	// Optional pair filter: ?unit_id=&location_id=
	unitID, unitErr := strconv.ParseInt(r.URL.Query().Get("unit_id"), 10, 64)
	locationID, locErr := strconv.ParseInt(r.URL.Query().Get("location_id"), 10, 64)
	if unitErr == nil && locErr == nil {
		hou, err := h.Service.GetByUnitAndLocation(r.Context(), unitID, locationID)
		if err != nil {
			h.WriteFailure(w, err)
			return
		}
		h.WriteSuccess(w, http.StatusOK, hou.ToResponse())
		return
	}

	hous, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.WriteFailure(w, err)
		return
	}

	responses := make([]HeadOfUnitResponse, 0, len(hous))
	for _, hou := range hous {
		responses = append(responses, hou.ToResponse())
	}

	h.WriteSuccess(w, http.StatusOK, HeadOfUnitsResponse{HeadOfUnits: responses})
}
