package headofunit

import (
	"time"

	headofunitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/headofunit"
)

const (
	StatusActive   = 1
	StatusInactive = 0
)

// HeadOfUnit designates the leading user for a (unit, location) pair.
type HeadOfUnit struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	UnitID     int64     `json:"unit_id"`
	LocationID int64     `json:"location_id"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewHeadOfUnit(userID, unitID, locationID int64, status int) *HeadOfUnit {
	now := time.Now()
	return &HeadOfUnit{
		UserID:     userID,
		UnitID:     unitID,
		LocationID: locationID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (h *HeadOfUnit) IsActive() bool {
	return h.Status == StatusActive
}

func (h *HeadOfUnit) ToResponse() HeadOfUnitResponse {
	return HeadOfUnitResponse{
		ID:         h.ID,
		UserID:     h.UserID,
		UnitID:     h.UnitID,
		LocationID: h.LocationID,
		Status:     h.Status,
	}
}

func ToDataModel(h *HeadOfUnit) *headofunitDatamodel.HeadOfUnit {
	return &headofunitDatamodel.HeadOfUnit{
		ID:         h.ID,
		UserID:     h.UserID,
		UnitID:     h.UnitID,
		LocationID: h.LocationID,
		Status:     h.Status,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

func FromDataModel(h *headofunitDatamodel.HeadOfUnit) *HeadOfUnit {
	return &HeadOfUnit{
		ID:         h.ID,
		UserID:     h.UserID,
		UnitID:     h.UnitID,
		LocationID: h.LocationID,
		Status:     h.Status,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}
