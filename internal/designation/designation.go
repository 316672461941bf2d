package designation

import (
	"time"

	designationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/designation"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Designation struct {
	ID          int64     `json:"id"`
	Role        string    `json:"role"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewDesignation(role, description, status string, level int) *Designation {
	if status == "" {
		status = StatusActive
	}
	now := time.Now()
	return &Designation{
		Role:        role,
		Description: description,
		Status:      status,
		Level:       level,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (d *Designation) ToResponse() DesignationResponse {
	return DesignationResponse{
		ID:          d.ID,
		Role:        d.Role,
		Description: d.Description,
		Status:      d.Status,
		Level:       d.Level,
	}
}

func ToDataModel(d *Designation) *designationDatamodel.Designation {
	return &designationDatamodel.Designation{
		ID:          d.ID,
		Role:        d.Role,
		Description: d.Description,
		Status:      d.Status,
		Level:       d.Level,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDataModel(d *designationDatamodel.Designation) *Designation {
	return &Designation{
		ID:          d.ID,
		Role:        d.Role,
		Description: d.Description,
		Status:      d.Status,
		Level:       d.Level,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
