package unit

import (
	"time"

	unitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/unit"
)

type Unit struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DepartmentID int64     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewUnit(name, description string, departmentID int64) *Unit {
	now := time.Now()
	return &Unit{
		Name:         name,
		Description:  description,
		DepartmentID: departmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *Unit) ToResponse() UnitResponse {
	return UnitResponse{
		ID:           u.ID,
		Name:         u.Name,
		Description:  u.Description,
		DepartmentID: u.DepartmentID,
	}
}

func ToDataModel(u *Unit) *unitDatamodel.Unit {
	return &unitDatamodel.Unit{
		ID:           u.ID,
		Name:         u.Name,
		Description:  u.Description,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *unitDatamodel.Unit) *Unit {
	return &Unit{
		ID:           u.ID,
		Name:         u.Name,
		Description:  u.Description,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
