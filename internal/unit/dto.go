package unit

import "github.com/hrcore/hr-management/internal/core/common/validation"

type CreateUnitDTO struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id"`
}

func (d CreateUnitDTO) Validate() error {
	v := validation.New()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("description", d.Description).Required()
	v.Field("department_id", d.DepartmentID).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type UpdateUnitDTO struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id"`
}

func (d UpdateUnitDTO) Validate() error {
	v := validation.New()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("description", d.Description).Required()
	v.Field("department_id", d.DepartmentID).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type UnitResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id"`
}

type UnitsResponse struct {
	Units []UnitResponse `json:"units"`
}
