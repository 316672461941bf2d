package department

import "github.com/hrcore/hr-management/internal/core/common/validation"

type CreateDepartmentDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d CreateDepartmentDTO) Validate() error {
	v := validation.New()
	v.Field("name", d.Name).Required().MaxLength(20)
	v.Field("description", d.Description).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type UpdateDepartmentDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d UpdateDepartmentDTO) Validate() error {
	v := validation.New()
	v.Field("name", d.Name).Required().MaxLength(20)
	v.Field("description", d.Description).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type DepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
