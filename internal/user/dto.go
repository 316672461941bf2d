package user

import "github.com/hrcore/hr-management/internal/core/common/validation"

type RegisterUserDTO struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	DepartmentID  *int64 `json:"department_id"`
	UnitID        *int64 `json:"unit_id"`
	LocationID    *int64 `json:"location_id"`
	DesignationID *int64 `json:"designation_id"`
}

func (d RegisterUserDTO) Validate() error {
	v := validation.New()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(8)
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

func (d RegisterUserDTO) Assignments() Assignments {
	return Assignments{
		DepartmentID:  d.DepartmentID,
		UnitID:        d.UnitID,
		LocationID:    d.LocationID,
		DesignationID: d.DesignationID,
	}
}

type UserResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Assignments *Assignments `json:"assignments,omitempty"`
}
