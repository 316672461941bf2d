package designation

import "github.com/hrcore/hr-management/internal/core/common/validation"

type CreateDesignationDTO struct {
	Role        string `json:"role"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Level       int    `json:"level"`
}

func (d CreateDesignationDTO) Validate() error {
	v := validation.New()
	v.Field("role", d.Role).Required().MaxLength(20)
	v.Field("description", d.Description).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

// UpdateDesignationDTO carries optional-but-typed fields: only non-nil
// fields are applied to the row.
type UpdateDesignationDTO struct {
	Role        *string `json:"role"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Level       *int    `json:"level"`
}

func (d UpdateDesignationDTO) Validate() error {
	v := validation.New()
	if d.Role != nil {
		v.Field("role", d.Role).Required().MaxLength(20)
	}
	if d.Description != nil {
		v.Field("description", d.Description).Required()
	}
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type DesignationResponse struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Level       int    `json:"level"`
}

type DesignationsResponse struct {
	Designations []DesignationResponse `json:"designations"`
}
