package headofunit

import "github.com/hrcore/hr-management/internal/core/common/validation"

type CreateHeadOfUnitDTO struct {
	UserID     int64 `json:"user_id"`
	UnitID     int64 `json:"unit_id"`
	LocationID int64 `json:"location_id"`
	Status     *int  `json:"status"`
}

func (d CreateHeadOfUnitDTO) Validate() error {
	v := validation.New()
	v.Field("user_id", d.UserID).Required()
	v.Field("unit_id", d.UnitID).Required()
	v.Field("location_id", d.LocationID).Required()
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

// StatusOrDefault treats an omitted status as active.
func (d CreateHeadOfUnitDTO) StatusOrDefault() int {
	if d.Status == nil {
		return StatusActive
	}
	return *d.Status
}

type HeadOfUnitResponse struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	UnitID     int64 `json:"unit_id"`
	LocationID int64 `json:"location_id"`
	Status     int   `json:"status"`
}

type HeadOfUnitsResponse struct {
	HeadOfUnits []HeadOfUnitResponse `json:"head_of_units"`
}
