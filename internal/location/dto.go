package location

import "github.com/hrcore/hr-management/internal/core/common/validation"

type CreateLocationDTO struct {
	Location string `json:"location"`
	Zone     string `json:"zone"`
	State    string `json:"state"`
}

func (d CreateLocationDTO) Validate() error {
	v := validation.New()
	v.Field("location", d.Location).Required().MaxLength(20)
	v.Field("zone", d.Zone).Required().MaxLength(20)
	v.Field("state", d.State).Required().MaxLength(20)
	if err := v.Err(); err != nil {
		return err
	}
	return nil
}

type LocationResponse struct {
	ID       int64  `json:"id"`
	Location string `json:"location"`
	Zone     string `json:"zone"`
	State    string `json:"state"`
}

type LocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
