package location

import (
	"time"

	locationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/location"
)

type Location struct {
	ID        int64     `json:"id"`
	Location  string    `json:"location"`
	Zone      string    `json:"zone"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLocation(name, zone, state string) *Location {
	now := time.Now()
	return &Location{
		Location:  name,
		Zone:      zone,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *Location) ToResponse() LocationResponse {
	return LocationResponse{
		ID:       l.ID,
		Location: l.Location,
		Zone:     l.Zone,
		State:    l.State,
	}
}

func ToDataModel(l *Location) *locationDatamodel.Location {
	return &locationDatamodel.Location{
		ID:        l.ID,
		Location:  l.Location,
		Zone:      l.Zone,
		State:     l.State,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func FromDataModel(l *locationDatamodel.Location) *Location {
	return &Location{
		ID:        l.ID,
		Location:  l.Location,
		Zone:      l.Zone,
		State:     l.State,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
