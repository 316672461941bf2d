package user

import (
	"time"

	userDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/user"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Assignments are the optional has-one org placements attached to a
// user at registration. Each non-nil id becomes one join row.
type Assignments struct {
	DepartmentID  *int64 `json:"department_id,omitempty"`
	UnitID        *int64 `json:"unit_id,omitempty"`
	LocationID    *int64 `json:"location_id,omitempty"`
	DesignationID *int64 `json:"designation_id,omitempty"`
}

func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
