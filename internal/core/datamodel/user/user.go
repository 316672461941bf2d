package user

import "time"

type User struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;size:255;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

// Assignment join rows. Each user holds at most one row per dimension;
// the has-one shape is enforced by the user service, not the schema.

type DepartmentUser struct {
	ID           int64     `gorm:"primaryKey"`
	UserID       int64     `gorm:"column:user_id;not null;index"`
	DepartmentID int64     `gorm:"column:department_id;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
}

type UnitUser struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	UnitID    int64     `gorm:"column:unit_id;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
}

type LocationUser struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	LocationID int64     `gorm:"column:location_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
}

type DesignationUser struct {
	ID            int64     `gorm:"primaryKey"`
	UserID        int64     `gorm:"column:user_id;not null;index"`
	DesignationID int64     `gorm:"column:designation_id;not null;index"`
	CreatedAt     time.Time `gorm:"column:created_at;default:now()"`
}

type Scope struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}

type UserScope struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	ScopeID   int64     `gorm:"column:scope_id;not null;index"`
	GrantedBy *int64    `gorm:"column:granted_by"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
}
