package location

import "time"

type Location struct {
	ID        int64     `gorm:"primaryKey"`
	Location  string    `gorm:"column:location;size:20;not null"`
	Zone      string    `gorm:"column:zone;size:20;not null"`
	State     string    `gorm:"column:state;size:20;not null"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}
