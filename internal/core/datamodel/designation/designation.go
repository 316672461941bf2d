package designation

import "time"

type Designation struct {
	ID          int64     `gorm:"primaryKey"`
	Role        string    `gorm:"column:role;size:20;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	Status      string    `gorm:"column:status;size:20;not null;default:'active'"`
	Level       int       `gorm:"column:level;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}
