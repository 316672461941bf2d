package department

import "time"

type Department struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;size:20;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	Status      string    `gorm:"column:status;size:20;not null;default:'active'"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}
