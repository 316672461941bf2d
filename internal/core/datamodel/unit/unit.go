package unit

import "time"

type Unit struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;size:255;not null"`
	Description  string    `gorm:"column:description;type:text;not null"`
	DepartmentID int64     `gorm:"column:department_id;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}
