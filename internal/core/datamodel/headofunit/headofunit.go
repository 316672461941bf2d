package headofunit

import "time"

// HeadOfUnit marks which user heads a unit at a location. Status 1 means
// the row is the active head, 0 an inactive one. There is deliberately
// no unique index on (unit_id, location_id); the schema never enforced
// one and adding it now would reject data the API has always accepted.
type HeadOfUnit struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	UnitID     int64     `gorm:"column:unit_id;not null;index"`
	LocationID int64     `gorm:"column:location_id;not null;index"`
	Status     int       `gorm:"column:status;not null;default:1"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (HeadOfUnit) TableName() string {
	return "head_of_units"
}
