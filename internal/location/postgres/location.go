package postgres

import (
	"context"

	locationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/location"
	"github.com/hrcore/hr-management/internal/location"
	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) location.RepositoryAPI {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *locationDatamodel.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*locationDatamodel.Location, error) {
	var loc locationDatamodel.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&loc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &loc, nil
}

func (r *LocationRepository) GetAll(ctx context.Context) ([]*locationDatamodel.Location, error) {
	var locs []*locationDatamodel.Location
	err := r.db.WithContext(ctx).Order("id ASC").Find(&locs).Error
	return locs, err
}

func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&locationDatamodel.Location{}).Error
}

func (r *LocationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&locationDatamodel.Location{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
