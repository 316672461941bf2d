package postgres

import (
	"context"

	unitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/unit"
	"github.com/hrcore/hr-management/internal/unit"
	"gorm.io/gorm"
)

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) unit.RepositoryAPI {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) Create(ctx context.Context, u *unitDatamodel.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UnitRepository) GetByID(ctx context.Context, id int64) (*unitDatamodel.Unit, error) {
	var u unitDatamodel.Unit
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UnitRepository) GetByName(ctx context.Context, name string) (*unitDatamodel.Unit, error) {
	var u unitDatamodel.Unit
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UnitRepository) GetAll(ctx context.Context) ([]*unitDatamodel.Unit, error) {
	var units []*unitDatamodel.Unit
	err := r.db.WithContext(ctx).Order("id ASC").Find(&units).Error
	return units, err
}

func (r *UnitRepository) Update(ctx context.Context, u *unitDatamodel.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UnitRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&unitDatamodel.Unit{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
