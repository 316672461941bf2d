package postgres

import (
	"context"

	headofunitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/headofunit"
	"github.com/hrcore/hr-management/internal/headofunit"
	"gorm.io/gorm"
)

type HeadOfUnitRepository struct {
	db *gorm.DB
}

func NewHeadOfUnitRepository(db *gorm.DB) headofunit.RepositoryAPI {
	return &HeadOfUnitRepository{db: db}
}

func (r *HeadOfUnitRepository) Create(ctx context.Context, hou *headofunitDatamodel.HeadOfUnit) error {
	return r.db.WithContext(ctx).Create(hou).Error
}

func (r *HeadOfUnitRepository) GetByID(ctx context.Context, id int64) (*headofunitDatamodel.HeadOfUnit, error) {
	var hou headofunitDatamodel.HeadOfUnit
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hou).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &hou, nil
}

func (r *HeadOfUnitRepository) GetAll(ctx context.Context) ([]*headofunitDatamodel.HeadOfUnit, error) {
	var hous []*headofunitDatamodel.HeadOfUnit
	err := r.db.WithContext(ctx).Order("id ASC").Find(&hous).Error
	return hous, err
}

// GetByUnitAndLocation picks the newest active row; the pair carries no
// unique constraint so duplicates are possible.
func (r *HeadOfUnitRepository) GetByUnitAndLocation(ctx context.Context, unitID, locationID int64) (*headofunitDatamodel.HeadOfUnit, error) {
	var hou headofunitDatamodel.HeadOfUnit
	err := r.db.WithContext(ctx).
		Where("unit_id = ? AND location_id = ? AND status = ?", unitID, locationID, headofunit.StatusActive).
		Order("id DESC").
		First(&hou).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &hou, nil
}
