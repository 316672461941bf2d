package postgres

import (
	"context"

	designationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/designation"
	"github.com/hrcore/hr-management/internal/designation"
	"gorm.io/gorm"
)

type DesignationRepository struct {
	db *gorm.DB
}

func NewDesignationRepository(db *gorm.DB) designation.RepositoryAPI {
	return &DesignationRepository{db: db}
}

func (r *DesignationRepository) Create(ctx context.Context, desig *designationDatamodel.Designation) error {
	return r.db.WithContext(ctx).Create(desig).Error
}

func (r *DesignationRepository) GetByID(ctx context.Context, id int64) (*designationDatamodel.Designation, error) {
	var desig designationDatamodel.Designation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&desig).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &desig, nil
}

func (r *DesignationRepository) GetAll(ctx context.Context) ([]*designationDatamodel.Designation, error) {
	var desigs []*designationDatamodel.Designation
	err := r.db.WithContext(ctx).Order("id ASC").Find(&desigs).Error
	return desigs, err
}

func (r *DesignationRepository) Update(ctx context.Context, desig *designationDatamodel.Designation) error {
	return r.db.WithContext(ctx).Save(desig).Error
}
