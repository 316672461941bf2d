package postgres

import (
	"context"

	departmentDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/department"
	"github.com/hrcore/hr-management/internal/department"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, dept *departmentDatamodel.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error) {
	var dept departmentDatamodel.Department
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dept).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*departmentDatamodel.Department, error) {
	var depts []*departmentDatamodel.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *departmentDatamodel.Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&departmentDatamodel.Department{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
