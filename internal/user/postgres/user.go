package postgres

import (
	"context"

	userDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/user"
	"github.com/hrcore/hr-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateWithAssignments(ctx context.Context, u *userDatamodel.User, assignments user.Assignments) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		if assignments.DepartmentID != nil {
			row := userDatamodel.DepartmentUser{UserID: u.ID, DepartmentID: *assignments.DepartmentID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if assignments.UnitID != nil {
			row := userDatamodel.UnitUser{UserID: u.ID, UnitID: *assignments.UnitID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if assignments.LocationID != nil {
			row := userDatamodel.LocationUser{UserID: u.ID, LocationID: *assignments.LocationID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if assignments.DesignationID != nil {
			row := userDatamodel.DesignationUser{UserID: u.ID, DesignationID: *assignments.DesignationID}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAssignments(ctx context.Context, userID int64) (user.Assignments, error) {
	var assignments user.Assignments

	var deptRow userDatamodel.DepartmentUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&deptRow).Error; err == nil {
		assignments.DepartmentID = &deptRow.DepartmentID
	} else if err != gorm.ErrRecordNotFound {
		return assignments, err
	}

	var unitRow userDatamodel.UnitUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&unitRow).Error; err == nil {
		assignments.UnitID = &unitRow.UnitID
	} else if err != gorm.ErrRecordNotFound {
		return assignments, err
	}

	var locRow userDatamodel.LocationUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&locRow).Error; err == nil {
		assignments.LocationID = &locRow.LocationID
	} else if err != gorm.ErrRecordNotFound {
		return assignments, err
	}

	var desigRow userDatamodel.DesignationUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&desigRow).Error; err == nil {
		assignments.DesignationID = &desigRow.DesignationID
	} else if err != gorm.ErrRecordNotFound {
		return assignments, err
	}

	return assignments, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userDatamodel.User{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
