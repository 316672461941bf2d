package department

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrcore/hr-management/internal"
	departmentDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/department"
	"github.com/hrcore/hr-management/internal/notifier"
)

type RepositoryAPI interface {
	Create(ctx context.Context, dept *departmentDatamodel.Department) error
	GetByID(ctx context.Context, id int64) (*departmentDatamodel.Department, error)
	GetAll(ctx context.Context) ([]*departmentDatamodel.Department, error)
	Update(ctx context.Context, dept *departmentDatamodel.Department) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo     RepositoryAPI
	notifier *notifier.Notifier
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, n *notifier.Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: n,
		logger:   logger,
	}
}

func (s *Service) Create(ctx context.Context, dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("department validation failed", "error", err)
		return nil, err
	}

	dept := NewDepartment(dto.Name, dto.Description)
	dataDept := ToDataModel(dept)
	if err := s.repo.Create(ctx, dataDept); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("could not create department", err)
	}

	created := FromDataModel(dataDept)

	// The insert above is committed; dispatch never precedes a durable write.
	s.notifier.Dispatch(ctx, notifier.EventDepartmentCreated, notifier.Payload(created))

	s.logger.Info("department created", "department_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto UpdateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("department validation failed", "error", err, "department_id", id)
		return nil, err
	}

	dataDept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load department", "error", err, "department_id", id)
		return nil, internal.NewInternalError("could not load department", err)
	}
	if dataDept == nil {
		return nil, internal.NewNotFoundError("Department not found")
	}

	dataDept.Name = dto.Name
	dataDept.Description = dto.Description
	dataDept.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, dataDept); err != nil {
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return nil, internal.NewInternalError("could not update department", err)
	}

	updated := FromDataModel(dataDept)
	s.notifier.Dispatch(ctx, notifier.EventDepartmentUpdated, notifier.Payload(updated))

	s.logger.Info("department updated", "department_id", id)
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Department, error) {
	dataDept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get department", "error", err, "department_id", id)
		return nil, internal.NewInternalError("could not load department", err)
	}
	if dataDept == nil {
		return nil, internal.NewNotFoundError("Department not found")
	}
	return FromDataModel(dataDept), nil
}

func (s *Service) GetAll(ctx context.Context) ([]*Department, error) {
	dataDepts, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("could not list departments", err)
	}

	depts := make([]*Department, 0, len(dataDepts))
	for _, dataDept := range dataDepts {
		depts = append(depts, FromDataModel(dataDept))
	}
	return depts, nil
}
