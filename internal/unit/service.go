package unit

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/core/common/validation"
	unitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/unit"
	"github.com/hrcore/hr-management/internal/notifier"
)

type RepositoryAPI interface {
	Create(ctx context.Context, unit *unitDatamodel.Unit) error
	GetByID(ctx context.Context, id int64) (*unitDatamodel.Unit, error)
	GetByName(ctx context.Context, name string) (*unitDatamodel.Unit, error)
	GetAll(ctx context.Context) ([]*unitDatamodel.Unit, error)
	Update(ctx context.Context, unit *unitDatamodel.Unit) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// DepartmentAPI is the slice of the department repository the unit
// service needs for referential validation.
type DepartmentAPI interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo        RepositoryAPI
	departments DepartmentAPI
	notifier    *notifier.Notifier
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, departments DepartmentAPI, n *notifier.Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		notifier:    n,
		logger:      logger,
	}
}

// Create validates field rules plus the department reference. The
// department check happens at validation time, not as a DB constraint,
// so its failure surfaces under the department_id key like any other
// field error.
func (s *Service) Create(ctx context.Context, dto CreateUnitDTO) (*Unit, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("unit validation failed", "error", err)
		return nil, err
	}

	exists, err := s.departments.Exists(ctx, dto.DepartmentID)
	if err != nil {
		s.logger.Error("failed to check department reference", "error", err, "department_id", dto.DepartmentID)
		return nil, internal.NewInternalError("could not validate department", err)
	}
	if !exists {
		fields := internal.FieldErrors{}
		fields.Add("department_id", validation.InvalidReferenceMessage("department_id"))
		return nil, internal.NewValidationError(fields)
	}

	unit := NewUnit(dto.Name, dto.Description, dto.DepartmentID)
	dataUnit := ToDataModel(unit)
	if err := s.repo.Create(ctx, dataUnit); err != nil {
		s.logger.Error("failed to create unit", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("could not create unit", err)
	}

	created := FromDataModel(dataUnit)
	s.notifier.Dispatch(ctx, notifier.EventUnitCreated, notifier.Payload(created))

	s.logger.Info("unit created", "unit_id", created.ID, "name", created.Name)
	return created, nil
}

// Update is the three-way operation: field or uniqueness validation
// errors, not found, or the updated unit. The source signalled these as
// an error map, boolean false and an entity respectively; here they are
// all AppError kinds.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateUnitDTO) (*Unit, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("unit validation failed", "error", err, "unit_id", id)
		return nil, err
	}

	dataUnit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load unit", "error", err, "unit_id", id)
		return nil, internal.NewInternalError("could not load unit", err)
	}
	if dataUnit == nil {
		return nil, internal.NewNotFoundError("Unit not found")
	}

	// Name uniqueness is only enforced on update.
	if existing, err := s.repo.GetByName(ctx, dto.Name); err != nil {
		s.logger.Error("failed to check unit name", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("could not validate unit name", err)
	} else if existing != nil && existing.ID != id {
		fields := internal.FieldErrors{}
		fields.Add("name", validation.TakenMessage("name"))
		return nil, internal.NewValidationError(fields)
	}

	exists, err := s.departments.Exists(ctx, dto.DepartmentID)
	if err != nil {
		s.logger.Error("failed to check department reference", "error", err, "department_id", dto.DepartmentID)
		return nil, internal.NewInternalError("could not validate department", err)
	}
	if !exists {
		fields := internal.FieldErrors{}
		fields.Add("department_id", validation.InvalidReferenceMessage("department_id"))
		return nil, internal.NewValidationError(fields)
	}

	dataUnit.Name = dto.Name
	dataUnit.Description = dto.Description
	dataUnit.DepartmentID = dto.DepartmentID
	dataUnit.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, dataUnit); err != nil {
		s.logger.Error("failed to update unit", "error", err, "unit_id", id)
		return nil, internal.NewInternalError("could not update unit", err)
	}

	updated := FromDataModel(dataUnit)
	s.notifier.Dispatch(ctx, notifier.EventUnitUpdated, notifier.Payload(updated))

	s.logger.Info("unit updated", "unit_id", id)
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Unit, error) {
	dataUnit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get unit", "error", err, "unit_id", id)
		return nil, internal.NewInternalError("could not load unit", err)
	}
	if dataUnit == nil {
		return nil, internal.NewNotFoundError("Unit not found")
	}
	return FromDataModel(dataUnit), nil
}

func (s *Service) GetAll(ctx context.Context) ([]*Unit, error) {
	dataUnits, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list units", "error", err)
		return nil, internal.NewInternalError("could not list units", err)
	}

	units := make([]*Unit, 0, len(dataUnits))
	for _, dataUnit := range dataUnits {
		units = append(units, FromDataModel(dataUnit))
	}
	return units, nil
}
