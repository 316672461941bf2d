package designation

import (
	"context"
	"log/slog"
	"time"

	"github.com/hrcore/hr-management/internal"
	designationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/designation"
	"github.com/hrcore/hr-management/internal/notifier"
)

type RepositoryAPI interface {
	Create(ctx context.Context, desig *designationDatamodel.Designation) error
	GetByID(ctx context.Context, id int64) (*designationDatamodel.Designation, error)
	GetAll(ctx context.Context) ([]*designationDatamodel.Designation, error)
	Update(ctx context.Context, desig *designationDatamodel.Designation) error
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

func (s *Service) Create(ctx context.Context, dto CreateDesignationDTO) (*Designation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("designation validation failed", "error", err)
		return nil, err
	}

	desig := NewDesignation(dto.Role, dto.Description, dto.Status, dto.Level)
	dataDesig := ToDataModel(desig)
	if err := s.repo.Create(ctx, dataDesig); err != nil {
		s.logger.Error("failed to create designation", "error", err, "role", dto.Role)
		return nil, internal.NewInternalError("could not create designation", err)
	}

	created := FromDataModel(dataDesig)
	s.notifier.Dispatch(ctx, notifier.EventDesignationCreated, notifier.Payload(created))

	s.logger.Info("designation created", "designation_id", created.ID, "role", created.Role)
	return created, nil
}

// Update applies only the supplied fields. The source collapsed
// validation, not-found and write failures into one generic signal;
// here each keeps its own AppError kind.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateDesignationDTO) (*Designation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("designation validation failed", "error", err, "designation_id", id)
		return nil, err
	}

	dataDesig, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load designation", "error", err, "designation_id", id)
		return nil, internal.NewInternalError("could not load designation", err)
	}
	if dataDesig == nil {
		return nil, internal.NewNotFoundError("Designation not found")
	}

	if dto.Role != nil {
		dataDesig.Role = *dto.Role
	}
	if dto.Description != nil {
		dataDesig.Description = *dto.Description
	}
	if dto.Status != nil {
		dataDesig.Status = *dto.Status
	}
	if dto.Level != nil {
		dataDesig.Level = *dto.Level
	}
	dataDesig.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, dataDesig); err != nil {
		s.logger.Error("failed to update designation", "error", err, "designation_id", id)
		return nil, internal.NewInternalError("could not update designation", err)
	}

	updated := FromDataModel(dataDesig)
	s.notifier.Dispatch(ctx, notifier.EventDesignationUpdated, notifier.Payload(updated))

	s.logger.Info("designation updated", "designation_id", id)
	return updated, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Designation, error) {
	dataDesig, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get designation", "error", err, "designation_id", id)
		return nil, internal.NewInternalError("could not load designation", err)
	}
	if dataDesig == nil {
		return nil, internal.NewNotFoundError("Designation not found")
	}
	return FromDataModel(dataDesig), nil
}

// GetAll returns every designation ordered by id. No pagination; the
// table is administrative and small.
func (s *Service) GetAll(ctx context.Context) ([]*Designation, error) {
	dataDesigs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list designations", "error", err)
		return nil, internal.NewInternalError("could not list designations", err)
	}

	desigs := make([]*Designation, 0, len(dataDesigs))
	for _, dataDesig := range dataDesigs {
		desigs = append(desigs, FromDataModel(dataDesig))
	}
	return desigs, nil
}
