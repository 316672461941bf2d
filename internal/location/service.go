package location

import (
	"context"
	"log/slog"

	"github.com/hrcore/hr-management/internal"
	locationDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/location"
	"github.com/hrcore/hr-management/internal/notifier"
)

type RepositoryAPI interface {
	Create(ctx context.Context, loc *locationDatamodel.Location) error
	GetByID(ctx context.Context, id int64) (*locationDatamodel.Location, error)
	GetAll(ctx context.Context) ([]*locationDatamodel.Location, error)
	Delete(ctx context.Context, id int64) error
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

func (s *Service) Create(ctx context.Context, dto CreateLocationDTO) (*Location, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("location validation failed", "error", err)
		return nil, err
	}

	loc := NewLocation(dto.Location, dto.Zone, dto.State)
	dataLoc := ToDataModel(loc)
	if err := s.repo.Create(ctx, dataLoc); err != nil {
		s.logger.Error("failed to create location", "error", err, "location", dto.Location)
		return nil, internal.NewInternalError("could not create location", err)
	}

	created := FromDataModel(dataLoc)
	s.notifier.Dispatch(ctx, notifier.EventLocationCreated, notifier.Payload(created))

	s.logger.Info("location created", "location_id", created.ID, "location", created.Location)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Location, error) {
	dataLoc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get location", "error", err, "location_id", id)
		return nil, internal.NewInternalError("could not load location", err)
	}
	if dataLoc == nil {
		return nil, internal.NewNotFoundError("Location not found")
	}
	return FromDataModel(dataLoc), nil
}

func (s *Service) GetAll(ctx context.Context) ([]*Location, error) {
	dataLocs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list locations", "error", err)
		return nil, internal.NewInternalError("could not list locations", err)
	}

	locs := make([]*Location, 0, len(dataLocs))
	for _, dataLoc := range dataLocs {
		locs = append(locs, FromDataModel(dataLoc))
	}
	return locs, nil
}

// Delete removes the row and dispatches its last field values, so queue
// consumers can see what was deleted, not just that something was.
func (s *Service) Delete(ctx context.Context, id int64) error {
	dataLoc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load location", "error", err, "location_id", id)
		return internal.NewInternalError("could not load location", err)
	}
	if dataLoc == nil {
		return internal.NewNotFoundError("Location not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete location", "error", err, "location_id", id)
		return internal.NewInternalError("could not delete location", err)
	}

	deleted := FromDataModel(dataLoc)
	s.notifier.Dispatch(ctx, notifier.EventLocationDeleted, notifier.Payload(deleted))

	s.logger.Info("location deleted", "location_id", id)
	return nil
}
