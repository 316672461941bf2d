package headofunit

import (
	"context"
	"log/slog"

	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/core/common/validation"
	headofunitDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/headofunit"
	"github.com/hrcore/hr-management/internal/notifier"
)

type RepositoryAPI interface {
	Create(ctx context.Context, hou *headofunitDatamodel.HeadOfUnit) error
	GetByID(ctx context.Context, id int64) (*headofunitDatamodel.HeadOfUnit, error)
	GetAll(ctx context.Context) ([]*headofunitDatamodel.HeadOfUnit, error)
	GetByUnitAndLocation(ctx context.Context, unitID, locationID int64) (*headofunitDatamodel.HeadOfUnit, error)
}

// ReferenceChecker is the existence probe each referenced repository
// already exposes.
type ReferenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	users     ReferenceChecker
	units     ReferenceChecker
	locations ReferenceChecker
	notifier  *notifier.Notifier
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, users, units, locations ReferenceChecker, n *notifier.Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		users:     users,
		units:     units,
		locations: locations,
		notifier:  n,
		logger:    logger,
	}
}

func (s *Service) Create(ctx context.Context, dto CreateHeadOfUnitDTO) (*HeadOfUnit, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("head of unit validation failed", "error", err)
		return nil, err
	}

	fields := internal.FieldErrors{}
	for _, ref := range []struct {
		field   string
		id      int64
		checker ReferenceChecker
	}{
		{"user_id", dto.UserID, s.users},
		{"unit_id", dto.UnitID, s.units},
		{"location_id", dto.LocationID, s.locations},
	} {
		exists, err := ref.checker.Exists(ctx, ref.id)
		if err != nil {
			s.logger.Error("failed to check reference", "error", err, "field", ref.field, "id", ref.id)
			return nil, internal.NewInternalError("could not validate references", err)
		}
		if !exists {
			fields.Add(ref.field, validation.InvalidReferenceMessage(ref.field))
		}
	}
	if !fields.Empty() {
		return nil, internal.NewValidationError(fields)
	}

	hou := NewHeadOfUnit(dto.UserID, dto.UnitID, dto.LocationID, dto.StatusOrDefault())
	dataHou := ToDataModel(hou)
	if err := s.repo.Create(ctx, dataHou); err != nil {
		s.logger.Error("failed to create head of unit", "error", err, "unit_id", dto.UnitID)
		return nil, internal.NewInternalError("could not create head of unit", err)
	}

	created := FromDataModel(dataHou)
	s.notifier.Dispatch(ctx, notifier.EventHeadOfUnitCreated, notifier.Payload(created))

	s.logger.Info("head of unit created",
		"head_of_unit_id", created.ID,
		"user_id", created.UserID,
		"unit_id", created.UnitID,
		"location_id", created.LocationID)
	return created, nil
}

// GetByID reports absence as NOT_FOUND. The source collapsed this case
// to a bare boolean false.
func (s *Service) GetByID(ctx context.Context, id int64) (*HeadOfUnit, error) {
	dataHou, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get head of unit", "error", err, "head_of_unit_id", id)
		return nil, internal.NewInternalError("could not load head of unit", err)
	}
	if dataHou == nil {
		return nil, internal.NewNotFoundError("Head of unit not found")
	}
	return FromDataModel(dataHou), nil
}

func (s *Service) GetAll(ctx context.Context) ([]*HeadOfUnit, error) {
	dataHous, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list heads of unit", "error", err)
		return nil, internal.NewInternalError("could not list heads of unit", err)
	}

	hous := make([]*HeadOfUnit, 0, len(dataHous))
	for _, dataHou := range dataHous {
		hous = append(hous, FromDataModel(dataHou))
	}
	return hous, nil
}

// GetByUnitAndLocation resolves who heads a unit at a location. Storage
// does not enforce uniqueness on the pair, so this returns the most
// recent active row when duplicates exist.
func (s *Service) GetByUnitAndLocation(ctx context.Context, unitID, locationID int64) (*HeadOfUnit, error) {
	dataHou, err := s.repo.GetByUnitAndLocation(ctx, unitID, locationID)
	if err != nil {
		s.logger.Error("failed to get head of unit by pair", "error", err, "unit_id", unitID, "location_id", locationID)
		return nil, internal.NewInternalError("could not load head of unit", err)
	}
	if dataHou == nil {
		return nil, internal.NewNotFoundError("Head of unit not found")
	}
	return FromDataModel(dataHou), nil
}
