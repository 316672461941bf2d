package user

import (
	"context"
	"log/slog"

	"github.com/hrcore/hr-management/internal"
	"github.com/hrcore/hr-management/internal/core/common/validation"
	userDatamodel "github.com/hrcore/hr-management/internal/core/datamodel/user"
	"github.com/hrcore/hr-management/internal/notifier"
	"golang.org/x/crypto/bcrypt"
)

type RepositoryAPI interface {
	// CreateWithAssignments persists the user and its assignment join
	// rows in one transaction; nothing is visible unless all rows commit.
	CreateWithAssignments(ctx context.Context, u *userDatamodel.User, assignments Assignments) error
	GetByID(ctx context.Context, id int64) (*userDatamodel.User, error)
	GetByEmail(ctx context.Context, email string) (*userDatamodel.User, error)
	GetAssignments(ctx context.Context, userID int64) (Assignments, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo       RepositoryAPI
	notifier   *notifier.Notifier
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, n *notifier.Notifier, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		notifier:   n,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) Register(ctx context.Context, dto RegisterUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("user validation failed", "error", err)
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Error("failed to check email", "error", err)
		return nil, internal.NewInternalError("could not validate email", err)
	}
	if existing != nil {
		fields := internal.FieldErrors{}
		fields.Add("email", validation.TakenMessage("email"))
		return nil, internal.NewValidationError(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("could not register user", err)
	}

	u := NewUser(dto.Name, dto.Email, string(hash))
	dataUser := ToDataModel(u)
	if err := s.repo.CreateWithAssignments(ctx, dataUser, dto.Assignments()); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, internal.NewInternalError("could not register user", err)
	}

	created := FromDataModel(dataUser)

	// Payload goes through the JSON view, so the hash never leaves.
	s.notifier.Dispatch(ctx, notifier.EventUserCreated, notifier.Payload(created))

	s.logger.Info("user registered", "user_id", created.ID, "email", created.Email)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	dataUser, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", id)
		return nil, internal.NewInternalError("could not load user", err)
	}
	if dataUser == nil {
		return nil, internal.NewNotFoundError("User not found")
	}
	return FromDataModel(dataUser), nil
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*UserResponse, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.GetAssignments(ctx, id)
	if err != nil {
		s.logger.Error("failed to load assignments", "error", err, "user_id", id)
		return nil, internal.NewInternalError("could not load user", err)
	}

	resp := u.ToResponse()
	resp.Assignments = &assignments
	return &resp, nil
}
