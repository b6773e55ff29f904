package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

type userRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
	Update(ctx context.Context, id int64, patch models.UpdateUserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService handles portal account management.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
	events    EventPublisher
}

// NewUserService constructs the user service.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &UserService{repo: repo, validator: validate, logger: logger, events: events}
}

// Create provisions a new account. The password is hashed before it ever
// reaches a repository.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}

	existing, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate username")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already used")
	}

	s.warnUnknownOverrides(req.PermissionOverrides)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Username:            req.Username,
		PasswordHash:        string(hash),
		Role:                req.Role,
		Name:                req.Name,
		Email:               req.Email,
		PermissionOverrides: append([]string{}, req.PermissionOverrides...),
		Active:              true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Info("user created",
		zap.Int64("userId", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	s.events.Publish(models.Event{Type: models.EventUserCreated, Data: user})
	return user, nil
}

// Get returns an account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// List returns accounts and pagination metadata.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, *models.Pagination, error) {
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	return users, models.NewPagination(page, size, total), nil
}

// Update applies a partial update to an account.
func (s *UserService) Update(ctx context.Context, id int64, patch models.UpdateUserPatch) (*models.User, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user patch")
	}

	if patch.PermissionOverrides != nil {
		s.warnUnknownOverrides(*patch.PermissionOverrides)
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}

	s.events.Publish(models.Event{Type: models.EventUserUpdated, Data: user})
	return user, nil
}

// Delete removes an account permanently. Ids are never reused.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}

	s.logger.Info("user deleted", zap.Int64("userId", id))
	s.events.Publish(models.Event{Type: models.EventUserDeleted, Data: models.DeletedPayload{ID: id}})
	return nil
}

func (s *UserService) warnUnknownOverrides(overrides []string) {
	for _, name := range overrides {
		if !knownCapability(name) {
			s.logger.Warn("permission override names an unknown capability", zap.String("capability", name))
		}
	}
}

func knownCapability(name string) bool {
	for _, c := range models.AllCapabilities {
		if c == name {
			return true
		}
	}
	return false
}
