package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

type rolePermissionRepository interface {
	Create(ctx context.Context, rp *models.RolePermission) error
	FindByID(ctx context.Context, id int64) (*models.RolePermission, error)
	FindByRole(ctx context.Context, role models.UserRole) (*models.RolePermission, error)
	List(ctx context.Context) ([]models.RolePermission, error)
	Update(ctx context.Context, id int64, patch models.UpdateRolePermissionPatch) (*models.RolePermission, error)
	Delete(ctx context.Context, id int64) error
}

// PermissionService manages role capability bundles and answers the
// authorization question for route guards.
type PermissionService struct {
	repo      rolePermissionRepository
	validator *validator.Validate
	logger    *zap.Logger
	events    EventPublisher
}

// NewPermissionService constructs the permission service.
func NewPermissionService(repo rolePermissionRepository, validate *validator.Validate, logger *zap.Logger, events EventPublisher) *PermissionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &PermissionService{repo: repo, validator: validate, logger: logger, events: events}
}

// Create defines the capability bundle for a role. Each role carries at
// most one bundle.
func (s *PermissionService) Create(ctx context.Context, req models.CreateRolePermissionRequest) (*models.RolePermission, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid role permission payload")
	}

	existing, err := s.repo.FindByRole(ctx, req.Role)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate role")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "role already has a permission bundle")
	}

	rp := &models.RolePermission{
		Role:        req.Role,
		Permissions: req.Permissions,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, rp); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create role permission")
	}

	s.events.Publish(models.Event{Type: models.EventRolePermissionCreated, Data: rp})
	return rp, nil
}

// Get returns a bundle by id.
func (s *PermissionService) Get(ctx context.Context, id int64) (*models.RolePermission, error) {
	rp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "role permission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load role permission")
	}
	return rp, nil
}

// List returns every role bundle.
func (s *PermissionService) List(ctx context.Context) ([]models.RolePermission, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list role permissions")
	}
	return items, nil
}

// Update applies a partial update to a bundle.
func (s *PermissionService) Update(ctx context.Context, id int64, patch models.UpdateRolePermissionPatch) (*models.RolePermission, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid role permission patch")
	}

	rp, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "role permission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update role permission")
	}

	s.events.Publish(models.Event{Type: models.EventRolePermissionUpdated, Data: rp})
	return rp, nil
}

// Delete removes a bundle. Users with that role fall back to the built-in
// defaults until a new bundle is defined.
func (s *PermissionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "role permission not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete role permission")
	}

	s.events.Publish(models.Event{Type: models.EventRolePermissionDeleted, Data: models.DeletedPayload{ID: id}})
	return nil
}

// Allowed reports whether the user may exercise the capability. Per-user
// overrides grant on top of the role bundle; a role without a stored
// bundle falls back to the built-in defaults.
func (s *PermissionService) Allowed(ctx context.Context, user *models.User, capability string) (bool, error) {
	if user == nil {
		return false, nil
	}
	for _, name := range user.PermissionOverrides {
		if name == capability {
			return true, nil
		}
	}

	bundle, err := s.roleBundle(ctx, user.Role)
	if err != nil {
		return false, err
	}
	return bundle.Has(capability), nil
}

// Effective returns the user's resolved bundle with overrides folded in.
func (s *PermissionService) Effective(ctx context.Context, user *models.User) (models.PermissionBundle, error) {
	if user == nil {
		return models.PermissionBundle{}, nil
	}
	bundle, err := s.roleBundle(ctx, user.Role)
	if err != nil {
		return models.PermissionBundle{}, err
	}
	for _, name := range user.PermissionOverrides {
		switch name {
		case models.CapManageUsers:
			bundle.ManageUsers = true
		case models.CapManageRoles:
			bundle.ManageRoles = true
		case models.CapManagePanels:
			bundle.ManagePanels = true
		case models.CapManageRooms:
			bundle.ManageRooms = true
		case models.CapViewCandidates:
			bundle.ViewCandidates = true
		case models.CapEditCandidates:
			bundle.EditCandidates = true
		case models.CapAssignCandidates:
			bundle.AssignCandidates = true
		case models.CapSubmitFeedback:
			bundle.SubmitFeedback = true
		case models.CapViewFeedback:
			bundle.ViewFeedback = true
		case models.CapExportData:
			bundle.ExportData = true
		case models.CapManageSettings:
			bundle.ManageSettings = true
		}
	}
	return bundle, nil
}

func (s *PermissionService) roleBundle(ctx context.Context, role models.UserRole) (models.PermissionBundle, error) {
	rp, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultRoleBundles()[role], nil
		}
		return models.PermissionBundle{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve role bundle")
	}
	return rp.Permissions, nil
}
