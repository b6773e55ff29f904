package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/store"
	appErrors "github.com/noah-isme/walkin-drive-api/pkg/errors"
)

func newPermissionService(t *testing.T) (*PermissionService, *store.Store) {
	t.Helper()
	st := store.New()
	svc := NewPermissionService(st.RolePermissions, validator.New(), zap.NewNop(), &capturePublisher{})
	return svc, st
}

func TestPermissionCreateAndDuplicateRole(t *testing.T) {
	svc, _ := newPermissionService(t)

	rp, err := svc.Create(context.Background(), models.CreateRolePermissionRequest{
		Role:        models.RolePanel,
		Permissions: models.PermissionBundle{ViewCandidates: true, SubmitFeedback: true},
		Description: "interviewers",
	})
	require.NoError(t, err)
	assert.True(t, rp.Permissions.ViewCandidates)

	_, err = svc.Create(context.Background(), models.CreateRolePermissionRequest{
		Role:        models.RolePanel,
		Permissions: models.FullAccess(),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestPermissionAllowedUsesStoredBundle(t *testing.T) {
	svc, _ := newPermissionService(t)
	_, err := svc.Create(context.Background(), models.CreateRolePermissionRequest{
		Role:        models.RoleHR,
		Permissions: models.PermissionBundle{ViewCandidates: true},
	})
	require.NoError(t, err)

	user := &models.User{Role: models.RoleHR}

	ok, err := svc.Allowed(context.Background(), user, models.CapViewCandidates)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Allowed(context.Background(), user, models.CapManageUsers)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPermissionOverridesGrantOnTop(t *testing.T) {
	svc, _ := newPermissionService(t)
	_, err := svc.Create(context.Background(), models.CreateRolePermissionRequest{
		Role:        models.RolePanel,
		Permissions: models.PermissionBundle{ViewCandidates: true},
	})
	require.NoError(t, err)

	user := &models.User{
		Role:                models.RolePanel,
		PermissionOverrides: []string{models.CapExportData},
	}

	ok, err := svc.Allowed(context.Background(), user, models.CapExportData)
	require.NoError(t, err)
	assert.True(t, ok)

	effective, err := svc.Effective(context.Background(), user)
	require.NoError(t, err)
	assert.True(t, effective.ViewCandidates)
	assert.True(t, effective.ExportData)
	assert.False(t, effective.ManageUsers)
}

func TestPermissionFallsBackToDefaults(t *testing.T) {
	svc, _ := newPermissionService(t)

	admin := &models.User{Role: models.RoleAdmin}
	ok, err := svc.Allowed(context.Background(), admin, models.CapManageUsers)
	require.NoError(t, err)
	assert.True(t, ok)

	panelist := &models.User{Role: models.RolePanel}
	ok, err = svc.Allowed(context.Background(), panelist, models.CapManageUsers)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Allowed(context.Background(), panelist, models.CapSubmitFeedback)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPermissionUpdateReplacesBundle(t *testing.T) {
	svc, _ := newPermissionService(t)
	rp, err := svc.Create(context.Background(), models.CreateRolePermissionRequest{
		Role:        models.RoleOperationsLead,
		Permissions: models.PermissionBundle{ManageRooms: true},
	})
	require.NoError(t, err)

	bundle := models.PermissionBundle{ManageRooms: true, ManagePanels: true}
	updated, err := svc.Update(context.Background(), rp.ID, models.UpdateRolePermissionPatch{Permissions: &bundle})
	require.NoError(t, err)
	assert.True(t, updated.Permissions.ManagePanels)
}

func TestPermissionDeleteRestoresDefaults(t *testing.T) {
	svc, _ := newPermissionService(t)
	rp, err := svc.Create(context.Background(), models.CreateRolePermissionRequest{
		Role:        models.RolePanel,
		Permissions: models.PermissionBundle{},
	})
	require.NoError(t, err)

	user := &models.User{Role: models.RolePanel}
	ok, err := svc.Allowed(context.Background(), user, models.CapViewCandidates)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.Delete(context.Background(), rp.ID))

	ok, err = svc.Allowed(context.Background(), user, models.CapViewCandidates)
	require.NoError(t, err)
	assert.True(t, ok)
}
