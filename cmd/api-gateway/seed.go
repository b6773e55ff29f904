package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/walkin-drive-api/internal/models"
	"github.com/noah-isme/walkin-drive-api/internal/service"
	"github.com/noah-isme/walkin-drive-api/pkg/config"
)

var seedRoleDescriptions = []struct {
	role models.UserRole
	desc string
}{
	{models.RoleAdmin, "Full access to every portal feature"},
	{models.RolePanel, "Interviewer: queue visibility and feedback submission"},
	{models.RoleHR, "Registration desk and candidate coordination"},
	{models.RoleOperationsLead, "Floor operations: rooms, panels, and queues"},
	{models.RoleOperationsManager, "Drive oversight including exports and metrics"},
}

// seedDefaults provisions the role permission bundles and the initial
// admin account when the backing store is empty. It never overwrites
// existing rows, so restarts are safe.
func seedDefaults(ctx context.Context, cfg config.SeedConfig, users *service.UserService, perms *service.PermissionService, logr *zap.Logger) {
	existing, err := perms.List(ctx)
	if err != nil {
		logr.Sugar().Warnw("seed: failed to inspect role permissions", "error", err)
	} else if len(existing) == 0 {
		bundles := models.DefaultRoleBundles()
		for _, entry := range seedRoleDescriptions {
			if _, err := perms.Create(ctx, models.CreateRolePermissionRequest{
				Role:        entry.role,
				Permissions: bundles[entry.role],
				Description: entry.desc,
			}); err != nil {
				logr.Sugar().Warnw("seed: failed to create role bundle", "role", entry.role, "error", err)
			}
		}
		logr.Sugar().Infow("seed: role permission bundles created", "count", len(seedRoleDescriptions))
	}

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}

	_, pagination, err := users.List(ctx, models.UserFilter{Page: 1, PageSize: 1})
	if err != nil {
		logr.Sugar().Warnw("seed: failed to inspect users", "error", err)
		return
	}
	if pagination != nil && pagination.TotalCount > 0 {
		return
	}

	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}
	admin, err := users.Create(ctx, models.CreateUserRequest{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Role:     models.RoleAdmin,
		Name:     name,
	})
	if err != nil {
		logr.Sugar().Warnw("seed: failed to create admin account", "error", err)
		return
	}
	logr.Sugar().Infow("seed: admin account created", "user_id", admin.ID, "username", admin.Username)
}
