package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

const rolePermissionColumns = `id, role, permissions, description, created_at, updated_at`

// RolePermissionRepository provides database access for role capability
// bundles.
type RolePermissionRepository struct {
	db *sqlx.DB
}

// NewRolePermissionRepository creates a new instance of
// RolePermissionRepository.
func NewRolePermissionRepository(db *sqlx.DB) *RolePermissionRepository {
	return &RolePermissionRepository{db: db}
}

// Create inserts a new bundle and fills the assigned id and timestamps.
func (r *RolePermissionRepository) Create(ctx context.Context, rp *models.RolePermission) error {
	now := time.Now().UTC()
	rp.CreatedAt = now
	rp.UpdatedAt = now

	const query = `INSERT INTO role_permissions (role, permissions, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &rp.ID, query,
		rp.Role, rp.Permissions, rp.Description, rp.CreatedAt, rp.UpdatedAt,
	); err != nil {
		return fmt.Errorf("create role permission: %w", err)
	}
	return nil
}

// FindByID returns a bundle by identifier.
func (r *RolePermissionRepository) FindByID(ctx context.Context, id int64) (*models.RolePermission, error) {
	query := fmt.Sprintf(`SELECT %s FROM role_permissions WHERE id = $1 LIMIT 1`, rolePermissionColumns)
	var rp models.RolePermission
	if err := r.db.GetContext(ctx, &rp, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find role permission by id: %w", err)
	}
	return &rp, nil
}

// FindByRole returns the bundle for a role.
func (r *RolePermissionRepository) FindByRole(ctx context.Context, role models.UserRole) (*models.RolePermission, error) {
	query := fmt.Sprintf(`SELECT %s FROM role_permissions WHERE role = $1 LIMIT 1`, rolePermissionColumns)
	var rp models.RolePermission
	if err := r.db.GetContext(ctx, &rp, query, role); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find role permission by role: %w", err)
	}
	return &rp, nil
}

// List returns all bundles in insertion order.
func (r *RolePermissionRepository) List(ctx context.Context) ([]models.RolePermission, error) {
	query := fmt.Sprintf(`SELECT %s FROM role_permissions ORDER BY id ASC`, rolePermissionColumns)
	var out []models.RolePermission
	if err := r.db.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	return out, nil
}

// Update applies the non-nil patch fields and returns the merged record.
func (r *RolePermissionRepository) Update(ctx context.Context, id int64, patch models.UpdateRolePermissionPatch) (*models.RolePermission, error) {
	sets := []string{"updated_at = $2"}
	args := []interface{}{id, time.Now().UTC()}

	if patch.Permissions != nil {
		sets = append(sets, fmt.Sprintf("permissions = $%d", len(args)+1))
		args = append(args, *patch.Permissions)
	}
	if patch.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *patch.Description)
	}

	query := fmt.Sprintf(`UPDATE role_permissions SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), rolePermissionColumns)
	var rp models.RolePermission
	if err := r.db.GetContext(ctx, &rp, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update role permission: %w", err)
	}
	return &rp, nil
}

// Delete removes the bundle permanently.
func (r *RolePermissionRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM role_permissions WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete role permission: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
