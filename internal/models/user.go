package models

import (
	"time"

	"github.com/lib/pq"
)

// UserRole represents the available roles for the permission system.
type UserRole string

const (
	RoleAdmin             UserRole = "admin"
	RolePanel             UserRole = "panel"
	RoleHR                UserRole = "hr"
	RoleOperationsLead    UserRole = "operations_lead"
	RoleOperationsManager UserRole = "operations_manager"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RolePanel, RoleHR, RoleOperationsLead, RoleOperationsManager:
		return true
	}
	return false
}

// User represents a portal account. PermissionOverrides grants individual
// capabilities on top of the role bundle.
type User struct {
	ID                  int64          `db:"id" json:"id"`
	Username            string         `db:"username" json:"username"`
	PasswordHash        string         `db:"password_hash" json:"-"`
	Role                UserRole       `db:"role" json:"role"`
	Name                string         `db:"name" json:"name"`
	Email               string         `db:"email" json:"email"`
	PermissionOverrides pq.StringArray `db:"permission_overrides" json:"permission_overrides"`
	Active              bool           `db:"active" json:"active"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updated_at"`
}

// CreateUserRequest is the payload for provisioning an account.
type CreateUserRequest struct {
	Username            string   `json:"username" validate:"required,min=3"`
	Password            string   `json:"password" validate:"required,min=6"`
	Role                UserRole `json:"role" validate:"required,oneof=admin panel hr operations_lead operations_manager"`
	Name                string   `json:"name" validate:"required"`
	Email               string   `json:"email" validate:"omitempty,email"`
	PermissionOverrides []string `json:"permission_overrides"`
}

// UpdateUserPatch carries a partial account update; nil fields are left
// untouched. Password changes go through the auth endpoints.
type UpdateUserPatch struct {
	Role                *UserRole `json:"role" validate:"omitempty,oneof=admin panel hr operations_lead operations_manager"`
	Name                *string   `json:"name" validate:"omitempty,min=1"`
	Email               *string   `json:"email" validate:"omitempty,email"`
	PermissionOverrides *[]string `json:"permission_overrides"`
	Active              *bool     `json:"active"`
}

// UserFilter captures list query options.
type UserFilter struct {
	Role     *UserRole
	Active   *bool
	Search   string
	Page     int
	PageSize int
}
