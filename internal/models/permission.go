package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Capability names referenced by route guards and user permission
// overrides.
const (
	CapManageUsers      = "manage_users"
	CapManageRoles      = "manage_roles"
	CapManagePanels     = "manage_panels"
	CapManageRooms      = "manage_rooms"
	CapViewCandidates   = "view_candidates"
	CapEditCandidates   = "edit_candidates"
	CapAssignCandidates = "assign_candidates"
	CapSubmitFeedback   = "submit_feedback"
	CapViewFeedback     = "view_feedback"
	CapExportData       = "export_data"
	CapManageSettings   = "manage_settings"
)

// AllCapabilities lists every capability name in a stable order.
var AllCapabilities = []string{
	CapManageUsers,
	CapManageRoles,
	CapManagePanels,
	CapManageRooms,
	CapViewCandidates,
	CapEditCandidates,
	CapAssignCandidates,
	CapSubmitFeedback,
	CapViewFeedback,
	CapExportData,
	CapManageSettings,
}

// PermissionBundle is the capability flag set attached to a role. Stored
// serialized (JSONB) in the role_permissions table.
type PermissionBundle struct {
	ManageUsers      bool `json:"manage_users"`
	ManageRoles      bool `json:"manage_roles"`
	ManagePanels     bool `json:"manage_panels"`
	ManageRooms      bool `json:"manage_rooms"`
	ViewCandidates   bool `json:"view_candidates"`
	EditCandidates   bool `json:"edit_candidates"`
	AssignCandidates bool `json:"assign_candidates"`
	SubmitFeedback   bool `json:"submit_feedback"`
	ViewFeedback     bool `json:"view_feedback"`
	ExportData       bool `json:"export_data"`
	ManageSettings   bool `json:"manage_settings"`
}

// Has reports whether the bundle grants the named capability. Unknown
// capability names grant nothing.
func (b PermissionBundle) Has(capability string) bool {
	switch capability {
	case CapManageUsers:
		return b.ManageUsers
	case CapManageRoles:
		return b.ManageRoles
	case CapManagePanels:
		return b.ManagePanels
	case CapManageRooms:
		return b.ManageRooms
	case CapViewCandidates:
		return b.ViewCandidates
	case CapEditCandidates:
		return b.EditCandidates
	case CapAssignCandidates:
		return b.AssignCandidates
	case CapSubmitFeedback:
		return b.SubmitFeedback
	case CapViewFeedback:
		return b.ViewFeedback
	case CapExportData:
		return b.ExportData
	case CapManageSettings:
		return b.ManageSettings
	}
	return false
}

// Value implements driver.Valuer so the bundle persists as JSONB.
func (b PermissionBundle) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements sql.Scanner for JSONB columns.
func (b *PermissionBundle) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		*b = PermissionBundle{}
		return nil
	}
	return fmt.Errorf("permission bundle: cannot scan %T", src)
}

// FullAccess returns a bundle with every capability granted.
func FullAccess() PermissionBundle {
	return PermissionBundle{
		ManageUsers:      true,
		ManageRoles:      true,
		ManagePanels:     true,
		ManageRooms:      true,
		ViewCandidates:   true,
		EditCandidates:   true,
		AssignCandidates: true,
		SubmitFeedback:   true,
		ViewFeedback:     true,
		ExportData:       true,
		ManageSettings:   true,
	}
}

// DefaultRoleBundles returns the capability bundles seeded for each role
// on an empty store.
func DefaultRoleBundles() map[UserRole]PermissionBundle {
	return map[UserRole]PermissionBundle{
		RoleAdmin: FullAccess(),
		RolePanel: {
			ViewCandidates: true,
			SubmitFeedback: true,
			ViewFeedback:   true,
		},
		RoleHR: {
			ViewCandidates:   true,
			EditCandidates:   true,
			AssignCandidates: true,
			SubmitFeedback:   true,
			ViewFeedback:     true,
			ExportData:       true,
		},
		RoleOperationsLead: {
			ManagePanels:     true,
			ManageRooms:      true,
			ViewCandidates:   true,
			EditCandidates:   true,
			AssignCandidates: true,
			ViewFeedback:     true,
			ExportData:       true,
		},
		RoleOperationsManager: {
			ManagePanels:     true,
			ManageRooms:      true,
			ViewCandidates:   true,
			EditCandidates:   true,
			AssignCandidates: true,
			SubmitFeedback:   true,
			ViewFeedback:     true,
			ExportData:       true,
			ManageSettings:   true,
		},
	}
}

// RolePermission binds a role to its capability bundle.
type RolePermission struct {
	ID          int64            `db:"id" json:"id"`
	Role        UserRole         `db:"role" json:"role"`
	Permissions PermissionBundle `db:"permissions" json:"permissions"`
	Description string           `db:"description" json:"description"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}

// CreateRolePermissionRequest is the payload for defining a role bundle.
type CreateRolePermissionRequest struct {
	Role        UserRole         `json:"role" validate:"required,oneof=admin panel hr operations_lead operations_manager"`
	Permissions PermissionBundle `json:"permissions"`
	Description string           `json:"description"`
}

// UpdateRolePermissionPatch carries a partial bundle update; nil fields
// are left untouched.
type UpdateRolePermissionPatch struct {
	Permissions *PermissionBundle `json:"permissions"`
	Description *string           `json:"description"`
}
