// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the level of access a user has within their organization.
type Role string

const (
	// RoleAdmin may mutate inventory and manage user roles.
	RoleAdmin Role = "admin"
	// RoleManager may mutate inventory but not manage users.
	RoleManager Role = "manager"
	// RoleViewer has read-only access. Default for new accounts.
	RoleViewer Role = "viewer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	default:
		return false
	}
}

// CanMutateInventory reports whether the role is allowed to create, update
// or delete inventory items.
func (r Role) CanMutateInventory() bool {
	return r == RoleAdmin || r == RoleManager
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// AllRoles lists every valid role, in descending order of privilege.
func AllRoles() Roles {
	return Roles{RoleAdmin, RoleManager, RoleViewer}
}
