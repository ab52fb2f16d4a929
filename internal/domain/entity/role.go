// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the kind of principal signed in to the dashboard.
type Role string

const (
	// RoleCustomer is a marketplace shopper; it has no dashboard pages of its own.
	RoleCustomer Role = "customer"
	// RoleMerchant owns exactly one store and manages its catalog.
	RoleMerchant Role = "merchant"
	// RoleAdmin manages users, stores and platform-wide settings.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
