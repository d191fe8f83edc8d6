// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have within a tenant.
type Role string

const (
	// RoleAdmin indicates the business owner who provisioned the tenant.
	RoleAdmin Role = "admin"
	// RoleClient indicates a constrained client login created by an owner.
	RoleClient Role = "client"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient:
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

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// RoleAssignment binds exactly one role to a user. It is created atomically
// alongside the Profile during provisioning.
type RoleAssignment struct {
	ID        uuid.UUID // The unique identifier of the assignment row.
	UserID    uuid.UUID // The identity this role belongs to.
	Role      Role      // The assigned role.
	CreatedAt time.Time // Timestamp of when this role was assigned.
}
