// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents one business account. A business phone number maps to at
// most one tenant; provisioning looks an existing tenant up before inserting.
type Tenant struct {
	ID           uuid.UUID // The unique identifier of the tenant.
	BusinessName string    // The display name of the business, e.g. "Nunua Polepole".
	PhoneNumber  string    // The business phone number, format 0XXXXXXXXX.
	CreatedAt    time.Time // Timestamp of when this tenant was provisioned.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// Profile links an authentication identity to exactly one tenant.
// One profile per authenticated user; created during provisioning and
// immutable afterwards.
type Profile struct {
	ID          uuid.UUID // The unique identifier of the profile row.
	UserID      uuid.UUID // The identity this profile belongs to.
	TenantID    uuid.UUID // The tenant this user operates under.
	FullName    string    // Display name; defaults to the phone number for client accounts.
	PhoneNumber string    // The user's phone number, format 0XXXXXXXXX.
	CreatedAt   time.Time // Timestamp of when this profile was created.
}
