// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTenantNotFound is a domain-specific error returned when a tenant is not found.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrTenantExists is returned when an insert collides with the unique
// phone-number constraint. Provisioning treats it as "already exists, reuse".
var ErrTenantExists = errors.New("tenant already exists for this phone number")

// TenantRepository defines the standard operations for tenant persistence.
type TenantRepository interface {
	// FindByID retrieves a single tenant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindByPhoneNumber retrieves a tenant by its business phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Tenant, error)

	// Create persists a new tenant. Returns ErrTenantExists when the phone
	// number is already taken, so callers can fetch and reuse the winner.
	Create(ctx context.Context, tenant *entity.Tenant) error
}
