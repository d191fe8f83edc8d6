package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInvoiceNotFound is returned when an invoice row is not found within the tenant.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository defines tenant-scoped operations for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Invoice, error)
	ListByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Invoice, error)

	// FindLatestByTenant returns the most recently created invoice for the
	// tenant, or ErrInvoiceNotFound when none exist. Used for invoice-number
	// generation.
	FindLatestByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.Invoice, error)
}
