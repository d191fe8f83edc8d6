package usecase

import (
	"context"
	"time"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateInvoiceInput defines the data required to issue an invoice.
// The invoice number is generated server-side, never supplied by the caller.
type CreateInvoiceInput struct {
	TenantID  uuid.UUID
	ClientID  uuid.UUID
	ProductID *uuid.UUID
	Amount    float64
	DueDate   *time.Time
}

// UpdateInvoiceInput defines the data required to modify an invoice.
type UpdateInvoiceInput struct {
	TenantID  uuid.UUID
	InvoiceID uuid.UUID
	Amount    float64
	Status    entity.InvoiceStatus
	DueDate   *time.Time
}

// InvoiceUsecase defines the interface for tenant-scoped invoicing.
type InvoiceUsecase interface {
	CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error)
	DeleteInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) error
	GetInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, tenantID uuid.UUID) ([]*entity.Invoice, error)
	ListInvoicesByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Invoice, error)
	NextInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
