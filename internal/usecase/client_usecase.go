package usecase

import (
	"context"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateClientInput defines the data required to add a client to a tenant's book.
type CreateClientInput struct {
	TenantID    uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
}

// UpdateClientInput defines the data required to modify a client record.
type UpdateClientInput struct {
	TenantID    uuid.UUID
	ClientID    uuid.UUID
	Name        string
	Email       string
	PhoneNumber string
}

// ClientSummaryOutput aggregates one client's ledger position.
type ClientSummaryOutput struct {
	Client  *entity.Client
	Summary *entity.TransactionSummary
}

// ClientUsecase defines the interface for tenant-scoped client bookkeeping.
type ClientUsecase interface {
	CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error)
	UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error)
	DeleteClient(ctx context.Context, tenantID, clientID uuid.UUID) error
	GetClient(ctx context.Context, tenantID, clientID uuid.UUID) (*entity.Client, error)
	ListClients(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error)

	// GetClientSummary returns the client together with its ledger totals.
	// The balance is total sales minus total payments.
	GetClientSummary(ctx context.Context, tenantID, clientID uuid.UUID) (*ClientSummaryOutput, error)
}
