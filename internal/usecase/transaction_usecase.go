package usecase

import (
	"context"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTransactionInput defines the data required to record a ledger entry.
type CreateTransactionInput struct {
	TenantID uuid.UUID
	ClientID uuid.UUID
	Type     entity.TransactionType
	Amount   float64
	Note     string
}

// UpdateTransactionInput defines the data required to modify a ledger entry.
type UpdateTransactionInput struct {
	TenantID      uuid.UUID
	TransactionID uuid.UUID
	Type          entity.TransactionType
	Amount        float64
	Note          string
}

// TransactionUsecase defines the interface for the tenant-scoped client ledger.
type TransactionUsecase interface {
	// CreateTransaction records a sale or payment and adjusts the client's
	// running balance in the same database transaction.
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)

	// UpdateTransaction rewrites a ledger entry and moves the client's
	// balance from the old entry's effect to the new one, atomically.
	UpdateTransaction(ctx context.Context, input *UpdateTransactionInput) (*entity.Transaction, error)

	DeleteTransaction(ctx context.Context, tenantID, transactionID uuid.UUID) error
	GetTransaction(ctx context.Context, tenantID, transactionID uuid.UUID) (*entity.Transaction, error)
	ListTransactions(ctx context.Context, tenantID uuid.UUID) ([]*entity.Transaction, error)
	ListTransactionsByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Transaction, error)

	// SummarizeClient aggregates one client's ledger entries.
	SummarizeClient(ctx context.Context, tenantID, clientID uuid.UUID) (*entity.TransactionSummary, error)
}
