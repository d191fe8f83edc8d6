package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a ledger entry is not found within the tenant.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines tenant-scoped operations for ledger entries.
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	Update(ctx context.Context, txn *entity.Transaction) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Transaction, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Transaction, error)
	ListByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Transaction, error)
}
