package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is returned when a client row is not found within the tenant.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines tenant-scoped operations for client persistence.
// Every read and write is filtered by tenant ID; a row belonging to another
// tenant behaves exactly like a missing row.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Client, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error)
}
