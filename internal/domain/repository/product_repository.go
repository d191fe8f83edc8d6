package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product row is not found within the tenant.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines tenant-scoped operations for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Product, error)
	SearchByName(ctx context.Context, tenantID uuid.UUID, query string) ([]*entity.Product, error)
}
