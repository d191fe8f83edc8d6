package usecase

import (
	"context"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a product to a tenant's catalog.
type CreateProductInput struct {
	TenantID    uuid.UUID
	Name        string
	Description string
	Price       float64
}

// UpdateProductInput defines the data required to modify a product.
type UpdateProductInput struct {
	TenantID    uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Description string
	Price       float64
}

// ProductUsecase defines the interface for tenant-scoped catalog management.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error
	GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, tenantID uuid.UUID) ([]*entity.Product, error)
	SearchProducts(ctx context.Context, tenantID uuid.UUID, query string) ([]*entity.Product, error)
}
