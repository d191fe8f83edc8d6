package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "carttrace/internal/delivery/context"
	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to the tenant's catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.Name, input.Price); err != nil {
		return nil, err
	}

	newProduct := &entity.Product{
		TenantID:    input.TenantID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
	}
	if err := srv.productRepo.Create(ctx, newProduct); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("tenantID", input.TenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return newProduct, nil
}

// UpdateProduct modifies a product within the tenant.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateProductFields(input.Name, input.Price); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, input.TenantID, input.ProductID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to load product for update")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, srv.mapNotFound(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product from the tenant's catalog.
func (srv *productService) DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, tenantID, productID); err != nil {
		return srv.mapNotFound(err, "failed to delete product")
	}

	return nil
}

// GetProduct retrieves a single product within the tenant.
func (srv *productService) GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, tenantID, productID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves all products of a tenant.
func (srv *productService) ListProducts(ctx context.Context, tenantID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// SearchProducts retrieves the tenant's products matching a name fragment.
// A blank query falls back to the full listing.
func (srv *productService) SearchProducts(ctx context.Context, tenantID uuid.UUID, query string) ([]*entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return srv.ListProducts(ctx, tenantID)
	}

	products, err := srv.productRepo.SearchByName(ctx, tenantID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

func (srv *productService) mapNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("product not found")
	}

	return errors.Wrap(err, msg)
}

func validateProductFields(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("product price cannot be negative")
	}

	return nil
}
