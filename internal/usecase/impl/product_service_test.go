package impl

import (
	"context"
	"testing"

	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	mockRepo "carttrace/internal/mocks/repository"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for catalog tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return productServiceFixtures{
		service:     svc,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_RequiresName(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		TenantID: uuid.New(),
		Name:     "   ",
		Price:    50,
	})

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_SearchProducts_FiltersByName(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	matches := []*entity.Product{
		{ID: uuid.New(), TenantID: tenantID, Name: "Unga Pembe 2kg", Price: 180},
	}

	fx.productRepo.EXPECT().
		SearchByName(ctx, tenantID, "unga").
		Return(matches, nil)

	products, err := fx.service.SearchProducts(ctx, tenantID, "  unga  ")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Unga Pembe 2kg", products[0].Name)
}

func TestProductService_SearchProducts_BlankQueryListsAll(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	catalog := []*entity.Product{
		{ID: uuid.New(), TenantID: tenantID, Name: "Sukari 1kg"},
		{ID: uuid.New(), TenantID: tenantID, Name: "Unga Pembe 2kg"},
	}

	// Whitespace-only queries fall back to the full listing.
	fx.productRepo.EXPECT().
		ListByTenant(ctx, tenantID).
		Return(catalog, nil)

	products, err := fx.service.SearchProducts(ctx, tenantID, "   ")

	require.NoError(t, err)
	assert.Len(t, products, 2)
}
