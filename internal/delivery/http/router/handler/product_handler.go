package handler

import (
	"log/slog"
	"net/http"
	"time"

	"carttrace/internal/delivery/http/middleware"
	"carttrace/internal/delivery/http/response"
	"carttrace/internal/domain/entity"
	"carttrace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created")
}

// UpdateProduct handles the product update request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	tenantID, productID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		TenantID:    tenantID,
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated")
}

// DeleteProduct handles the product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	tenantID, productID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), tenantID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// GetProduct handles the single-product lookup request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	tenantID, productID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), tenantID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product retrieved")
}

// ListProducts handles the product listing request. An optional q query
// parameter filters the catalog by name fragment.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var (
		products []*entity.Product
		err      error
	)
	if query := c.QueryParam("q"); query != "" {
		products, err = h.uc.SearchProducts(c.Request().Context(), tenantID, query)
	} else {
		products, err = h.uc.ListProducts(c.Request().Context(), tenantID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, out, "Products retrieved")
}
