package handler

import (
	"log/slog"
	"net/http"
	"time"

	"carttrace/internal/delivery/http/middleware"
	"carttrace/internal/delivery/http/response"
	"carttrace/internal/domain/entity"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InvoiceHandler holds dependencies for invoicing handlers.
type InvoiceHandler struct {
	uc     usecase.InvoiceUsecase
	logger *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler, injected by Fx.
func NewInvoiceHandler(uc usecase.InvoiceUsecase, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		uc:     uc,
		logger: logger,
	}
}

type createInvoiceRequest struct {
	ClientID  string     `json:"client_id" validate:"required,uuid"`
	ProductID *string    `json:"product_id" validate:"omitempty,uuid"`
	Amount    float64    `json:"amount" validate:"gt=0"`
	DueDate   *time.Time `json:"due_date"`
}

type updateInvoiceRequest struct {
	Amount  float64    `json:"amount" validate:"gt=0"`
	Status  string     `json:"status" validate:"required"`
	DueDate *time.Time `json:"due_date"`
}

type invoiceResponse struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	ProductID     *string    `json:"product_id,omitempty"`
	InvoiceNumber string     `json:"invoice_number"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toInvoiceResponse(invoice *entity.Invoice) invoiceResponse {
	out := invoiceResponse{
		ID:            invoice.ID.String(),
		ClientID:      invoice.ClientID.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Amount,
		Status:        string(invoice.Status),
		DueDate:       invoice.DueDate,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
	if invoice.ProductID != nil {
		productID := invoice.ProductID.String()
		out.ProductID = &productID
	}

	return out
}

// CreateInvoice handles the invoice creation request. The invoice number is
// assigned server-side.
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
	}

	var productID *uuid.UUID
	if req.ProductID != nil {
		parsed, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
		}
		productID = &parsed
	}

	invoice, err := h.uc.CreateInvoice(c.Request().Context(), &usecase.CreateInvoiceInput{
		TenantID:  tenantID,
		ClientID:  clientID,
		ProductID: productID,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toInvoiceResponse(invoice), "Invoice created")
}

// UpdateInvoice handles the invoice update request.
func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	tenantID, invoiceID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	var req updateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status := entity.InvoiceStatus(req.Status)
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invoice status")
	}

	invoice, err := h.uc.UpdateInvoice(c.Request().Context(), &usecase.UpdateInvoiceInput{
		TenantID:  tenantID,
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		Status:    status,
		DueDate:   req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInvoiceResponse(invoice), "Invoice updated")
}

// DeleteInvoice handles the invoice deletion request.
func (h *InvoiceHandler) DeleteInvoice(c echo.Context) error {
	tenantID, invoiceID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteInvoice(c.Request().Context(), tenantID, invoiceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Invoice deleted")
}

// GetInvoice handles the single-invoice lookup request.
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	tenantID, invoiceID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	invoice, err := h.uc.GetInvoice(c.Request().Context(), tenantID, invoiceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInvoiceResponse(invoice), "Invoice retrieved")
}

// NextInvoiceNumber handles the invoice-number preview request.
func (h *InvoiceHandler) NextInvoiceNumber(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	number, err := h.uc.NextInvoiceNumber(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"invoice_number": number}, "Invoice number generated")
}

// ListInvoices handles the invoice listing request. An optional client_id
// query parameter narrows the list to one client.
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var (
		invoices []*entity.Invoice
		err      error
	)
	if rawClientID := c.QueryParam("client_id"); rawClientID != "" {
		clientID, parseErr := uuid.Parse(rawClientID)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
		}
		invoices, err = h.uc.ListInvoicesByClient(c.Request().Context(), tenantID, clientID)
	} else {
		invoices, err = h.uc.ListInvoices(c.Request().Context(), tenantID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]invoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		out = append(out, toInvoiceResponse(invoice))
	}

	return response.Success(c, http.StatusOK, out, "Invoices retrieved")
}
