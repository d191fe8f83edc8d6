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

// ClientHandler holds dependencies for client bookkeeping handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

type clientRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,kephone"`
}

type clientResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	TotalBalance float64   `json:"total_balance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toClientResponse(client *entity.Client) clientResponse {
	return clientResponse{
		ID:           client.ID.String(),
		Name:         client.Name,
		Email:        client.Email,
		PhoneNumber:  client.PhoneNumber,
		TotalBalance: client.TotalBalance,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}
}

// tenantAndParam reads the resolved tenant ID and a UUID path parameter.
func tenantAndParam(c echo.Context, name string) (uuid.UUID, uuid.UUID, error) {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return uuid.Nil, uuid.Nil, response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid "+name)
	}

	return tenantID, id, nil
}

// CreateClient handles the client creation request.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	client, err := h.uc.CreateClient(c.Request().Context(), &usecase.CreateClientInput{
		TenantID:    tenantID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toClientResponse(client), "Client created")
}

// UpdateClient handles the client update request.
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	tenantID, clientID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	client, err := h.uc.UpdateClient(c.Request().Context(), &usecase.UpdateClientInput{
		TenantID:    tenantID,
		ClientID:    clientID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClientResponse(client), "Client updated")
}

// DeleteClient handles the client deletion request.
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	tenantID, clientID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteClient(c.Request().Context(), tenantID, clientID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Client deleted")
}

// GetClient handles the single-client lookup request.
func (h *ClientHandler) GetClient(c echo.Context) error {
	tenantID, clientID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	client, err := h.uc.GetClient(c.Request().Context(), tenantID, clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClientResponse(client), "Client retrieved")
}

// ListClients handles the client listing request.
func (h *ClientHandler) ListClients(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	clients, err := h.uc.ListClients(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, toClientResponse(client))
	}

	return response.Success(c, http.StatusOK, out, "Clients retrieved")
}

type clientSummaryResponse struct {
	Client           clientResponse `json:"client"`
	TotalSales       float64        `json:"total_sales"`
	TotalPayments    float64        `json:"total_payments"`
	Balance          float64        `json:"balance"`
	TransactionCount int            `json:"transaction_count"`
}

// GetClientSummary handles the client ledger summary request.
func (h *ClientHandler) GetClientSummary(c echo.Context) error {
	tenantID, clientID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.uc.GetClientSummary(c.Request().Context(), tenantID, clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clientSummaryResponse{
		Client:           toClientResponse(summary.Client),
		TotalSales:       summary.Summary.TotalSales,
		TotalPayments:    summary.Summary.TotalPayments,
		Balance:          summary.Summary.Balance,
		TransactionCount: summary.Summary.TransactionCount,
	}, "Client summary retrieved")
}
