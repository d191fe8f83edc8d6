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

// TransactionHandler holds dependencies for client ledger handlers.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTransactionRequest struct {
	ClientID string  `json:"client_id" validate:"required,uuid"`
	Type     string  `json:"type" validate:"required,oneof=sale payment"`
	Amount   float64 `json:"amount" validate:"gt=0"`
	Note     string  `json:"note"`
}

type updateTransactionRequest struct {
	Type   string  `json:"type" validate:"required,oneof=sale payment"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Note   string  `json:"note"`
}

type transactionResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func toTransactionResponse(transaction *entity.Transaction) transactionResponse {
	return transactionResponse{
		ID:        transaction.ID.String(),
		ClientID:  transaction.ClientID.String(),
		Type:      string(transaction.Type),
		Amount:    transaction.Amount,
		Note:      transaction.Note,
		CreatedAt: transaction.CreatedAt,
	}
}

// CreateTransaction handles the ledger entry creation request. The client's
// running balance moves in the same database transaction.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
	}

	transaction, err := h.uc.CreateTransaction(c.Request().Context(), &usecase.CreateTransactionInput{
		TenantID: tenantID,
		ClientID: clientID,
		Type:     entity.TransactionType(req.Type),
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTransactionResponse(transaction), "Transaction recorded")
}

// UpdateTransaction handles the ledger entry update request. The client's
// balance moves from the old entry's effect to the new one.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	tenantID, transactionID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	var req updateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.uc.UpdateTransaction(c.Request().Context(), &usecase.UpdateTransactionInput{
		TenantID:      tenantID,
		TransactionID: transactionID,
		Type:          entity.TransactionType(req.Type),
		Amount:        req.Amount,
		Note:          req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionResponse(transaction), "Transaction updated")
}

// GetTransaction handles the single ledger entry lookup request.
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	tenantID, transactionID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	transaction, err := h.uc.GetTransaction(c.Request().Context(), tenantID, transactionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTransactionResponse(transaction), "Transaction retrieved")
}

// DeleteTransaction handles the ledger entry deletion request. The balance
// effect of the deleted entry is reversed.
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	tenantID, transactionID, err := tenantAndParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTransaction(c.Request().Context(), tenantID, transactionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Transaction deleted")
}

// ListTransactions handles the ledger listing request. An optional client_id
// query parameter narrows the list to one client.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var (
		transactions []*entity.Transaction
		err          error
	)
	if rawClientID := c.QueryParam("client_id"); rawClientID != "" {
		clientID, parseErr := uuid.Parse(rawClientID)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid client id")
		}
		transactions, err = h.uc.ListTransactionsByClient(c.Request().Context(), tenantID, clientID)
	} else {
		transactions, err = h.uc.ListTransactions(c.Request().Context(), tenantID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, toTransactionResponse(transaction))
	}

	return response.Success(c, http.StatusOK, out, "Transactions retrieved")
}
