package handler

import (
	"log/slog"
	"net/http"

	"carttrace/internal/delivery/http/middleware"
	"carttrace/internal/delivery/http/response"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProvisioningHandler holds dependencies for account provisioning handlers.
type ProvisioningHandler struct {
	uc     usecase.ProvisioningUsecase
	logger *slog.Logger
}

// NewProvisioningHandler is the constructor for ProvisioningHandler, injected by Fx.
func NewProvisioningHandler(uc usecase.ProvisioningUsecase, logger *slog.Logger) *ProvisioningHandler {
	return &ProvisioningHandler{
		uc:     uc,
		logger: logger,
	}
}

type setupTenantRequest struct {
	BusinessName string `json:"business_name" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	PhoneNumber  string `json:"phone_number" validate:"required,kephone"`
}

type setupTenantResponse struct {
	Success  bool   `json:"success"`
	TenantID string `json:"tenant_id"`
}

// SetupTenant handles the first-login owner provisioning request.
func (h *ProvisioningHandler) SetupTenant(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing or invalid authentication token")
	}

	var req setupTenantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant setup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SetupTenant(c.Request().Context(), &usecase.SetupTenantInput{
		UserID:       userID,
		BusinessName: req.BusinessName,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, setupTenantResponse{
		Success:  true,
		TenantID: output.TenantID.String(),
	}, "Tenant setup completed")
}

type createClientUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" validate:"required,kephone"`
	TenantID    string `json:"tenantId" validate:"required,uuid"`
}

type createClientUserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// CreateClientUser handles the client login provisioning request.
func (h *ProvisioningHandler) CreateClientUser(c echo.Context) error {
	var req createClientUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid tenant id")
	}

	output, err := h.uc.CreateClientUser(c.Request().Context(), &usecase.CreateClientUserInput{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		TenantID:    tenantID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, createClientUserResponse{
		UserID: output.UserID.String(),
		Email:  output.Email,
	}, "Client user created")
}

type phoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,kephone"`
}

// ResetPassword handles the PIN reset request. The fresh PIN travels back in
// the response body; there is no out-of-band delivery.
func (h *ProvisioningHandler) ResetPassword(c echo.Context) error {
	var req phoneNumberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"pin": output.Pin}, "PIN reset successfully")
}

// ResolveLoginEmail reports the synthesized login email for a phone number.
func (h *ProvisioningHandler) ResolveLoginEmail(c echo.Context) error {
	var req phoneNumberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolve input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.ResolveLoginEmail(c.Request().Context(), &usecase.ResolveLoginEmailInput{
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": output.Email}, "Login email resolved")
}
