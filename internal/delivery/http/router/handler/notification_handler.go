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

// NotificationHandler holds dependencies for inbox handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createNotificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(notification *entity.Notification) notificationResponse {
	return notificationResponse{
		ID:        notification.ID.String(),
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      notification.Type,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt,
	}
}

// userAndParam resolves the caller's user ID and a UUID path parameter.
func userAndParam(c echo.Context, name string) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return uuid.Nil, uuid.Nil, response.Unauthorized(c, "UNAUTHENTICATED", "Missing or invalid authentication token")
	}

	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, uuid.Nil, response.BadRequest(c, "INVALID_INPUT", "Invalid "+name)
	}

	return userID, id, nil
}

// CreateNotification handles the notification creation request. The row is
// addressed to the caller's own inbox.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing or invalid authentication token")
	}
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		return response.Forbidden(c, "TENANT_NOT_RESOLVED", "Account is not provisioned for a tenant")
	}

	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	notification, err := h.uc.CreateNotification(c.Request().Context(), &usecase.CreateNotificationInput{
		TenantID: tenantID,
		UserID:   userID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toNotificationResponse(notification), "Notification created")
}

// ListNotifications handles the inbox listing request.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing or invalid authentication token")
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, toNotificationResponse(notification))
	}

	return response.Success(c, http.StatusOK, out, "Notifications retrieved")
}

// CountUnread handles the unread badge count request.
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing or invalid authentication token")
	}

	count, err := h.uc.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Unread count retrieved")
}

// MarkRead handles the mark-as-read request for one notification.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, notificationID, err := userAndParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.uc.MarkNotificationRead(c.Request().Context(), userID, notificationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNotificationResponse(notification), "Notification marked as read")
}

// MarkAllRead handles the mark-everything-read request.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing or invalid authentication token")
	}

	if err := h.uc.MarkAllNotificationsRead(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications marked as read")
}

// DeleteNotification handles the notification deletion request.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, notificationID, err := userAndParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}
