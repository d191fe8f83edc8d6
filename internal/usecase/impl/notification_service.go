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

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNotification posts a notification to a user's inbox.
func (srv *notificationService) CreateNotification(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("notification title and message are required")
	}

	newNotification := &entity.Notification{
		TenantID: input.TenantID,
		UserID:   input.UserID,
		Title:    input.Title,
		Message:  input.Message,
		Type:     input.Type,
	}
	if err := srv.notificationRepo.Create(ctx, newNotification); err != nil {
		srv.log(ctx).Error("Failed to create notification", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create notification")
	}

	return newNotification, nil
}

// ListNotifications retrieves the user's inbox, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountUnread counts the user's unread notifications.
func (srv *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnreadByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead flags one notification as read and returns the row.
func (srv *notificationService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	if err := srv.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		return nil, srv.mapNotFound(err, "failed to mark notification as read")
	}

	notification, err := srv.notificationRepo.FindByID(ctx, userID, notificationID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to reload notification")
	}

	return notification, nil
}

// MarkAllNotificationsRead flags the user's whole inbox as read. An already
// empty or fully read inbox is not an error.
func (srv *notificationService) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark all notifications as read")
	}

	return nil
}

// DeleteNotification removes one notification from the user's inbox.
func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.Delete(ctx, userID, notificationID); err != nil {
		return srv.mapNotFound(err, "failed to delete notification")
	}

	return nil
}

func (srv *notificationService) mapNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("notification not found")
	}

	return errors.Wrap(err, msg)
}
