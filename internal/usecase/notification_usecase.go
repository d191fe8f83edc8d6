package usecase

import (
	"context"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput defines the data required to post a notification
// to a user's inbox.
type CreateNotificationInput struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Title    string
	Message  string
	Type     string
}

// NotificationUsecase defines the interface for the per-user notification inbox.
type NotificationUsecase interface {
	CreateNotification(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkNotificationRead flags one notification as read and returns it.
	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error)

	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
