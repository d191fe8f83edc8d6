package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found for the user.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines user-scoped operations for the notification inbox.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
