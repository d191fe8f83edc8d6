package postgres

import (
	"context"

	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification for a user.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByUser retrieves all of a user's notifications, newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnreadByUser counts the user's unread notifications.
func (repo *notificationRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one of the user's notifications as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark notifications as read")
	}

	return nil
}

// FindByID retrieves one of the user's notifications.
func (repo *notificationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// Delete removes one of the user's notifications.
func (repo *notificationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		TenantID:  data.TenantID,
		UserID:    data.UserID,
		Title:     data.Title,
		Message:   data.Message,
		Type:      data.Type,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		UserID:    data.UserID,
		Title:     data.Title,
		Message:   data.Message,
		Type:      data.Type,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}
