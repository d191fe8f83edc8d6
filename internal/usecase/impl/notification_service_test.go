package impl

import (
	"context"
	"testing"

	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	mockRepo "carttrace/internal/mocks/repository"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for inbox tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
	}
}

func TestNotificationService_CreateNotification_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, tenantID, notification.TenantID)
			assert.Equal(t, userID, notification.UserID)
			assert.False(t, notification.Read)
		}).
		Return(nil)

	notification, err := fx.service.CreateNotification(ctx, &usecase.CreateNotificationInput{
		TenantID: tenantID,
		UserID:   userID,
		Title:    "Invoice paid",
		Message:  "INV-0042 was settled in full",
		Type:     "payment",
	})

	require.NoError(t, err)
	assert.Equal(t, "Invoice paid", notification.Title)
	assert.Equal(t, "payment", notification.Type)
}

func TestNotificationService_CreateNotification_RequiresTitleAndMessage(t *testing.T) {
	fx := createTestNotificationService(t)

	notification, err := fx.service.CreateNotification(context.Background(), &usecase.CreateNotificationInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Title:    "   ",
		Message:  "body without a title",
	})

	assert.Nil(t, notification)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNotificationService_MarkNotificationRead_ReturnsUpdatedRow(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, userID, notificationID).
		Return(nil)
	fx.notificationRepo.EXPECT().
		FindByID(ctx, userID, notificationID).
		Return(&entity.Notification{ID: notificationID, UserID: userID, Title: "Invoice paid", Read: true}, nil)

	notification, err := fx.service.MarkNotificationRead(ctx, userID, notificationID)

	require.NoError(t, err)
	assert.True(t, notification.Read)
}

func TestNotificationService_MarkNotificationRead_MapsNotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, userID, notificationID).
		Return(repository.ErrNotificationNotFound)

	notification, err := fx.service.MarkNotificationRead(ctx, userID, notificationID)

	assert.Nil(t, notification)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestNotificationService_CountUnread_PassesThrough(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CountUnreadByUser(ctx, userID).
		Return(int64(3), nil)

	count, err := fx.service.CountUnread(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkAllNotificationsRead_EmptyInboxIsFine(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		MarkAllRead(ctx, userID).
		Return(nil)

	require.NoError(t, fx.service.MarkAllNotificationsRead(ctx, userID))
}
