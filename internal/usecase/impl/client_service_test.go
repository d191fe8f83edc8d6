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

// clientServiceFixtures holds all test dependencies for client service tests.
type clientServiceFixtures struct {
	service         usecase.ClientUsecase
	clientRepo      *mockRepo.MockClientRepository
	transactionRepo *mockRepo.MockTransactionRepository
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	clientRepo := mockRepo.NewMockClientRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)

	svc := NewClientService(ClientServiceParams{
		ClientRepo:      clientRepo,
		TransactionRepo: transactionRepo,
		Logger:          newDiscardLogger(),
	})

	return clientServiceFixtures{
		service:         svc,
		clientRepo:      clientRepo,
		transactionRepo: transactionRepo,
	}
}

func TestClientService_CreateClient_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := &usecase.CreateClientInput{
		TenantID:    uuid.New(),
		Name:        "Mama Njeri",
		Email:       "njeri@example.com",
		PhoneNumber: "0722000111",
	}

	fx.clientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Run(func(ctx context.Context, client *entity.Client) {
			assert.Equal(t, input.TenantID, client.TenantID)
			assert.Zero(t, client.TotalBalance)
			client.ID = uuid.New()
		}).
		Return(nil)

	client, err := fx.service.CreateClient(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Name, client.Name)
}

func TestClientService_CreateClient_RequiresName(t *testing.T) {
	fx := createTestClientService(t)

	client, err := fx.service.CreateClient(context.Background(), &usecase.CreateClientInput{
		TenantID: uuid.New(),
		Name:     "   ",
	})

	assert.Nil(t, client)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestClientService_CreateClient_RejectsBadPhone(t *testing.T) {
	fx := createTestClientService(t)

	client, err := fx.service.CreateClient(context.Background(), &usecase.CreateClientInput{
		TenantID:    uuid.New(),
		Name:        "Mama Njeri",
		PhoneNumber: "0722-000-111",
	})

	assert.Nil(t, client)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPhoneNumber))
}

func TestClientService_UpdateClient_ScopedToTenant(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	tenantID, clientID := uuid.New(), uuid.New()

	// A client from another tenant behaves exactly like a missing client.
	fx.clientRepo.EXPECT().
		FindByID(ctx, tenantID, clientID).
		Return(nil, repository.ErrClientNotFound)

	client, err := fx.service.UpdateClient(ctx, &usecase.UpdateClientInput{
		TenantID: tenantID,
		ClientID: clientID,
		Name:     "Mama Njeri",
	})

	assert.Nil(t, client)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestClientService_GetClientSummary(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	tenantID, clientID := uuid.New(), uuid.New()
	client := &entity.Client{ID: clientID, TenantID: tenantID, Name: "Mama Njeri", TotalBalance: 850}

	fx.clientRepo.EXPECT().
		FindByID(ctx, tenantID, clientID).
		Return(client, nil)
	fx.transactionRepo.EXPECT().
		ListByClient(ctx, tenantID, clientID).
		Return([]*entity.Transaction{
			{Type: entity.TransactionTypeSale, Amount: 1250},
			{Type: entity.TransactionTypePayment, Amount: 400},
		}, nil)

	output, err := fx.service.GetClientSummary(ctx, tenantID, clientID)

	require.NoError(t, err)
	assert.Equal(t, client, output.Client)
	assert.InDelta(t, 850, output.Summary.Balance, 0.001)
	assert.Equal(t, 2, output.Summary.TransactionCount)
}
