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

// transactionServiceFixtures holds all test dependencies for ledger tests.
type transactionServiceFixtures struct {
	service         usecase.TransactionUsecase
	txManager       *mockRepo.MockTransactionManager
	transactionRepo *mockRepo.MockTransactionRepository
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)

	svc := NewTransactionService(TransactionServiceParams{
		TxManager:       txManager,
		TransactionRepo: transactionRepo,
		Logger:          newDiscardLogger(),
	})

	return transactionServiceFixtures{
		service:         svc,
		txManager:       txManager,
		transactionRepo: transactionRepo,
	}
}

func TestTransactionService_CreateTransaction_SaleRaisesBalance(t *testing.T) {
	fx := createTestTransactionService(t)

	input := &usecase.CreateTransactionInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Type:     entity.TransactionTypeSale,
		Amount:   500,
		Note:     "2x unga",
	}
	client := &entity.Client{ID: input.ClientID, TenantID: input.TenantID, TotalBalance: 1000}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)

			mockClientRepo.EXPECT().
				FindByID(ctx, input.TenantID, input.ClientID).
				Return(client, nil)
			mockTxnRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Transaction")).
				Return(nil)
			mockClientRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, updated *entity.Client) {
					assert.InDelta(t, 1500, updated.TotalBalance, 0.001)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	txn, err := fx.service.CreateTransaction(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeSale, txn.Type)
}

func TestTransactionService_CreateTransaction_PaymentLowersBalance(t *testing.T) {
	fx := createTestTransactionService(t)

	input := &usecase.CreateTransactionInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Type:     entity.TransactionTypePayment,
		Amount:   300,
	}
	client := &entity.Client{ID: input.ClientID, TenantID: input.TenantID, TotalBalance: 1000}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)

			mockClientRepo.EXPECT().
				FindByID(ctx, input.TenantID, input.ClientID).
				Return(client, nil)
			mockTxnRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Transaction")).
				Return(nil)
			mockClientRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, updated *entity.Client) {
					assert.InDelta(t, 700, updated.TotalBalance, 0.001)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	_, err := fx.service.CreateTransaction(context.Background(), input)

	require.NoError(t, err)
}

func TestTransactionService_CreateTransaction_RejectsUnknownType(t *testing.T) {
	fx := createTestTransactionService(t)

	txn, err := fx.service.CreateTransaction(context.Background(), &usecase.CreateTransactionInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Type:     entity.TransactionType("refund"),
		Amount:   100,
	})

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTransactionService_UpdateTransaction_RebalancesClient(t *testing.T) {
	fx := createTestTransactionService(t)

	tenantID := uuid.New()
	clientID := uuid.New()
	transactionID := uuid.New()
	existing := &entity.Transaction{
		ID:       transactionID,
		TenantID: tenantID,
		ClientID: clientID,
		Type:     entity.TransactionTypeSale,
		Amount:   500,
	}
	client := &entity.Client{ID: clientID, TenantID: tenantID, TotalBalance: 1500}
	input := &usecase.UpdateTransactionInput{
		TenantID:      tenantID,
		TransactionID: transactionID,
		Type:          entity.TransactionTypePayment,
		Amount:        200,
		Note:          "corrected entry",
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockTxnRepo.EXPECT().
				FindByID(ctx, tenantID, transactionID).
				Return(existing, nil)
			mockClientRepo.EXPECT().
				FindByID(ctx, tenantID, clientID).
				Return(client, nil)
			mockTxnRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Transaction")).
				Run(func(ctx context.Context, updated *entity.Transaction) {
					assert.Equal(t, entity.TransactionTypePayment, updated.Type)
					assert.InDelta(t, 200, updated.Amount, 0.001)
				}).
				Return(nil)
			mockClientRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, updated *entity.Client) {
					// The sale's +500 comes off, the payment's -200 goes on.
					assert.InDelta(t, 800, updated.TotalBalance, 0.001)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	txn, err := fx.service.UpdateTransaction(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionTypePayment, txn.Type)
}

func TestTransactionService_UpdateTransaction_RejectsUnknownType(t *testing.T) {
	fx := createTestTransactionService(t)

	txn, err := fx.service.UpdateTransaction(context.Background(), &usecase.UpdateTransactionInput{
		TenantID:      uuid.New(),
		TransactionID: uuid.New(),
		Type:          entity.TransactionType("refund"),
		Amount:        100,
	})

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTransactionService_GetTransaction_MapsNotFound(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID, transactionID := uuid.New(), uuid.New()

	fx.transactionRepo.EXPECT().
		FindByID(ctx, tenantID, transactionID).
		Return(nil, repository.ErrTransactionNotFound)

	txn, err := fx.service.GetTransaction(ctx, tenantID, transactionID)

	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestTransactionService_DeleteTransaction_ReversesSale(t *testing.T) {
	fx := createTestTransactionService(t)

	tenantID := uuid.New()
	clientID := uuid.New()
	transactionID := uuid.New()
	existing := &entity.Transaction{
		ID:       transactionID,
		TenantID: tenantID,
		ClientID: clientID,
		Type:     entity.TransactionTypeSale,
		Amount:   500,
	}
	client := &entity.Client{ID: clientID, TenantID: tenantID, TotalBalance: 1500}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockTxnRepo := mockRepo.NewMockTransactionRepository(t)

			mockFactory.EXPECT().TransactionRepo().Return(mockTxnRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockTxnRepo.EXPECT().
				FindByID(ctx, tenantID, transactionID).
				Return(existing, nil)
			mockTxnRepo.EXPECT().
				Delete(ctx, tenantID, transactionID).
				Return(nil)
			mockClientRepo.EXPECT().
				FindByID(ctx, tenantID, clientID).
				Return(client, nil)
			mockClientRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Client")).
				Run(func(ctx context.Context, updated *entity.Client) {
					// Deleting a sale takes its amount back off the balance.
					assert.InDelta(t, 1000, updated.TotalBalance, 0.001)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := fx.service.DeleteTransaction(context.Background(), tenantID, transactionID)

	require.NoError(t, err)
}

func TestTransactionService_SummarizeClient(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID, clientID := uuid.New(), uuid.New()
	txns := []*entity.Transaction{
		{Type: entity.TransactionTypeSale, Amount: 1000},
		{Type: entity.TransactionTypeSale, Amount: 250},
		{Type: entity.TransactionTypePayment, Amount: 400},
	}

	fx.transactionRepo.EXPECT().
		ListByClient(ctx, tenantID, clientID).
		Return(txns, nil)

	summary, err := fx.service.SummarizeClient(ctx, tenantID, clientID)

	require.NoError(t, err)
	assert.InDelta(t, 1250, summary.TotalSales, 0.001)
	assert.InDelta(t, 400, summary.TotalPayments, 0.001)
	assert.InDelta(t, 850, summary.Balance, 0.001)
	assert.Equal(t, 3, summary.TransactionCount)
}

func TestTransactionService_SummarizeClient_EmptyLedger(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	tenantID, clientID := uuid.New(), uuid.New()

	fx.transactionRepo.EXPECT().
		ListByClient(ctx, tenantID, clientID).
		Return([]*entity.Transaction{}, nil)

	summary, err := fx.service.SummarizeClient(ctx, tenantID, clientID)

	require.NoError(t, err)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.Balance)
	assert.Zero(t, summary.TransactionCount)
}
