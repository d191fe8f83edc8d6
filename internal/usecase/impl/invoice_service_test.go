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

// invoiceServiceFixtures holds all test dependencies for invoice service tests.
type invoiceServiceFixtures struct {
	service     usecase.InvoiceUsecase
	txManager   *mockRepo.MockTransactionManager
	invoiceRepo *mockRepo.MockInvoiceRepository
}

func createTestInvoiceService(t *testing.T) invoiceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	invoiceRepo := mockRepo.NewMockInvoiceRepository(t)

	svc := NewInvoiceService(InvoiceServiceParams{
		TxManager:   txManager,
		InvoiceRepo: invoiceRepo,
		Logger:      newDiscardLogger(),
	})

	return invoiceServiceFixtures{
		service:     svc,
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
	}
}

// expectInvoiceCreate wires the transactional collaborators for one create
// call, returning the latest invoice the repository should report.
func expectInvoiceCreate(t *testing.T, fx invoiceServiceFixtures, input *usecase.CreateInvoiceInput, latest *entity.Invoice, latestErr error, wantNumber string) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockClientRepo.EXPECT().
				FindByID(ctx, input.TenantID, input.ClientID).
				Return(&entity.Client{ID: input.ClientID, TenantID: input.TenantID}, nil)
			mockInvoiceRepo.EXPECT().
				FindLatestByTenant(ctx, input.TenantID).
				Return(latest, latestErr)
			mockInvoiceRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Invoice")).
				Run(func(ctx context.Context, invoice *entity.Invoice) {
					assert.Equal(t, wantNumber, invoice.InvoiceNumber)
					assert.Equal(t, entity.InvoiceStatusDraft, invoice.Status)
					invoice.ID = uuid.New()
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)
}

func TestInvoiceService_CreateInvoice_FirstNumber(t *testing.T) {
	fx := createTestInvoiceService(t)

	input := &usecase.CreateInvoiceInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Amount:   1500,
	}
	expectInvoiceCreate(t, fx, input, nil, repository.ErrInvoiceNotFound, "INV-0001")

	invoice, err := fx.service.CreateInvoice(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "INV-0001", invoice.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_IncrementsLatestNumber(t *testing.T) {
	fx := createTestInvoiceService(t)

	input := &usecase.CreateInvoiceInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Amount:   250,
	}
	latest := &entity.Invoice{InvoiceNumber: "INV-0040"}
	expectInvoiceCreate(t, fx, input, latest, nil, "INV-0041")

	invoice, err := fx.service.CreateInvoice(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "INV-0041", invoice.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_GrowsPastFourDigits(t *testing.T) {
	fx := createTestInvoiceService(t)

	input := &usecase.CreateInvoiceInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Amount:   90,
	}
	latest := &entity.Invoice{InvoiceNumber: "INV-9999"}
	expectInvoiceCreate(t, fx, input, latest, nil, "INV-10000")

	invoice, err := fx.service.CreateInvoice(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "INV-10000", invoice.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_RestartsOnUnparseableNumber(t *testing.T) {
	fx := createTestInvoiceService(t)

	input := &usecase.CreateInvoiceInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Amount:   60,
	}
	// Legacy or hand-edited numbers restart the sequence instead of failing.
	latest := &entity.Invoice{InvoiceNumber: "RECEIPT-77"}
	expectInvoiceCreate(t, fx, input, latest, nil, "INV-0001")

	invoice, err := fx.service.CreateInvoice(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "INV-0001", invoice.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_ClientMustExist(t *testing.T) {
	fx := createTestInvoiceService(t)

	input := &usecase.CreateInvoiceInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Amount:   100,
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)
			mockInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)

			mockFactory.EXPECT().InvoiceRepo().Return(mockInvoiceRepo)
			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)

			mockClientRepo.EXPECT().
				FindByID(ctx, input.TenantID, input.ClientID).
				Return(nil, repository.ErrClientNotFound)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "client not found"))

	invoice, err := fx.service.CreateInvoice(context.Background(), input)

	assert.Nil(t, invoice)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestInvoiceService_CreateInvoice_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestInvoiceService(t)

	invoice, err := fx.service.CreateInvoice(context.Background(), &usecase.CreateInvoiceInput{
		TenantID: uuid.New(),
		ClientID: uuid.New(),
		Amount:   0,
	})

	assert.Nil(t, invoice)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInvoiceService_UpdateInvoice_RejectsUnknownStatus(t *testing.T) {
	fx := createTestInvoiceService(t)

	invoice, err := fx.service.UpdateInvoice(context.Background(), &usecase.UpdateInvoiceInput{
		TenantID:  uuid.New(),
		InvoiceID: uuid.New(),
		Amount:    100,
		Status:    entity.InvoiceStatus("cancelled"),
	})

	assert.Nil(t, invoice)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInvoiceService_NextInvoiceNumber_PreviewsWithoutCreating(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	fx.invoiceRepo.EXPECT().
		FindLatestByTenant(ctx, tenantID).
		Return(&entity.Invoice{InvoiceNumber: "INV-0007"}, nil)

	number, err := fx.service.NextInvoiceNumber(ctx, tenantID)

	require.NoError(t, err)
	assert.Equal(t, "INV-0008", number)
}

func TestInvoiceService_GetInvoice_MapsNotFound(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	tenantID, invoiceID := uuid.New(), uuid.New()

	fx.invoiceRepo.EXPECT().
		FindByID(ctx, tenantID, invoiceID).
		Return(nil, repository.ErrInvoiceNotFound)

	invoice, err := fx.service.GetInvoice(ctx, tenantID, invoiceID)

	assert.Nil(t, invoice)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
