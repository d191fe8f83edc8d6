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

// clientService implements the ClientUsecase interface.
type clientService struct {
	clientRepo      repository.ClientRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// ClientServiceParams holds dependencies for clientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	ClientRepo      repository.ClientRepository
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		clientRepo:      params.ClientRepo,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClient adds a client to the tenant's book with a zero opening balance.
func (srv *clientService) CreateClient(ctx context.Context, input *usecase.CreateClientInput) (*entity.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("client name is required")
	}
	if input.PhoneNumber != "" && !entity.ValidPhoneNumber(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber.WrapMessage("client creation failed")
	}

	newClient := &entity.Client{
		TenantID:    input.TenantID,
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if err := srv.clientRepo.Create(ctx, newClient); err != nil {
		srv.log(ctx).Error("Failed to create client", slog.Any("tenantID", input.TenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create client")
	}

	return newClient, nil
}

// UpdateClient modifies a client's contact details. The running balance is
// owned by the ledger and is not writable here.
func (srv *clientService) UpdateClient(ctx context.Context, input *usecase.UpdateClientInput) (*entity.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("client name is required")
	}
	if input.PhoneNumber != "" && !entity.ValidPhoneNumber(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber.WrapMessage("client update failed")
	}

	client, err := srv.clientRepo.FindByID(ctx, input.TenantID, input.ClientID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to load client for update")
	}

	client.Name = input.Name
	client.Email = input.Email
	client.PhoneNumber = input.PhoneNumber

	if err := srv.clientRepo.Update(ctx, client); err != nil {
		return nil, srv.mapNotFound(err, "failed to update client")
	}

	return client, nil
}

// DeleteClient removes a client from the tenant's book.
func (srv *clientService) DeleteClient(ctx context.Context, tenantID, clientID uuid.UUID) error {
	if err := srv.clientRepo.Delete(ctx, tenantID, clientID); err != nil {
		return srv.mapNotFound(err, "failed to delete client")
	}

	return nil
}

// GetClient retrieves a single client within the tenant.
func (srv *clientService) GetClient(ctx context.Context, tenantID, clientID uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.FindByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to find client")
	}

	return client, nil
}

// ListClients retrieves all clients of a tenant.
func (srv *clientService) ListClients(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error) {
	clients, err := srv.clientRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// GetClientSummary returns the client together with its aggregated ledger position.
func (srv *clientService) GetClientSummary(ctx context.Context, tenantID, clientID uuid.UUID) (*usecase.ClientSummaryOutput, error) {
	client, err := srv.clientRepo.FindByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to find client for summary")
	}

	txns, err := srv.transactionRepo.ListByClient(ctx, tenantID, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger entries for summary")
	}

	return &usecase.ClientSummaryOutput{
		Client:  client,
		Summary: summarizeTransactions(txns),
	}, nil
}

func (srv *clientService) mapNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrClientNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("client not found")
	}

	return errors.Wrap(err, msg)
}

// summarizeTransactions folds ledger entries into totals.
// The balance is total sales minus total payments.
func summarizeTransactions(txns []*entity.Transaction) *entity.TransactionSummary {
	summary := &entity.TransactionSummary{TransactionCount: len(txns)}
	for _, txn := range txns {
		switch txn.Type {
		case entity.TransactionTypeSale:
			summary.TotalSales += txn.Amount
		case entity.TransactionTypePayment:
			summary.TotalPayments += txn.Amount
		}
	}
	summary.Balance = summary.TotalSales - summary.TotalPayments

	return summary
}
