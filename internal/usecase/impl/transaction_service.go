package impl

import (
	"context"
	"log/slog"

	deliverycontext "carttrace/internal/delivery/context"
	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager       repository.TransactionManager
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for transactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		txManager:       params.TxManager,
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransaction records a ledger entry and moves the client's running
// balance in the same database transaction: sales raise what the client
// owes, payments lower it.
func (srv *transactionService) CreateTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown transaction type")
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("transaction amount must be positive")
	}

	var created *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByID(ctx, input.TenantID, input.ClientID)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("client not found")
			}

			return errors.Wrap(err, "failed to load client for transaction")
		}

		newTxn := &entity.Transaction{
			TenantID: input.TenantID,
			ClientID: input.ClientID,
			Type:     input.Type,
			Amount:   input.Amount,
			Note:     input.Note,
		}
		if err := repoFactory.TransactionRepo().Create(ctx, newTxn); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		switch input.Type {
		case entity.TransactionTypeSale:
			client.TotalBalance += input.Amount
		case entity.TransactionTypePayment:
			client.TotalBalance -= input.Amount
		}
		if err := clientRepo.Update(ctx, client); err != nil {
			return errors.Wrap(err, "failed to update client balance")
		}
		created = newTxn

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute transaction creation", slog.Any("tenantID", input.TenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute transaction creation")
	}

	return created, nil
}

// UpdateTransaction rewrites a ledger entry. The client's balance sheds the
// old entry's effect and takes on the new one in the same database
// transaction.
func (srv *transactionService) UpdateTransaction(ctx context.Context, input *usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown transaction type")
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("transaction amount must be positive")
	}

	var updated *entity.Transaction
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()
		clientRepo := repoFactory.ClientRepo()

		txn, err := transactionRepo.FindByID(ctx, input.TenantID, input.TransactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("transaction not found")
			}

			return errors.Wrap(err, "failed to load transaction for update")
		}

		client, err := clientRepo.FindByID(ctx, input.TenantID, txn.ClientID)
		if err != nil {
			return errors.Wrap(err, "failed to load client for rebalance")
		}

		client.TotalBalance -= balanceEffect(txn.Type, txn.Amount)
		client.TotalBalance += balanceEffect(input.Type, input.Amount)

		txn.Type = input.Type
		txn.Amount = input.Amount
		txn.Note = input.Note

		if err := transactionRepo.Update(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to update transaction")
		}
		if err := clientRepo.Update(ctx, client); err != nil {
			return errors.Wrap(err, "failed to rebalance client")
		}
		updated = txn

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute transaction update", slog.Any("transactionID", input.TransactionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute transaction update")
	}

	return updated, nil
}

// balanceEffect is the signed amount a ledger entry contributes to what the
// client owes.
func balanceEffect(txnType entity.TransactionType, amount float64) float64 {
	if txnType == entity.TransactionTypePayment {
		return -amount
	}

	return amount
}

// DeleteTransaction removes a ledger entry and reverses its effect on the
// client's running balance, atomically.
func (srv *transactionService) DeleteTransaction(ctx context.Context, tenantID, transactionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()
		clientRepo := repoFactory.ClientRepo()

		txn, err := transactionRepo.FindByID(ctx, tenantID, transactionID)
		if err != nil {
			if errors.Is(err, repository.ErrTransactionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("transaction not found")
			}

			return errors.Wrap(err, "failed to load transaction for deletion")
		}

		if err := transactionRepo.Delete(ctx, tenantID, transactionID); err != nil {
			return errors.Wrap(err, "failed to delete transaction")
		}

		client, err := clientRepo.FindByID(ctx, tenantID, txn.ClientID)
		if err != nil {
			return errors.Wrap(err, "failed to load client for balance reversal")
		}

		switch txn.Type {
		case entity.TransactionTypeSale:
			client.TotalBalance -= txn.Amount
		case entity.TransactionTypePayment:
			client.TotalBalance += txn.Amount
		}
		if err := clientRepo.Update(ctx, client); err != nil {
			return errors.Wrap(err, "failed to reverse client balance")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute transaction deletion", slog.Any("transactionID", transactionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute transaction deletion")
	}

	return nil
}

// GetTransaction retrieves a single ledger entry within the tenant.
func (srv *transactionService) GetTransaction(ctx context.Context, tenantID, transactionID uuid.UUID) (*entity.Transaction, error) {
	txn, err := srv.transactionRepo.FindByID(ctx, tenantID, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("transaction not found")
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return txn, nil
}

// ListTransactions retrieves all ledger entries of a tenant.
func (srv *transactionService) ListTransactions(ctx context.Context, tenantID uuid.UUID) ([]*entity.Transaction, error) {
	txns, err := srv.transactionRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txns, nil
}

// ListTransactionsByClient retrieves all ledger entries against one client.
func (srv *transactionService) ListTransactionsByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Transaction, error) {
	txns, err := srv.transactionRepo.ListByClient(ctx, tenantID, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by client")
	}

	return txns, nil
}

// SummarizeClient aggregates one client's ledger entries.
func (srv *transactionService) SummarizeClient(ctx context.Context, tenantID, clientID uuid.UUID) (*entity.TransactionSummary, error) {
	txns, err := srv.transactionRepo.ListByClient(ctx, tenantID, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ledger entries for summary")
	}

	return summarizeTransactions(txns), nil
}
