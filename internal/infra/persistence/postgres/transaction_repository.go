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

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new ledger entry under its tenant.
func (repo *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid client reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt

	return nil
}

// Update saves changed ledger entry fields within the tenant.
func (repo *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND tenant_id = ?", txn.ID, txn.TenantID).
		Updates(map[string]any{
			"type":   string(txn.Type),
			"amount": txn.Amount,
			"note":   txn.Note,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a ledger entry within the tenant.
func (repo *transactionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.TransactionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete transaction")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// FindByID retrieves a ledger entry by its ID within the tenant.
func (repo *transactionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Transaction, error) {
	var txnM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&txnM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by ID")
	}

	return toTransactionDomain(&txnM), nil
}

// ListByTenant retrieves all ledger entries of a tenant, newest first.
func (repo *transactionRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Transaction, error) {
	var txnModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&txnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by tenant")
	}

	return toTransactionDomainSlice(txnModels), nil
}

// ListByClient retrieves all ledger entries against one client, newest first.
func (repo *transactionRepository) ListByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Transaction, error) {
	var txnModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("created_at DESC").
		Find(&txnModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by client")
	}

	return toTransactionDomainSlice(txnModels), nil
}

// --- Mapper Functions ---

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		TenantID:  data.TenantID,
		ClientID:  data.ClientID,
		Type:      entity.TransactionType(data.Type),
		Amount:    data.Amount,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}

func toTransactionDomainSlice(models []*model.TransactionModel) []*entity.Transaction {
	txns := make([]*entity.Transaction, 0, len(models))
	for _, txnM := range models {
		txns = append(txns, toTransactionDomain(txnM))
	}

	return txns
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		ClientID:  data.ClientID,
		Type:      string(data.Type),
		Amount:    data.Amount,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}
