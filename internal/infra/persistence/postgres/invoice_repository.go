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

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create persists a new invoice under its tenant.
func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)

	if err := repo.db.WithContext(ctx).Create(invoiceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("invoice number already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid client or product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invoice")
	}

	invoice.ID = invoiceM.ID
	invoice.CreatedAt = invoiceM.CreatedAt
	invoice.UpdatedAt = invoiceM.UpdatedAt

	return nil
}

// Update saves changed invoice fields within the tenant.
func (repo *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ? AND tenant_id = ?", invoice.ID, invoice.TenantID).
		Updates(map[string]any{
			"amount":   invoice.Amount,
			"status":   string(invoice.Status),
			"due_date": invoice.DueDate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invoice")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// Delete removes an invoice within the tenant.
func (repo *invoiceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.InvoiceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete invoice")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// FindByID retrieves an invoice by its ID within the tenant.
func (repo *invoiceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// ListByTenant retrieves all invoices of a tenant, newest first.
func (repo *invoiceRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Invoice, error) {
	var invoiceModels []*model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices by tenant")
	}

	return toInvoiceDomainSlice(invoiceModels), nil
}

// ListByClient retrieves all invoices issued to one client, newest first.
func (repo *invoiceRepository) ListByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Invoice, error) {
	var invoiceModels []*model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices by client")
	}

	return toInvoiceDomainSlice(invoiceModels), nil
}

// FindLatestByTenant returns the most recently created invoice for the tenant.
func (repo *invoiceRepository) FindLatestByTenant(ctx context.Context, tenantID uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest invoice")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// --- Mapper Functions ---

// toInvoiceDomain converts a GORM InvoiceModel to a domain Invoice entity.
func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	return &entity.Invoice{
		ID:            data.ID,
		TenantID:      data.TenantID,
		ClientID:      data.ClientID,
		ProductID:     data.ProductID,
		InvoiceNumber: data.InvoiceNumber,
		Amount:        data.Amount,
		Status:        entity.InvoiceStatus(data.Status),
		DueDate:       data.DueDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toInvoiceDomainSlice(models []*model.InvoiceModel) []*entity.Invoice {
	invoices := make([]*entity.Invoice, 0, len(models))
	for _, invoiceM := range models {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices
}

// fromInvoiceDomain converts a domain Invoice entity to a GORM InvoiceModel.
func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	if data == nil {
		return nil
	}

	return &model.InvoiceModel{
		ID:            data.ID,
		TenantID:      data.TenantID,
		ClientID:      data.ClientID,
		ProductID:     data.ProductID,
		InvoiceNumber: data.InvoiceNumber,
		Amount:        data.Amount,
		Status:        string(data.Status),
		DueDate:       data.DueDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
