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

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create persists a new client under its tenant.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tenant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// Update saves changed client fields. Tenant scoping keeps one tenant from
// touching another tenant's rows.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ? AND tenant_id = ?", client.ID, client.TenantID).
		Updates(map[string]any{
			"name":          client.Name,
			"email":         client.Email,
			"phone_number":  client.PhoneNumber,
			"total_balance": client.TotalBalance,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// Delete removes a client within the tenant.
func (repo *clientRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.ClientModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}

	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// FindByID retrieves a client by its ID within the tenant.
func (repo *clientRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// ListByTenant retrieves all clients of a tenant, newest first.
func (repo *clientRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Client, error) {
	var clientModels []*model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&clientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clients by tenant")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// --- Mapper Functions ---

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:           data.ID,
		TenantID:     data.TenantID,
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		TotalBalance: data.TotalBalance,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromClientDomain converts a domain Client entity to a GORM ClientModel.
func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:           data.ID,
		TenantID:     data.TenantID,
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		TotalBalance: data.TotalBalance,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
