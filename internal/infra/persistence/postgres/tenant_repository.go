// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// Create persists a new tenant. A phone-number collision maps to
// repository.ErrTenantExists so callers can fall back to the existing row.
// The insert runs in its own savepoint; the fallback lookup needs a healthy
// session after the constraint failure.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(tenantM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTenantExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrTenantCreationFailed.WrapMessage("missing required tenant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// FindByID retrieves a tenant by its unique ID.
func (repo *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return toTenantDomain(&tenantM), nil
}

// FindByPhoneNumber retrieves a tenant by its business phone number.
func (repo *tenantRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by phone number")
	}

	return toTenantDomain(&tenantM), nil
}

// --- Mapper Functions ---

// toTenantDomain converts a GORM TenantModel to a domain Tenant entity.
func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	return &entity.Tenant{
		ID:           data.ID,
		BusinessName: data.BusinessName,
		PhoneNumber:  data.PhoneNumber,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTenantDomain converts a domain Tenant entity to a GORM TenantModel.
func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	return &model.TenantModel{
		ID:           data.ID,
		BusinessName: data.BusinessName,
		PhoneNumber:  data.PhoneNumber,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
