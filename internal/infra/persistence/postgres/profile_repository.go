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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile for an identity.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("invalid tenant reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// FindByUserID retrieves the profile belonging to an identity.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByPhoneNumber retrieves the most recently created profile for a phone number.
func (repo *profileRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		Order("created_at DESC").
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by phone number")
	}

	return toProfileDomain(&profileM), nil
}

// DeleteByUserID removes the profile belonging to an identity.
// Used to roll back partial provisioning.
func (repo *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		UserID:      data.UserID,
		TenantID:    data.TenantID,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		CreatedAt:   data.CreatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		TenantID:    data.TenantID,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		CreatedAt:   data.CreatedAt,
	}
}
