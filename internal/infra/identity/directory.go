// Package identity implements the identity directory on top of PostgreSQL.
// It owns the identities table and deliberately stays outside the relational
// transaction manager, mirroring an external authentication store.
package identity

import (
	"context"
	"strings"

	"carttrace/internal/domain/entity"
	"carttrace/internal/domain/service"
	"carttrace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormDirectory implements the service.IdentityDirectory interface.
type gormDirectory struct {
	db     *gorm.DB
	hasher service.PasswordHasher
}

// NewDirectory is the constructor for gormDirectory.
func NewDirectory(db *gorm.DB, hasher service.PasswordHasher) service.IdentityDirectory {
	return &gormDirectory{
		db:     db,
		hasher: hasher,
	}
}

// CreateUser registers a new identity with a synthesized login email.
// A phone number carries at most one identity overall, so a number already
// provisioned as an owner cannot be provisioned again as a client and vice
// versa.
func (d *gormDirectory) CreateUser(ctx context.Context, input service.NewIdentity) (*entity.Identity, error) {
	var existing model.IdentityModel
	err := d.db.WithContext(ctx).
		Where("phone_number = ?", input.PhoneNumber).
		First(&existing).Error
	if err == nil {
		return nil, service.ErrIdentityExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to check existing identity")
	}

	hash, err := d.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	identityM := &model.IdentityModel{
		Email:        entity.LoginEmail(input.PhoneNumber, input.AccountType),
		PhoneNumber:  input.PhoneNumber,
		AccountType:  input.AccountType.String(),
		PasswordHash: hash,
	}

	if err := d.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// The unique indexes are the backstop against a concurrent create.
		if isDuplicateKey(err) {
			return nil, service.ErrIdentityExists
		}

		return nil, errors.Wrap(err, "failed to create identity")
	}

	return toIdentityDomain(identityM), nil
}

// DeleteUser removes an identity. Used to roll back partial provisioning.
func (d *gormDirectory) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.IdentityModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete identity")
	}

	if result.RowsAffected == 0 {
		return service.ErrIdentityNotFound
	}

	return nil
}

// UpdatePassword replaces the identity's secret with a hash of newPassword.
func (d *gormDirectory) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	hash, err := d.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	result := d.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("password_hash", hash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}

	if result.RowsAffected == 0 {
		return service.ErrIdentityNotFound
	}

	return nil
}

// FindByID retrieves an identity by its ID.
func (d *gormDirectory) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := d.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by ID")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByEmail retrieves an identity by its synthesized login email.
func (d *gormDirectory) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := d.db.WithContext(ctx).
		Where("email = ?", email).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByPhone retrieves the identity for a phone number and account type.
func (d *gormDirectory) FindByPhone(ctx context.Context, phone string, accountType entity.AccountType) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := d.db.WithContext(ctx).
		Where("phone_number = ? AND account_type = ?", phone, accountType.String()).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by phone")
	}

	return toIdentityDomain(&identityM), nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "sqlstate 23505")
}

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	return &entity.Identity{
		ID:           data.ID,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		AccountType:  entity.AccountType(data.AccountType),
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
