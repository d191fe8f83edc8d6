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

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// Create persists a new role assignment for an identity. The insert runs in
// its own savepoint: a duplicate assignment is treated as settled, and the
// enclosing transaction must stay usable after the failed insert.
func (repo *roleRepository) Create(ctx context.Context, assignment *entity.RoleAssignment) error {
	assignmentM := fromRoleAssignmentDomain(assignment)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(assignmentM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			// The role is already assigned; treat the write as settled.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoleAssignmentFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	// Update the entity with generated values
	assignment.ID = assignmentM.ID
	assignment.CreatedAt = assignmentM.CreatedAt

	return nil
}

// FindByUserID retrieves all roles assigned to an identity.
func (repo *roleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error) {
	var assignmentModels []*model.RoleAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles by user")
	}

	roles := make(entity.Roles, 0, len(assignmentModels))
	for _, assignmentM := range assignmentModels {
		roles = append(roles, entity.Role(assignmentM.Role))
	}

	return roles, nil
}

// DeleteByUserID removes all role assignments for an identity.
// Used to roll back partial provisioning.
func (repo *roleRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RoleAssignmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete roles")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// fromRoleAssignmentDomain converts a domain RoleAssignment entity to a GORM RoleAssignmentModel.
func fromRoleAssignmentDomain(data *entity.RoleAssignment) *model.RoleAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.RoleAssignmentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
	}
}
