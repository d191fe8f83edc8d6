package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when no role assignment exists for a user.
var ErrRoleNotFound = errors.New("role assignment not found")

// RoleRepository defines the standard operations for role-assignment persistence.
type RoleRepository interface {
	// Create persists a new role assignment.
	Create(ctx context.Context, assignment *entity.RoleAssignment) error

	// FindByUserID retrieves all roles assigned to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Roles, error)

	// DeleteByUserID removes a user's role assignments. Used only as a
	// compensating action when a later provisioning step fails.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
