package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when an insert collides with the unique
	// user-id constraint (the user is already provisioned).
	ErrProfileExists = errors.New("profile already exists for this user")
)

// ProfileRepository defines the standard operations for profile persistence.
type ProfileRepository interface {
	// FindByUserID retrieves the profile linked to an identity.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByPhoneNumber retrieves a profile by phone number. Used by the
	// reset and login-email resolution flows to map a phone to an identity.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Profile, error)

	// Create persists a new profile. Returns ErrProfileExists on a
	// user-id uniqueness collision.
	Create(ctx context.Context, profile *entity.Profile) error

	// DeleteByUserID removes a profile. Used only as a compensating action
	// when a later provisioning step fails.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
