package service

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// Directory sentinel errors.
var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrIdentityExists   = errors.New("identity already exists")
)

// NewIdentity carries the attributes for creating a login identity.
type NewIdentity struct {
	PhoneNumber string
	AccountType entity.AccountType
	Password    string
}

// IdentityDirectory manages login identities in the authentication store.
// The store lives outside the relational transaction boundary, so callers
// that combine directory writes with relational writes must compensate by
// hand when a later step fails.
type IdentityDirectory interface {
	// CreateUser registers a new identity. The login email is synthesized
	// from the phone number and account type. Returns ErrIdentityExists
	// when an identity with the same email, or another identity for the
	// same phone number, already exists.
	CreateUser(ctx context.Context, input NewIdentity) (*entity.Identity, error)

	// DeleteUser removes an identity. Used to roll back partial provisioning.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// UpdatePassword replaces the identity's secret with a hash of newPassword.
	UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error

	// FindByID retrieves an identity by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves an identity by its synthesized login email.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// FindByPhone retrieves the identity for a phone number and account type.
	FindByPhone(ctx context.Context, phone string, accountType entity.AccountType) (*entity.Identity, error)
}
