package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SetupTenantInput defines the data required for first-login tenant setup.
// UserID comes from the caller's validated access token, never from the body.
type SetupTenantInput struct {
	UserID       uuid.UUID
	BusinessName string
	FullName     string
	PhoneNumber  string
}

// CreateClientUserInput defines the data required to provision a client login.
type CreateClientUserInput struct {
	Email       string
	Password    string
	PhoneNumber string
	TenantID    uuid.UUID
}

// ResetPasswordInput defines the data required to reset a secret by phone number.
type ResetPasswordInput struct {
	PhoneNumber string
}

// ResolveLoginEmailInput defines the data required to resolve a login email.
type ResolveLoginEmailInput struct {
	PhoneNumber string
}

// --- Output DTOs ---

// SetupTenantOutput returns the tenant the caller now belongs to.
type SetupTenantOutput struct {
	TenantID uuid.UUID
}

// CreateClientUserOutput returns the newly provisioned client login.
type CreateClientUserOutput struct {
	UserID uuid.UUID
	Email  string
}

// ResetPasswordOutput returns the freshly generated PIN.
// The PIN travels in the response body; there is no out-of-band delivery.
type ResetPasswordOutput struct {
	Pin string
}

// ResolveLoginEmailOutput returns the synthesized login email for a phone number.
type ResolveLoginEmailOutput struct {
	Email string
}

// ProvisioningUsecase defines the interface for account provisioning operations.
type ProvisioningUsecase interface {
	// SetupTenant turns a fresh identity into a business-owner account.
	// Safe to re-enter: an existing tenant or profile is reused, not duplicated.
	SetupTenant(ctx context.Context, input *SetupTenantInput) (*SetupTenantOutput, error)

	// CreateClientUser provisions a constrained client login under a tenant.
	// On a partial failure every completed step is compensated in reverse
	// order, leaving no orphaned identity or profile behind.
	CreateClientUser(ctx context.Context, input *CreateClientUserInput) (*CreateClientUserOutput, error)

	// ResetPassword generates a fresh PIN for whichever identity the phone
	// number resolves to and overwrites the stored credential.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) (*ResetPasswordOutput, error)

	// ResolveLoginEmail reports the synthesized login email a phone number
	// resolves to, using the same lookup order as ResetPassword.
	ResolveLoginEmail(ctx context.Context, input *ResolveLoginEmailInput) (*ResolveLoginEmailOutput, error)
}
