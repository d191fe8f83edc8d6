// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in with a phone number.
// Secret is either an owner's password or a client's PIN.
type LoginInput struct {
	PhoneNumber string
	Secret      string
}

// RefreshTokenInput defines the data required to refresh a session.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	UserID       uuid.UUID
	AccountType  entity.AccountType
	Roles        []string
}

// RefreshTokenOutput returns the new token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for session-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login resolves a phone number to a login identity, trying the client
	// identity first and the owner identity second, and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a refresh token into a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout invalidates the session tied to the given refresh token.
	Logout(ctx context.Context, input *LogoutInput) error
}
