package repository

import (
	"context"
	"errors"

	"carttrace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when a refresh token is not found.
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the standard operations for session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a non-expired refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error

	// DeleteRefreshTokensByUserID deletes all of a user's refresh tokens.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
