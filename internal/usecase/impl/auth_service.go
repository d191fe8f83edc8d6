// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "carttrace/internal/delivery/context"
	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/domain/service"
	"carttrace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	directory        service.IdentityDirectory
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	roleRepo         repository.RoleRepository
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Directory        service.IdentityDirectory
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	RoleRepo         repository.RoleRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		directory:        params.Directory,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		roleRepo:         params.RoleRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login resolves the phone number against both identity encodings and issues
// a token pair for whichever matches. The client identity is always tried
// first; if a phone number were somehow provisioned under both types, the
// client identity wins.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("phoneNumber", input.PhoneNumber))

	if !entity.ValidPhoneNumber(input.PhoneNumber) || input.Secret == "" {
		// Malformed input gets the same generic answer as a wrong secret.
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	identity, err := srv.resolveIdentity(ctx, input.PhoneNumber, input.Secret)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("phoneNumber", input.PhoneNumber))

		// The reason from either attempt is discarded on purpose: the caller
		// must not learn which identity type exists for a phone number.
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	roles, err := srv.roleRepo.FindByUserID(ctx, identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles during login")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(identity.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    identity.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", identity.ID), slog.String("accountType", identity.AccountType.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		UserID:       identity.ID,
		AccountType:  identity.AccountType,
		Roles:        roles.ToStrings(),
	}, nil
}

// resolveIdentity tries the client identity first, then the owner identity.
func (srv *authService) resolveIdentity(ctx context.Context, phoneNumber, secret string) (*entity.Identity, error) {
	for _, accountType := range []entity.AccountType{entity.AccountTypeClient, entity.AccountTypeOwner} {
		identity, err := srv.directory.FindByEmail(ctx, entity.LoginEmail(phoneNumber, accountType))
		if err != nil {
			continue
		}
		if err := srv.hasher.Verify(secret, identity.PasswordHash); err != nil {
			continue
		}

		return identity, nil
	}

	return nil, service.ErrIdentityNotFound
}

// RefreshToken handles the process of issuing a new token pair using a refresh token.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	// The token must still exist in the database: logout revokes it there.
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
	}

	roles, err := srv.roleRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roles during refresh")
	}

	newAccessToken, newRefreshTokenString, err := srv.tokenService.GenerateTokens(claims.UserID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    claims.UserID,
		TokenHash: srv.tokenService.HashToken(newRefreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store new refresh token")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		// The user already holds a valid new token; losing the old row only
		// delays revocation until it expires.
		srv.log(ctx).Warn("Failed to delete old refresh token", slog.Any("error", err))
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			// Already gone; logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Debug("Successfully logged out")

	return nil
}
