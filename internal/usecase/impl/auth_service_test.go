package impl

import (
	"context"
	"testing"
	"time"

	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/domain/service"
	mockRepo "carttrace/internal/mocks/repository"
	mockSvc "carttrace/internal/mocks/service"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	directory        *mockSvc.MockIdentityDirectory
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	roleRepo         *mockRepo.MockRoleRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	directory := mockSvc.NewMockIdentityDirectory(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

	svc := NewAuthService(AuthServiceParams{
		Directory:        directory,
		Hasher:           hasher,
		TokenService:     tokenService,
		RoleRepo:         roleRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          svc,
		directory:        directory,
		hasher:           hasher,
		tokenService:     tokenService,
		roleRepo:         roleRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

func TestAuthService_Login_ClientIdentityWins(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	phone := "0798765432"
	clientIdentity := &entity.Identity{
		ID:           uuid.New(),
		Email:        "0798765432@client.internal",
		PhoneNumber:  phone,
		AccountType:  entity.AccountTypeClient,
		PasswordHash: "hashed_pin",
	}

	// The client encoding resolves first; the owner encoding is never tried.
	fx.directory.EXPECT().
		FindByEmail(ctx, "0798765432@client.internal").
		Return(clientIdentity, nil)
	fx.hasher.EXPECT().
		Verify("483920", "hashed_pin").
		Return(nil)
	fx.roleRepo.EXPECT().
		FindByUserID(ctx, clientIdentity.ID).
		Return(entity.Roles{entity.RoleClient}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(clientIdentity.ID, []string{"client"}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().
		HashToken("refresh_token").
		Return("refresh_token_hash")
	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, clientIdentity.ID, token.UserID)
			assert.Equal(t, "refresh_token_hash", token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{PhoneNumber: phone, Secret: "483920"})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeClient, output.AccountType)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, []string{"client"}, output.Roles)
}

func TestAuthService_Login_FallsBackToOwner(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	phone := "0712345678"
	ownerIdentity := &entity.Identity{
		ID:           uuid.New(),
		Email:        "0712345678@owner.internal",
		PhoneNumber:  phone,
		AccountType:  entity.AccountTypeOwner,
		PasswordHash: "hashed_password",
	}

	fx.directory.EXPECT().
		FindByEmail(ctx, "0712345678@client.internal").
		Return(nil, service.ErrIdentityNotFound)
	fx.directory.EXPECT().
		FindByEmail(ctx, "0712345678@owner.internal").
		Return(ownerIdentity, nil)
	fx.hasher.EXPECT().
		Verify("Secret123", "hashed_password").
		Return(nil)
	fx.roleRepo.EXPECT().
		FindByUserID(ctx, ownerIdentity.ID).
		Return(entity.Roles{entity.RoleAdmin}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(ownerIdentity.ID, []string{"admin"}).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().
		HashToken("refresh_token").
		Return("refresh_token_hash")
	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{PhoneNumber: phone, Secret: "Secret123"})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeOwner, output.AccountType)
}

func TestAuthService_Login_GenericFailureOnWrongSecret(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	phone := "0712345678"
	ownerIdentity := &entity.Identity{
		ID:           uuid.New(),
		Email:        "0712345678@owner.internal",
		AccountType:  entity.AccountTypeOwner,
		PasswordHash: "hashed_password",
	}

	fx.directory.EXPECT().
		FindByEmail(ctx, "0712345678@client.internal").
		Return(nil, service.ErrIdentityNotFound)
	fx.directory.EXPECT().
		FindByEmail(ctx, "0712345678@owner.internal").
		Return(ownerIdentity, nil)
	fx.hasher.EXPECT().
		Verify("wrong", "hashed_password").
		Return(errors.New("hash mismatch"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{PhoneNumber: phone, Secret: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_GenericFailureOnMalformedPhone(t *testing.T) {
	fx := createTestAuthService(t)

	// A malformed phone number never reaches the directory and gets the same
	// answer as a wrong secret.
	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		PhoneNumber: "12345",
		Secret:      "Secret123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old_refresh").
		Return(claims, nil)
	fx.tokenService.EXPECT().
		HashToken("old_refresh").
		Return("old_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "old_hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old_hash"}, nil)
	fx.roleRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(entity.Roles{entity.RoleAdmin}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"admin"}).
		Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().
		HashToken("new_refresh").
		Return("new_hash")
	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "old_hash").
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAuthService_RefreshToken_RejectsRevokedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	claims := &service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}

	// The token signature is still valid, but logout removed it from storage.
	fx.tokenService.EXPECT().
		ValidateRefreshToken("revoked").
		Return(claims, nil)
	fx.tokenService.EXPECT().
		HashToken("revoked").
		Return("revoked_hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "revoked_hash").
		Return(nil, repository.ErrTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "revoked"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("gone").
		Return(&service.Claims{}, nil)
	fx.tokenService.EXPECT().
		HashToken("gone").
		Return("gone_hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "gone_hash").
		Return(repository.ErrTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"})

	assert.NoError(t, err)
}
