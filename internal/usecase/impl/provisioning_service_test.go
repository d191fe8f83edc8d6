package impl

import (
	"context"
	"testing"

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

// provisioningServiceFixtures holds all test dependencies for provisioning tests.
type provisioningServiceFixtures struct {
	service      usecase.ProvisioningUsecase
	txManager    *mockRepo.MockTransactionManager
	directory    *mockSvc.MockIdentityDirectory
	pinGenerator *mockSvc.MockPinGenerator
	tenantRepo   *mockRepo.MockTenantRepository
	profileRepo  *mockRepo.MockProfileRepository
}

func createTestProvisioningService(t *testing.T) provisioningServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	directory := mockSvc.NewMockIdentityDirectory(t)
	pinGenerator := mockSvc.NewMockPinGenerator(t)
	tenantRepo := mockRepo.NewMockTenantRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	svc := NewProvisioningService(ProvisioningServiceParams{
		TxManager:    txManager,
		Directory:    directory,
		PinGenerator: pinGenerator,
		TenantRepo:   tenantRepo,
		ProfileRepo:  profileRepo,
		Logger:       newDiscardLogger(),
	})

	return provisioningServiceFixtures{
		service:      svc,
		txManager:    txManager,
		directory:    directory,
		pinGenerator: pinGenerator,
		tenantRepo:   tenantRepo,
		profileRepo:  profileRepo,
	}
}

func TestProvisioningService_SetupTenant_Success(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.SetupTenantInput{
		UserID:       uuid.New(),
		BusinessName: "Nunua Polepole",
		FullName:     "Wanjiku Kamau",
		PhoneNumber:  "0712345678",
	}

	fx.tenantRepo.EXPECT().
		FindByPhoneNumber(ctx, input.PhoneNumber).
		Return(nil, repository.ErrTenantNotFound)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Run(func(ctx context.Context, tenant *entity.Tenant) {
			tenant.ID = uuid.New()
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, input.UserID).
				Return(nil, repository.ErrProfileNotFound)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, input.UserID, profile.UserID)
					assert.Equal(t, input.FullName, profile.FullName)
				}).
				Return(nil)

			mockRoleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RoleAssignment")).
				Run(func(ctx context.Context, assignment *entity.RoleAssignment) {
					assert.Equal(t, entity.RoleAdmin, assignment.Role)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.SetupTenant(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestProvisioningService_SetupTenant_IdempotentRetry(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.SetupTenantInput{
		UserID:       uuid.New(),
		BusinessName: "Nunua Polepole",
		FullName:     "Wanjiku Kamau",
		PhoneNumber:  "0712345678",
	}
	existingTenant := &entity.Tenant{
		ID:           uuid.New(),
		BusinessName: input.BusinessName,
		PhoneNumber:  input.PhoneNumber,
	}

	// Both the tenant and the profile already exist, so nothing is created.
	fx.tenantRepo.EXPECT().
		FindByPhoneNumber(ctx, input.PhoneNumber).
		Return(existingTenant, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, input.UserID).
				Return(&entity.Profile{UserID: input.UserID, TenantID: existingTenant.ID}, nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.SetupTenant(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, existingTenant.ID, output.TenantID)
}

func TestProvisioningService_SetupTenant_LosesCreateRace(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.SetupTenantInput{
		UserID:       uuid.New(),
		BusinessName: "Nunua Polepole",
		FullName:     "Wanjiku Kamau",
		PhoneNumber:  "0712345678",
	}
	winner := &entity.Tenant{ID: uuid.New(), PhoneNumber: input.PhoneNumber}

	// The first lookup misses, the insert collides, the refetch wins. All of
	// this happens before the profile transaction starts, on a session no
	// failed insert can have aborted.
	fx.tenantRepo.EXPECT().
		FindByPhoneNumber(ctx, input.PhoneNumber).
		Return(nil, repository.ErrTenantNotFound).Once()
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(repository.ErrTenantExists)
	fx.tenantRepo.EXPECT().
		FindByPhoneNumber(ctx, input.PhoneNumber).
		Return(winner, nil).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, input.UserID).
				Return(&entity.Profile{UserID: input.UserID}, nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.SetupTenant(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, winner.ID, output.TenantID)
}

func TestProvisioningService_SetupTenant_TenantSurvivesProfileFailure(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.SetupTenantInput{
		UserID:       uuid.New(),
		BusinessName: "Nunua Polepole",
		FullName:     "Wanjiku Kamau",
		PhoneNumber:  "0712345678",
	}

	// The tenant row is committed on its own; a later profile failure rolls
	// back only the profile transaction and surfaces the error.
	fx.tenantRepo.EXPECT().
		FindByPhoneNumber(ctx, input.PhoneNumber).
		Return(nil, repository.ErrTenantNotFound)
	fx.tenantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tenant")).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("profile insert failed"))

	output, err := fx.service.SetupTenant(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile insert failed")
}

func TestProvisioningService_SetupTenant_RequiresAuthentication(t *testing.T) {
	fx := createTestProvisioningService(t)

	output, err := fx.service.SetupTenant(context.Background(), &usecase.SetupTenantInput{
		UserID:       uuid.Nil,
		BusinessName: "Nunua Polepole",
		FullName:     "Wanjiku Kamau",
		PhoneNumber:  "0712345678",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestProvisioningService_SetupTenant_RejectsBadPhone(t *testing.T) {
	fx := createTestProvisioningService(t)

	output, err := fx.service.SetupTenant(context.Background(), &usecase.SetupTenantInput{
		UserID:       uuid.New(),
		BusinessName: "Nunua Polepole",
		FullName:     "Wanjiku Kamau",
		PhoneNumber:  "+254712345678",
	})

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestProvisioningService_CreateClientUser_Success(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.CreateClientUserInput{
		Email:       "0798765432@client.internal",
		Password:    "123456",
		PhoneNumber: "0798765432",
		TenantID:    uuid.New(),
	}
	identity := &entity.Identity{
		ID:          uuid.New(),
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		AccountType: entity.AccountTypeClient,
	}

	fx.directory.EXPECT().
		CreateUser(ctx, service.NewIdentity{
			PhoneNumber: input.PhoneNumber,
			AccountType: entity.AccountTypeClient,
			Password:    input.Password,
		}).
		Return(identity, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockRoleRepo := mockRepo.NewMockRoleRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)

			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					assert.Equal(t, identity.ID, profile.UserID)
					assert.Equal(t, input.TenantID, profile.TenantID)
					// Client accounts carry no real name.
					assert.Equal(t, input.PhoneNumber, profile.FullName)
				}).
				Return(nil)
			mockRoleRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.RoleAssignment")).
				Run(func(ctx context.Context, assignment *entity.RoleAssignment) {
					assert.Equal(t, entity.RoleClient, assignment.Role)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.CreateClientUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, identity.ID, output.UserID)
	assert.Equal(t, identity.Email, output.Email)
}

func TestProvisioningService_CreateClientUser_CompensatesIdentityOnFailure(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.CreateClientUserInput{
		Email:       "0798765432@client.internal",
		Password:    "123456",
		PhoneNumber: "0798765432",
		TenantID:    uuid.New(),
	}
	identity := &entity.Identity{ID: uuid.New(), Email: input.Email}

	fx.directory.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("service.NewIdentity")).
		Return(identity, nil)

	// The relational transaction fails after the identity was created.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("profile insert failed"))

	// The identity created in step one must be rolled back.
	fx.directory.EXPECT().
		DeleteUser(ctx, identity.ID).
		Return(nil)

	output, err := fx.service.CreateClientUser(ctx, input)

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestProvisioningService_CreateClientUser_ReturnsOriginalErrorWhenRollbackFails(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.CreateClientUserInput{
		Email:       "0798765432@client.internal",
		Password:    "123456",
		PhoneNumber: "0798765432",
		TenantID:    uuid.New(),
	}
	identity := &entity.Identity{ID: uuid.New(), Email: input.Email}

	fx.directory.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("service.NewIdentity")).
		Return(identity, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("role insert failed"))
	fx.directory.EXPECT().
		DeleteUser(ctx, identity.ID).
		Return(errors.New("directory unavailable"))

	output, err := fx.service.CreateClientUser(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	// The caller sees the provisioning failure, not the rollback failure.
	assert.Contains(t, err.Error(), "role insert failed")
}

func TestProvisioningService_CreateClientUser_ConflictOnExistingIdentity(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	input := &usecase.CreateClientUserInput{
		Email:       "0798765432@client.internal",
		Password:    "123456",
		PhoneNumber: "0798765432",
		TenantID:    uuid.New(),
	}

	fx.directory.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("service.NewIdentity")).
		Return(nil, service.ErrIdentityExists)

	output, err := fx.service.CreateClientUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestProvisioningService_CreateClientUser_RejectsMismatchedEmail(t *testing.T) {
	fx := createTestProvisioningService(t)

	output, err := fx.service.CreateClientUser(context.Background(), &usecase.CreateClientUserInput{
		Email:       "someone@example.com",
		Password:    "123456",
		PhoneNumber: "0798765432",
		TenantID:    uuid.New(),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProvisioningService_ResetPassword_ViaProfile(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	phone := "0712345678"
	userID := uuid.New()
	identity := &entity.Identity{ID: userID, Email: "0712345678@owner.internal"}

	fx.profileRepo.EXPECT().
		FindByPhoneNumber(ctx, phone).
		Return(&entity.Profile{UserID: userID, PhoneNumber: phone}, nil)
	fx.directory.EXPECT().
		FindByID(ctx, userID).
		Return(identity, nil)
	fx.pinGenerator.EXPECT().
		Generate().
		Return("483920", nil)
	fx.directory.EXPECT().
		UpdatePassword(ctx, identity.ID, "483920").
		Return(nil)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{PhoneNumber: phone})

	require.NoError(t, err)
	assert.Equal(t, "483920", output.Pin)
}

func TestProvisioningService_ResetPassword_FallsBackToClientEmail(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	phone := "0798765432"
	identity := &entity.Identity{ID: uuid.New(), Email: "0798765432@client.internal"}

	fx.profileRepo.EXPECT().
		FindByPhoneNumber(ctx, phone).
		Return(nil, repository.ErrProfileNotFound)
	fx.directory.EXPECT().
		FindByEmail(ctx, "0798765432@client.internal").
		Return(identity, nil)
	fx.pinGenerator.EXPECT().
		Generate().
		Return("105533", nil)
	fx.directory.EXPECT().
		UpdatePassword(ctx, identity.ID, "105533").
		Return(nil)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{PhoneNumber: phone})

	require.NoError(t, err)
	assert.Equal(t, "105533", output.Pin)
}

func TestProvisioningService_ResetPassword_AccountNotFound(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	phone := "0700000000"

	fx.profileRepo.EXPECT().
		FindByPhoneNumber(ctx, phone).
		Return(nil, repository.ErrProfileNotFound)
	fx.directory.EXPECT().
		FindByEmail(ctx, "0700000000@client.internal").
		Return(nil, service.ErrIdentityNotFound)
	fx.directory.EXPECT().
		FindByEmail(ctx, "0700000000@owner.internal").
		Return(nil, service.ErrIdentityNotFound)

	output, err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{PhoneNumber: phone})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestProvisioningService_ResolveLoginEmail_ClientBeforeOwner(t *testing.T) {
	fx := createTestProvisioningService(t)

	ctx := context.Background()
	phone := "0798765432"
	clientIdentity := &entity.Identity{ID: uuid.New(), Email: "0798765432@client.internal"}

	fx.profileRepo.EXPECT().
		FindByPhoneNumber(ctx, phone).
		Return(nil, repository.ErrProfileNotFound)
	// The client email resolves, so the owner email is never consulted.
	fx.directory.EXPECT().
		FindByEmail(ctx, "0798765432@client.internal").
		Return(clientIdentity, nil)

	output, err := fx.service.ResolveLoginEmail(ctx, &usecase.ResolveLoginEmailInput{PhoneNumber: phone})

	require.NoError(t, err)
	assert.Equal(t, "0798765432@client.internal", output.Email)
}
