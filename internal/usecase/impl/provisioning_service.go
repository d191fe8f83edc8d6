package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "carttrace/internal/delivery/context"
	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/domain/service"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minClientSecretLength = 6

// provisioningService implements the ProvisioningUsecase interface.
type provisioningService struct {
	txManager    repository.TransactionManager
	directory    service.IdentityDirectory
	pinGenerator service.PinGenerator
	tenantRepo   repository.TenantRepository
	profileRepo  repository.ProfileRepository
	logger       *slog.Logger
}

// ProvisioningServiceParams holds dependencies for provisioningService, injected by Fx.
type ProvisioningServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Directory    service.IdentityDirectory
	PinGenerator service.PinGenerator
	TenantRepo   repository.TenantRepository
	ProfileRepo  repository.ProfileRepository
	Logger       *slog.Logger
}

// NewProvisioningService is the constructor for provisioningService.
func NewProvisioningService(params ProvisioningServiceParams) usecase.ProvisioningUsecase {
	return &provisioningService{
		txManager:    params.TxManager,
		directory:    params.Directory,
		pinGenerator: params.PinGenerator,
		tenantRepo:   params.TenantRepo,
		profileRepo:  params.ProfileRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *provisioningService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetupTenant turns a freshly created identity into a business-owner account.
// Both the tenant and the profile are looked up before being created, so a
// retried request reuses what the first attempt left behind.
func (srv *provisioningService) SetupTenant(ctx context.Context, input *usecase.SetupTenantInput) (*usecase.SetupTenantOutput, error) {
	srv.log(ctx).Info("Starting tenant setup", slog.Any("userID", input.UserID), slog.String("phoneNumber", input.PhoneNumber))

	if input.UserID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "tenant setup requires an authenticated caller")
	}
	if !entity.ValidPhoneNumber(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber.WrapMessage("tenant setup failed")
	}
	if strings.TrimSpace(input.BusinessName) == "" || strings.TrimSpace(input.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("business name and full name are required")
	}

	// The tenant row is settled outside the profile transaction. A losing
	// insert has to refetch the winner's row, and Postgres refuses reads on a
	// transaction that a failed insert has already aborted.
	tenant, err := srv.lookupOrCreateTenant(ctx, input)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve tenant", slog.Any("error", err), slog.String("phoneNumber", input.PhoneNumber))

		return nil, err
	}
	tenantID := tenant.ID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		roleRepo := repoFactory.RoleRepo()

		// An existing profile means this caller is already provisioned.
		_, err := profileRepo.FindByUserID(ctx, input.UserID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to look up profile")
		}

		// Profile and role are one logical unit: if either insert fails the
		// surrounding transaction rolls both back.
		newProfile := &entity.Profile{
			UserID:      input.UserID,
			TenantID:    tenantID,
			FullName:    input.FullName,
			PhoneNumber: input.PhoneNumber,
		}
		if err := profileRepo.Create(ctx, newProfile); err != nil {
			return domainerrors.ErrProfileCreationFailed.WrapMessage(err.Error())
		}

		newRole := &entity.RoleAssignment{
			UserID: input.UserID,
			Role:   entity.RoleAdmin,
		}
		if err := roleRepo.Create(ctx, newRole); err != nil {
			return domainerrors.ErrRoleAssignmentFailed.WrapMessage(err.Error())
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute tenant setup transaction", slog.Any("error", err), slog.Any("userID", input.UserID))

		return nil, errors.Wrap(err, "failed to execute tenant setup transaction")
	}

	srv.log(ctx).Debug("Tenant setup completed", slog.Any("tenantID", tenantID))

	return &usecase.SetupTenantOutput{TenantID: tenantID}, nil
}

// lookupOrCreateTenant resolves the tenant for a business phone number,
// creating it on first use. A concurrent create for the same number loses the
// race on the unique constraint and falls back to the winner's row.
func (srv *provisioningService) lookupOrCreateTenant(ctx context.Context, input *usecase.SetupTenantInput) (*entity.Tenant, error) {
	tenant, err := srv.tenantRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, repository.ErrTenantNotFound) {
		return nil, errors.Wrap(err, "failed to look up tenant")
	}

	newTenant := &entity.Tenant{
		BusinessName: input.BusinessName,
		PhoneNumber:  input.PhoneNumber,
	}
	err = srv.tenantRepo.Create(ctx, newTenant)
	if err == nil {
		return newTenant, nil
	}
	if errors.Is(err, repository.ErrTenantExists) {
		return srv.tenantRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
	}

	return nil, domainerrors.ErrTenantCreationFailed.WrapMessage(err.Error())
}

// CreateClientUser provisions a client login in three steps: identity, then
// profile, then role. The profile and role inserts run inside one relational
// transaction; if that transaction fails, the identity created in step one is
// deleted before the error is returned, so no partial state survives.
func (srv *provisioningService) CreateClientUser(ctx context.Context, input *usecase.CreateClientUserInput) (*usecase.CreateClientUserOutput, error) {
	srv.log(ctx).Info("Starting client user provisioning", slog.Any("tenantID", input.TenantID), slog.String("phoneNumber", input.PhoneNumber))

	if err := validateCreateClientUserInput(input); err != nil {
		return nil, err
	}

	// Step 1: the login identity. This write is outside the relational
	// transaction, so later failures must compensate for it by hand.
	identity, err := srv.directory.CreateUser(ctx, service.NewIdentity{
		PhoneNumber: input.PhoneNumber,
		AccountType: entity.AccountTypeClient,
		Password:    input.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityExists) {
			return nil, domainerrors.ErrConflict.WrapMessage("a login already exists for this phone number")
		}

		return nil, domainerrors.ErrIdentityCreationFailed.WrapMessage(err.Error())
	}

	// Steps 2 and 3: profile and role, atomically.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newProfile := &entity.Profile{
			UserID:      identity.ID,
			TenantID:    input.TenantID,
			FullName:    input.PhoneNumber, // Client accounts carry no real name.
			PhoneNumber: input.PhoneNumber,
		}
		if err := repoFactory.ProfileRepo().Create(ctx, newProfile); err != nil {
			return domainerrors.ErrProfileCreationFailed.WrapMessage(err.Error())
		}

		newRole := &entity.RoleAssignment{
			UserID: identity.ID,
			Role:   entity.RoleClient,
		}
		if err := repoFactory.RoleRepo().Create(ctx, newRole); err != nil {
			return domainerrors.ErrRoleAssignmentFailed.WrapMessage(err.Error())
		}

		return nil
	})
	if err != nil {
		srv.compensateIdentity(ctx, identity.ID)
		srv.log(ctx).Error("Failed to provision client user", slog.Any("error", err), slog.Any("tenantID", input.TenantID))

		return nil, errors.Wrap(err, "failed to provision client user")
	}

	srv.log(ctx).Debug("Client user provisioned", slog.Any("userID", identity.ID))

	return &usecase.CreateClientUserOutput{
		UserID: identity.ID,
		Email:  identity.Email,
	}, nil
}

// compensateIdentity deletes an identity left behind by a failed provisioning
// attempt. A failed compensation is a second-order error: it is logged loudly
// but does not replace the original failure returned to the caller.
func (srv *provisioningService) compensateIdentity(ctx context.Context, identityID uuid.UUID) {
	if err := srv.directory.DeleteUser(ctx, identityID); err != nil {
		srv.log(ctx).Error("Rollback failed: orphaned identity remains",
			slog.Any("identityID", identityID),
			slog.Any("error", err),
		)
	}
}

func validateCreateClientUserInput(input *usecase.CreateClientUserInput) error {
	if !entity.ValidPhoneNumber(input.PhoneNumber) {
		return domainerrors.ErrInvalidPhoneNumber.WrapMessage("client user provisioning failed")
	}
	if len(input.Password) < minClientSecretLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password must be at least 6 characters")
	}
	if input.TenantID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("tenant id is required")
	}
	// The login email is always the synthesized client form; anything else
	// would create an identity the credential resolver can never find.
	if input.Email != entity.LoginEmail(input.PhoneNumber, entity.AccountTypeClient) {
		return domainerrors.ErrValidationFailed.WrapMessage("email must match the client login convention")
	}

	return nil
}

// ResetPassword regenerates the secret for whichever identity the phone
// number resolves to and returns the new PIN in the response payload. There
// is no out-of-band delivery; handing the PIN back to the caller is a
// deliberate product decision.
func (srv *provisioningService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.ResetPasswordOutput, error) {
	srv.log(ctx).Info("Starting password reset", slog.String("phoneNumber", input.PhoneNumber))

	if !entity.ValidPhoneNumber(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber.WrapMessage("password reset failed")
	}

	identity, err := srv.lookupIdentityByPhone(ctx, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	pin, err := srv.pinGenerator.Generate()
	if err != nil {
		return nil, domainerrors.ErrPasswordResetFailed.WrapMessage(err.Error())
	}

	if err := srv.directory.UpdatePassword(ctx, identity.ID, pin); err != nil {
		srv.log(ctx).Error("Failed to overwrite credential", slog.Any("identityID", identity.ID), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordResetFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Password reset completed", slog.Any("identityID", identity.ID))

	return &usecase.ResetPasswordOutput{Pin: pin}, nil
}

// ResolveLoginEmail reports which synthesized login email a phone number
// resolves to, using the same lookup order as ResetPassword.
func (srv *provisioningService) ResolveLoginEmail(ctx context.Context, input *usecase.ResolveLoginEmailInput) (*usecase.ResolveLoginEmailOutput, error) {
	if !entity.ValidPhoneNumber(input.PhoneNumber) {
		return nil, domainerrors.ErrInvalidPhoneNumber.WrapMessage("login email resolution failed")
	}

	identity, err := srv.lookupIdentityByPhone(ctx, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return &usecase.ResolveLoginEmailOutput{Email: identity.Email}, nil
}

// lookupIdentityByPhone resolves a phone number to an identity. The profile
// table is authoritative; the direct email lookup covers identities that were
// created without a profile (e.g. a provisioning attempt whose rollback
// failed) so their owners can still recover access.
func (srv *provisioningService) lookupIdentityByPhone(ctx context.Context, phoneNumber string) (*entity.Identity, error) {
	profile, err := srv.profileRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err == nil {
		identity, err := srv.directory.FindByID(ctx, profile.UserID)
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(err, "failed to resolve identity by profile")
		}
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to look up profile by phone")
	}

	// Fall back to the synthesized emails, client first.
	for _, accountType := range []entity.AccountType{entity.AccountTypeClient, entity.AccountTypeOwner} {
		identity, err := srv.directory.FindByEmail(ctx, entity.LoginEmail(phoneNumber, accountType))
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, service.ErrIdentityNotFound) {
			return nil, errors.Wrap(err, "failed to resolve identity by email")
		}
	}

	return nil, domainerrors.ErrAccountNotFound.WrapMessage("no identity resolves for this phone number")
}
