package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "carttrace/internal/delivery/context"
	"carttrace/internal/domain/entity"
	domainerrors "carttrace/internal/domain/errors"
	"carttrace/internal/domain/repository"
	"carttrace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	invoiceNumberPrefix = "INV-"
	firstInvoiceNumber  = "INV-0001"
)

// invoiceService implements the InvoiceUsecase interface.
type invoiceService struct {
	txManager   repository.TransactionManager
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

// InvoiceServiceParams holds dependencies for invoiceService, injected by Fx.
type InvoiceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	InvoiceRepo repository.InvoiceRepository
	Logger      *slog.Logger
}

// NewInvoiceService is the constructor for invoiceService.
func NewInvoiceService(params InvoiceServiceParams) usecase.InvoiceUsecase {
	return &invoiceService{
		txManager:   params.TxManager,
		invoiceRepo: params.InvoiceRepo,
		logger:      params.Logger,
	}
}

func (srv *invoiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateInvoice issues a new draft invoice. Number generation and the insert
// share one transaction; a concurrent create for the same tenant collides on
// the per-tenant unique number and surfaces as a conflict.
func (srv *invoiceService) CreateInvoice(ctx context.Context, input *usecase.CreateInvoiceInput) (*entity.Invoice, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invoice amount must be positive")
	}
	if input.ClientID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("client id is required")
	}

	var created *entity.Invoice
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.InvoiceRepo()

		// The client must belong to this tenant.
		if _, err := repoFactory.ClientRepo().FindByID(ctx, input.TenantID, input.ClientID); err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("client not found")
			}

			return errors.Wrap(err, "failed to check client for invoice")
		}

		number, err := srv.nextInvoiceNumber(ctx, invoiceRepo, input.TenantID)
		if err != nil {
			return err
		}

		newInvoice := &entity.Invoice{
			TenantID:      input.TenantID,
			ClientID:      input.ClientID,
			ProductID:     input.ProductID,
			InvoiceNumber: number,
			Amount:        input.Amount,
			Status:        entity.InvoiceStatusDraft,
			DueDate:       input.DueDate,
		}
		if err := invoiceRepo.Create(ctx, newInvoice); err != nil {
			return errors.Wrap(err, "failed to create invoice")
		}
		created = newInvoice

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute invoice creation transaction", slog.Any("tenantID", input.TenantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute invoice creation transaction")
	}

	return created, nil
}

// nextInvoiceNumber derives the next sequential number from the latest
// invoice, e.g. "INV-0041" follows "INV-0040". The first invoice of a tenant
// is "INV-0001". A latest number that does not parse restarts the sequence
// rather than failing the create.
func (srv *invoiceService) nextInvoiceNumber(ctx context.Context, invoiceRepo repository.InvoiceRepository, tenantID uuid.UUID) (string, error) {
	latest, err := invoiceRepo.FindLatestByTenant(ctx, tenantID)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return firstInvoiceNumber, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load latest invoice number")
	}

	suffix := strings.TrimPrefix(latest.InvoiceNumber, invoiceNumberPrefix)
	seq, parseErr := strconv.Atoi(suffix)
	if parseErr != nil || seq < 0 {
		return firstInvoiceNumber, nil
	}

	return fmt.Sprintf("%s%04d", invoiceNumberPrefix, seq+1), nil
}

// UpdateInvoice modifies an invoice's amount, status, or due date.
func (srv *invoiceService) UpdateInvoice(ctx context.Context, input *usecase.UpdateInvoiceInput) (*entity.Invoice, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invoice amount must be positive")
	}
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown invoice status")
	}

	invoice, err := srv.invoiceRepo.FindByID(ctx, input.TenantID, input.InvoiceID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to load invoice for update")
	}

	invoice.Amount = input.Amount
	invoice.Status = input.Status
	invoice.DueDate = input.DueDate

	if err := srv.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, srv.mapNotFound(err, "failed to update invoice")
	}

	return invoice, nil
}

// DeleteInvoice removes an invoice within the tenant.
func (srv *invoiceService) DeleteInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	if err := srv.invoiceRepo.Delete(ctx, tenantID, invoiceID); err != nil {
		return srv.mapNotFound(err, "failed to delete invoice")
	}

	return nil
}

// GetInvoice retrieves a single invoice within the tenant.
func (srv *invoiceService) GetInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, srv.mapNotFound(err, "failed to find invoice")
	}

	return invoice, nil
}

// ListInvoices retrieves all invoices of a tenant.
func (srv *invoiceService) ListInvoices(ctx context.Context, tenantID uuid.UUID) ([]*entity.Invoice, error) {
	invoices, err := srv.invoiceRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}

// ListInvoicesByClient retrieves all invoices issued to one client.
func (srv *invoiceService) ListInvoicesByClient(ctx context.Context, tenantID, clientID uuid.UUID) ([]*entity.Invoice, error) {
	invoices, err := srv.invoiceRepo.ListByClient(ctx, tenantID, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices by client")
	}

	return invoices, nil
}

// NextInvoiceNumber previews the number the next invoice will carry, for
// prefilling forms. Advisory only: creation derives its own number inside the
// transaction, so a concurrent create may claim the previewed value first.
func (srv *invoiceService) NextInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	return srv.nextInvoiceNumber(ctx, srv.invoiceRepo, tenantID)
}

func (srv *invoiceService) mapNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("invoice not found")
	}

	return errors.Wrap(err, msg)
}
