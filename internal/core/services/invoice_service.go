package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/SscSPs/invoicing_app/internal/utils/accounting"
	"github.com/SscSPs/invoicing_app/internal/utils/pagination"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 500
)

type invoiceService struct {
	BaseService
	invoiceRepo    portsrepo.InvoiceRepositoryFacade
	categoryRepo   portsrepo.CategoryReader
	departmentRepo portsrepo.DepartmentReader
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceClock replaces the clock used for creation timestamps.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.clock = now
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	departmentRepo portsrepo.DepartmentReader,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:    invoiceRepo,
		categoryRepo:   categoryRepo,
		departmentRepo: departmentRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, identity domain.Identity, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	var manualVat *decimal.Decimal
	if req.ManualVat {
		if req.VatAmount == nil {
			return nil, validation.Field("vatAmount", "is required when manualVat is set")
		}
		manualVat = req.VatAmount
	}
	vat, gross := accounting.ComputeAmounts(req.NetAmount, req.VatRate, manualVat)
	if !req.ManualVat && req.VatAmount != nil {
		if err := accounting.ValidateVAT(vat, *req.VatAmount); err != nil {
			return nil, validation.Field("vatAmount", err.Error())
		}
	}
	if req.GrossAmount != nil {
		if err := accounting.ValidateGross(req.NetAmount, vat, *req.GrossAmount); err != nil {
			return nil, validation.Field("grossAmount", err.Error())
		}
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, validation.Field("categoryId", "category does not exist")
		}
		s.LogError(ctx, err, "Failed to load invoice category", slog.String("category_id", req.CategoryID))
		return nil, err
	}
	if category.Type != req.Type {
		return nil, validation.Field("type", fmt.Sprintf("does not match category type %s", category.Type))
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, validation.Field("departmentId", "department does not exist")
			}
			s.LogError(ctx, err, "Failed to load invoice department", slog.String("department_id", *req.DepartmentID))
			return nil, err
		}
	}

	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		Type:          req.Type,
		NetAmount:     req.NetAmount,
		VatAmount:     vat,
		VatRate:       req.VatRate,
		GrossAmount:   gross,
		Status:        req.Status,
		DateIssued:    req.DateIssued,
		DatePaid:      req.DatePaid,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		DepartmentID:  req.DepartmentID,
		CreatorFields: domain.StampedBy(identity, s.Now()),
	}
	invoice.Normalize()

	exists, err := s.invoiceRepo.InvoiceNumberExists(ctx, invoice.InvoiceNumber, invoice.CategoryID, invoice.DepartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check invoice number", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: invoice number %s already exists for this category and department", apperrors.ErrDuplicate, invoice.InvoiceNumber)
	}

	delta, err := accounting.CalculateContribution(invoice)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.CreateInvoice(ctx, invoice, delta); err != nil {
		s.LogError(ctx, err, "Failed to create invoice",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("type", string(invoice.Type)),
		slog.String("gross", invoice.GrossAmount.StringFixed(2)),
		slog.String("user_id", identity.UserID))
	return &invoice, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get invoice", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoiceHistory(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) ([]domain.InvoiceHistoryItem, *string, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var after *portsrepo.InvoiceCursor
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, validation.Field("nextToken", "is invalid")
		}
		after = &portsrepo.InvoiceCursor{CreatedAt: createdAt, InvoiceID: id}
	}

	// One extra row tells whether another page exists.
	items, err := s.invoiceRepo.ListInvoiceHistory(ctx, rng, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice history")
		return nil, nil, err
	}

	var next *string
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.InvoiceID)
		next = &token
	}

	for i := range items {
		items[i].FormattedAmount = utils.FormatEUR(items[i].GrossAmount)
	}
	return items, next, nil
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, identity domain.Identity, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error) {
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice.Status = req.Status
	invoice.DatePaid = req.DatePaid
	invoice.Normalize()

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoice.InvoiceID, invoice.Status, invoice.DatePaid); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice status updated",
		slog.String("invoice_id", invoiceID),
		slog.String("status", string(invoice.Status)),
		slog.String("user_id", identity.UserID))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, identity domain.Identity, invoiceID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	delta, err := accounting.CalculateContribution(*invoice)
	if err != nil {
		return err
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, *invoice, delta.Neg()); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}

	s.LogInfo(ctx, "Invoice deleted",
		slog.String("invoice_id", invoiceID),
		slog.String("user_id", identity.UserID))
	return nil
}
