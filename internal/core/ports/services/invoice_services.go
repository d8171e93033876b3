package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoiceHistory returns one page of invoices issued within rng and
	// the token of the next page, if any.
	ListInvoiceHistory(ctx context.Context, rng domain.DateRange, limit int, nextToken *string) ([]domain.InvoiceHistoryItem, *string, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	// CreateInvoice validates the request, rejects duplicate invoice numbers
	// and stores the invoice together with its rollup contribution.
	CreateInvoice(ctx context.Context, identity domain.Identity, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, identity domain.Identity, invoiceID string, req dto.UpdateInvoiceStatusRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, identity domain.Identity, invoiceID string) error
}

// InvoiceSvcFacade combines invoice reads and writes.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
