package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// InvoiceCursor marks the last row of a page of invoice history.
type InvoiceCursor struct {
	CreatedAt time.Time
	InvoiceID string
}

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// InvoiceNumberExists reports whether the number is taken within
	// (categoryID, departmentID). A nil department matches only invoices
	// without a department.
	InvoiceNumberExists(ctx context.Context, invoiceNumber, categoryID string, departmentID *string) (bool, error)

	// ListInvoiceHistory returns invoices issued within rng, newest created
	// first, starting after cursor when one is given.
	ListInvoiceHistory(ctx context.Context, rng domain.DateRange, limit int, after *InvoiceCursor) ([]domain.InvoiceHistoryItem, error)
}

// InvoiceWriter defines write operations for invoices. Every write that
// changes an invoice's contribution also applies delta to the month and
// year rollups inside the same database transaction.
type InvoiceWriter interface {
	CreateInvoice(ctx context.Context, invoice domain.Invoice, delta domain.RollupDelta) error
	DeleteInvoice(ctx context.Context, invoice domain.Invoice, delta domain.RollupDelta) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, datePaid *time.Time) error
}

// InvoiceRepositoryFacade combines invoice reads and writes.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
