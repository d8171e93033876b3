package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// ReportingRepository aggregates raw invoices for the statistics endpoints.
type ReportingRepository interface {
	// GetTypeTotals sums gross and VAT per invoice type within rng.
	GetTypeTotals(ctx context.Context, rng domain.DateRange) ([]domain.TypeTotals, error)

	// GetCategoryTotals sums gross per (type, category) within rng, largest first.
	GetCategoryTotals(ctx context.Context, rng domain.DateRange) ([]domain.CategoryStat, error)

	// GetInvoiceYears lists the distinct issue years, ascending.
	GetInvoiceYears(ctx context.Context) ([]int, error)
}
