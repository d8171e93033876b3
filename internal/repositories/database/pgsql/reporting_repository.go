package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTypeTotals sums gross and VAT amounts per invoice type issued within rng
func (r *reportingRepository) GetTypeTotals(ctx context.Context, rng domain.DateRange) ([]domain.TypeTotals, error) {
	query := `
		SELECT
			type,
			COALESCE(SUM(gross_amount), 0) AS gross,
			COALESCE(SUM(vat_amount), 0) AS vat
		FROM invoices
		WHERE date_issued BETWEEN $1 AND $2
		GROUP BY type
	`

	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("error querying type totals: %w", err)
	}
	defer rows.Close()

	result := []domain.TypeTotals{}
	for rows.Next() {
		var row domain.TypeTotals
		var invoiceType string

		if err := rows.Scan(&invoiceType, &row.Gross, &row.Vat); err != nil {
			return nil, fmt.Errorf("error scanning type totals row: %w", err)
		}

		row.Type = domain.InvoiceType(invoiceType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type totals rows: %w", err)
	}

	return result, nil
}

// GetCategoryTotals sums gross amounts per (type, category), largest first
func (r *reportingRepository) GetCategoryTotals(ctx context.Context, rng domain.DateRange) ([]domain.CategoryStat, error) {
	query := `
		SELECT
			i.type,
			c.category_id,
			c.name AS category_name,
			c.icon AS category_icon,
			SUM(i.gross_amount) AS amount
		FROM invoices i
		JOIN categories c ON c.category_id = i.category_id
		WHERE i.date_issued BETWEEN $1 AND $2
		GROUP BY i.type, c.category_id, c.name, c.icon
		ORDER BY amount DESC, c.name
	`

	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryStat{}
	for rows.Next() {
		var row domain.CategoryStat
		var invoiceType string

		if err := rows.Scan(
			&invoiceType,
			&row.CategoryID,
			&row.CategoryName,
			&row.CategoryIcon,
			&row.Amount,
		); err != nil {
			return nil, fmt.Errorf("error scanning category totals row: %w", err)
		}

		row.Type = domain.InvoiceType(invoiceType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals rows: %w", err)
	}

	return result, nil
}

// GetInvoiceYears lists the distinct years invoices were issued in
func (r *reportingRepository) GetInvoiceYears(ctx context.Context) ([]int, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT DISTINCT EXTRACT(YEAR FROM date_issued)::int AS year
		FROM invoices
		ORDER BY year
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying invoice years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("error scanning invoice year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice years: %w", err)
	}
	return years, nil
}
