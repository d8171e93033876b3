package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/accounting"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `i.invoice_id, i.invoice_number, i.type, i.net_amount, i.vat_amount, i.vat_rate, i.gross_amount,
	i.status, i.date_issued, i.date_paid, i.description, i.category_id, i.department_id,
	i.user_id, i.user_original, i.created_at`

func invoiceScanTargets(m *models.Invoice) []any {
	return []any{
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.Type,
		&m.NetAmount,
		&m.VatAmount,
		&m.VatRate,
		&m.GrossAmount,
		&m.Status,
		&m.DateIssued,
		&m.DatePaid,
		&m.Description,
		&m.CategoryID,
		&m.DepartmentID,
		&m.UserID,
		&m.UserOriginal,
		&m.CreatedAt,
	}
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices i WHERE i.invoice_id = $1;`

	var m models.Invoice
	if err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(invoiceScanTargets(&m)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	inv := mapping.ToDomainInvoice(m)
	return &inv, nil
}

func (r *PgxInvoiceRepository) InvoiceNumberExists(ctx context.Context, invoiceNumber, categoryID string, departmentID *string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invoices
			WHERE invoice_number = $1
				AND category_id = $2
				AND department_id IS NOT DISTINCT FROM $3::uuid
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, invoiceNumber, categoryID, departmentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check invoice number: %w", err)
	}
	return exists, nil
}

func (r *PgxInvoiceRepository) ListInvoiceHistory(ctx context.Context, rng domain.DateRange, limit int, after *portsrepo.InvoiceCursor) ([]domain.InvoiceHistoryItem, error) {
	var cursorAt *time.Time
	var cursorID *string
	if after != nil {
		cursorAt = &after.CreatedAt
		cursorID = &after.InvoiceID
	}

	query := `
		SELECT ` + invoiceColumns + `, c.name, c.icon, d.name
		FROM invoices i
		JOIN categories c ON c.category_id = i.category_id
		LEFT JOIN departments d ON d.department_id = i.department_id
		WHERE i.date_issued BETWEEN $1 AND $2
			AND ($3::timestamptz IS NULL OR (i.created_at, i.invoice_id) < ($3::timestamptz, $4::uuid))
		ORDER BY i.created_at DESC, i.invoice_id DESC
		LIMIT $5;
	`
	rows, err := r.Pool.Query(ctx, query, rng.From, rng.To, cursorAt, cursorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice history: %w", err)
	}
	defer rows.Close()

	items := []domain.InvoiceHistoryItem{}
	for rows.Next() {
		var m models.Invoice
		var item domain.InvoiceHistoryItem
		targets := append(invoiceScanTargets(&m), &item.CategoryName, &item.CategoryIcon, &item.DepartmentName)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan invoice history row: %w", err)
		}
		item.Invoice = mapping.ToDomainInvoice(m)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice history rows: %w", err)
	}
	return items, nil
}

func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, delta domain.RollupDelta) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (invoice_id, invoice_number, type, net_amount, vat_amount, vat_rate, gross_amount,
			status, date_issued, date_paid, description, category_id, department_id, user_id, user_original, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.Type,
		m.NetAmount,
		m.VatAmount,
		m.VatRate,
		m.GrossAmount,
		m.Status,
		m.DateIssued,
		m.DatePaid,
		m.Description,
		m.CategoryID,
		m.DepartmentID,
		m.UserID,
		m.UserOriginal,
		m.CreatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolation:
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		case foreignKeyViolation:
			return fmt.Errorf("%w: category or department does not exist", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to insert invoice %s: %w", m.InvoiceID, err)
	}

	if err := applyRollupDelta(ctx, tx, invoice, delta); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoice domain.Invoice, delta domain.RollupDelta) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoice.InvoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoice.InvoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyRollupDelta(ctx, tx, invoice, delta); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, datePaid *time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE invoices SET status = $2, date_paid = $3 WHERE invoice_id = $1;`,
		invoiceID, string(status), datePaid)
	if err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// applyRollupDelta adds delta to the month and year rows of the invoice's
// issue date. The additive upsert lets concurrent writers to one period
// serialize on the row lock.
func applyRollupDelta(ctx context.Context, tx pgx.Tx, invoice domain.Invoice, delta domain.RollupDelta) error {
	day, month, year := accounting.MonthKey(invoice)

	monthQuery := `
		INSERT INTO month_history (day, month, year, expense, income, vat_paid, vat_owed, vat_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (day, month, year) DO UPDATE SET
			expense = month_history.expense + EXCLUDED.expense,
			income = month_history.income + EXCLUDED.income,
			vat_paid = month_history.vat_paid + EXCLUDED.vat_paid,
			vat_owed = month_history.vat_owed + EXCLUDED.vat_owed,
			vat_balance = month_history.vat_balance + EXCLUDED.vat_balance;
	`
	if _, err := tx.Exec(ctx, monthQuery, day, month, year,
		delta.Expense, delta.Income, delta.VatPaid, delta.VatOwed, delta.VatBalance); err != nil {
		return fmt.Errorf("failed to update month history %d-%02d-%02d: %w", year, month, day, err)
	}

	yearQuery := `
		INSERT INTO year_history (month, year, expense, income, vat_paid, vat_owed, vat_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (month, year) DO UPDATE SET
			expense = year_history.expense + EXCLUDED.expense,
			income = year_history.income + EXCLUDED.income,
			vat_paid = year_history.vat_paid + EXCLUDED.vat_paid,
			vat_owed = year_history.vat_owed + EXCLUDED.vat_owed,
			vat_balance = year_history.vat_balance + EXCLUDED.vat_balance;
	`
	if _, err := tx.Exec(ctx, yearQuery, month, year,
		delta.Expense, delta.Income, delta.VatPaid, delta.VatOwed, delta.VatBalance); err != nil {
		return fmt.Errorf("failed to update year history %d-%02d: %w", year, month, err)
	}
	return nil
}
