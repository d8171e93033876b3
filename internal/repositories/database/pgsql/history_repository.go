package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHistoryRepository struct {
	BaseRepository
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) FindYearHistory(ctx context.Context, year int) ([]domain.YearHistory, error) {
	query := `
		SELECT month, year, expense, income, vat_paid, vat_owed, vat_balance
		FROM year_history
		WHERE year = $1
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query year history %d: %w", year, err)
	}
	defer rows.Close()

	result := []domain.YearHistory{}
	for rows.Next() {
		var h domain.YearHistory
		if err := rows.Scan(&h.Month, &h.Year, &h.Expense, &h.Income, &h.VatPaid, &h.VatOwed, &h.VatBalance); err != nil {
			return nil, fmt.Errorf("failed to scan year history row: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year history rows: %w", err)
	}
	return result, nil
}

func (r *PgxHistoryRepository) FindMonthHistory(ctx context.Context, year, month int) ([]domain.MonthHistory, error) {
	query := `
		SELECT day, month, year, expense, income, vat_paid, vat_owed, vat_balance
		FROM month_history
		WHERE year = $1 AND month = $2
		ORDER BY day;
	`
	rows, err := r.Pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query month history %d-%02d: %w", year, month, err)
	}
	defer rows.Close()

	result := []domain.MonthHistory{}
	for rows.Next() {
		var h domain.MonthHistory
		if err := rows.Scan(&h.Day, &h.Month, &h.Year, &h.Expense, &h.Income, &h.VatPaid, &h.VatOwed, &h.VatBalance); err != nil {
			return nil, fmt.Errorf("failed to scan month history row: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating month history rows: %w", err)
	}
	return result, nil
}

const rollupSums = `
	COALESCE(SUM(CASE WHEN type = 'ULAZNI_RACUN' THEN gross_amount ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN type = 'IZLAZNI_RACUN' THEN gross_amount ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN type = 'ULAZNI_RACUN' THEN vat_amount ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN type = 'IZLAZNI_RACUN' THEN vat_amount ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN type = 'ULAZNI_RACUN' THEN vat_amount ELSE -vat_amount END), 0)
`

// RebuildRollups replaces both rollup tables with aggregates computed from
// the invoices table and returns the number of month rows written.
func (r *PgxHistoryRepository) RebuildRollups(ctx context.Context) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	// Writers block until the rebuild commits.
	if _, err := tx.Exec(ctx, `LOCK TABLE month_history, year_history IN EXCLUSIVE MODE;`); err != nil {
		return 0, fmt.Errorf("failed to lock rollup tables: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM month_history;`); err != nil {
		return 0, fmt.Errorf("failed to clear month history: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM year_history;`); err != nil {
		return 0, fmt.Errorf("failed to clear year history: %w", err)
	}

	monthTag, err := tx.Exec(ctx, `
		INSERT INTO month_history (day, month, year, expense, income, vat_paid, vat_owed, vat_balance)
		SELECT EXTRACT(DAY FROM date_issued)::int, EXTRACT(MONTH FROM date_issued)::int, EXTRACT(YEAR FROM date_issued)::int,
		`+rollupSums+`
		FROM invoices
		GROUP BY 1, 2, 3;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild month history: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO year_history (month, year, expense, income, vat_paid, vat_owed, vat_balance)
		SELECT EXTRACT(MONTH FROM date_issued)::int, EXTRACT(YEAR FROM date_issued)::int,
		`+rollupSums+`
		FROM invoices
		GROUP BY 1, 2;
	`); err != nil {
		return 0, fmt.Errorf("failed to rebuild year history: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return monthTag.RowsAffected(), nil
}
