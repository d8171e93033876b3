package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// HistoryReader reads the rollup tables.
type HistoryReader interface {
	// FindYearHistory returns the YearHistory rows of year ordered by month.
	FindYearHistory(ctx context.Context, year int) ([]domain.YearHistory, error)

	// FindMonthHistory returns the MonthHistory rows of one month ordered by day.
	FindMonthHistory(ctx context.Context, year, month int) ([]domain.MonthHistory, error)
}

// RollupRebuilder recomputes both rollup tables from the invoices table.
type RollupRebuilder interface {
	RebuildRollups(ctx context.Context) (int64, error)
}

// HistoryRepositoryFacade combines rollup reads with reconciliation.
type HistoryRepositoryFacade interface {
	HistoryReader
	RollupRebuilder
}
