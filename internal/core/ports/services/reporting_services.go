package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// ReportingSvcFacade defines the statistics read by the dashboard.
type ReportingSvcFacade interface {
	// BalanceStats sums income, expense and VAT of invoices within rng.
	BalanceStats(ctx context.Context, rng domain.DateRange) (*domain.BalanceStats, error)

	// CategoryStats groups gross totals by type and category within rng.
	CategoryStats(ctx context.Context, rng domain.DateRange) ([]domain.CategoryStat, error)

	// Overview fetches balance and category stats for rng concurrently.
	Overview(ctx context.Context, rng domain.DateRange) (*domain.Overview, error)

	// HistoryData returns a zero-filled series read from the rollup tables.
	// month is ignored for the year timeframe.
	HistoryData(ctx context.Context, timeframe domain.HistoryTimeframe, year, month int) ([]domain.HistoryPoint, error)

	// HistoryPeriods lists the years that have invoices, or the current year.
	HistoryPeriods(ctx context.Context) ([]int, error)

	// RebuildRollups recomputes the rollup tables from invoices.
	RebuildRollups(ctx context.Context) (int64, error)
}
