package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	historyRepo   portsrepo.HistoryRepositoryFacade
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock replaces the clock used to pick the default history period.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.clock = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, historyRepo portsrepo.HistoryRepositoryFacade, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		reportingRepo: repo,
		historyRepo:   historyRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) BalanceStats(ctx context.Context, rng domain.DateRange) (*domain.BalanceStats, error) {
	totals, err := s.reportingRepo.GetTypeTotals(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to get type totals",
			slog.Time("from", rng.From),
			slog.Time("to", rng.To))
		return nil, fmt.Errorf("failed to get balance stats: %w", err)
	}

	stats := domain.NewBalanceStats(totals)
	return &stats, nil
}

func (s *reportingService) CategoryStats(ctx context.Context, rng domain.DateRange) ([]domain.CategoryStat, error) {
	stats, err := s.reportingRepo.GetCategoryTotals(ctx, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to get category totals",
			slog.Time("from", rng.From),
			slog.Time("to", rng.To))
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	if stats == nil {
		stats = []domain.CategoryStat{}
	}
	return stats, nil
}

func (s *reportingService) Overview(ctx context.Context, rng domain.DateRange) (*domain.Overview, error) {
	var overview domain.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		balance, err := s.BalanceStats(gctx, rng)
		if err != nil {
			return err
		}
		overview.Balance = *balance
		return nil
	})
	g.Go(func() error {
		categories, err := s.CategoryStats(gctx, rng)
		if err != nil {
			return err
		}
		overview.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *reportingService) HistoryData(ctx context.Context, timeframe domain.HistoryTimeframe, year, month int) ([]domain.HistoryPoint, error) {
	switch timeframe {
	case domain.TimeframeYear:
		rows, err := s.historyRepo.FindYearHistory(ctx, year)
		if err != nil {
			s.LogError(ctx, err, "Failed to read year history", slog.Int("year", year))
			return nil, err
		}
		return yearSeries(year, rows), nil

	case domain.TimeframeMonth:
		if month < 1 || month > 12 {
			return nil, validation.Field("month", "must be between 1 and 12")
		}
		rows, err := s.historyRepo.FindMonthHistory(ctx, year, month)
		if err != nil {
			s.LogError(ctx, err, "Failed to read month history", slog.Int("year", year), slog.Int("month", month))
			return nil, err
		}
		return monthSeries(year, month, rows), nil
	}
	return nil, validation.Field("timeframe", "must be one of: month year")
}

// yearSeries expands the stored months of a year into twelve buckets.
func yearSeries(year int, rows []domain.YearHistory) []domain.HistoryPoint {
	if len(rows) == 0 {
		return []domain.HistoryPoint{}
	}
	points := make([]domain.HistoryPoint, 12)
	for i := range points {
		points[i] = domain.HistoryPoint{Year: year, Month: i + 1, Income: decimal.Zero, Expense: decimal.Zero, VatBalance: decimal.Zero}
	}
	for _, r := range rows {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		points[r.Month-1].Income = r.Income
		points[r.Month-1].Expense = r.Expense
		points[r.Month-1].VatBalance = r.VatBalance
	}
	return points
}

// monthSeries expands the stored days of a month into one bucket per calendar day.
func monthSeries(year, month int, rows []domain.MonthHistory) []domain.HistoryPoint {
	if len(rows) == 0 {
		return []domain.HistoryPoint{}
	}
	days := daysIn(year, month)
	points := make([]domain.HistoryPoint, days)
	for i := range points {
		day := i + 1
		points[i] = domain.HistoryPoint{Year: year, Month: month, Day: &day, Income: decimal.Zero, Expense: decimal.Zero, VatBalance: decimal.Zero}
	}
	for _, r := range rows {
		if r.Day < 1 || r.Day > days {
			continue
		}
		points[r.Day-1].Income = r.Income
		points[r.Day-1].Expense = r.Expense
		points[r.Day-1].VatBalance = r.VatBalance
	}
	return points
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (s *reportingService) HistoryPeriods(ctx context.Context) ([]int, error) {
	years, err := s.reportingRepo.GetInvoiceYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice years")
		return nil, err
	}
	if len(years) == 0 {
		return []int{s.Now().Year()}, nil
	}
	return years, nil
}

func (s *reportingService) RebuildRollups(ctx context.Context) (int64, error) {
	rows, err := s.historyRepo.RebuildRollups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to rebuild rollups")
		return 0, err
	}
	s.LogInfo(ctx, "Rollups rebuilt", slog.Int64("month_rows", rows))
	return rows, nil
}
