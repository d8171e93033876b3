package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRangeParams are the from/to query parameters of the stats endpoints.
type DateRangeParams struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// HistoryDataParams are the query parameters of GET /api/history-data.
type HistoryDataParams struct {
	Timeframe domain.HistoryTimeframe `form:"timeframe" validate:"required,oneof=month year"`
	Year      int                     `form:"year" validate:"required,gte=2020,lte=3000"`
	Month     int                     `form:"month" validate:"omitempty,gte=1,lte=12"`
}

// BalanceStatsResponse is the body of GET /api/stats/balance.
type BalanceStatsResponse struct {
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	VatPaid       decimal.Decimal `json:"vatPaid"`
	VatOwed       decimal.Decimal `json:"vatOwed"`
	AmountBalance decimal.Decimal `json:"amountBalance"`
	VatBalance    decimal.Decimal `json:"vatBalance"`
}

func ToBalanceStatsResponse(s domain.BalanceStats) BalanceStatsResponse {
	return BalanceStatsResponse(s)
}

// CategoryStatResponse is one row of GET /api/stats/categories.
type CategoryStatResponse struct {
	Type         domain.InvoiceType `json:"type"`
	CategoryID   string             `json:"categoryId"`
	Category     string             `json:"category"`
	CategoryIcon string             `json:"categoryIcon"`
	Amount       decimal.Decimal    `json:"amount"`
}

func ToCategoryStatsResponse(stats []domain.CategoryStat) []CategoryStatResponse {
	out := make([]CategoryStatResponse, len(stats))
	for i, s := range stats {
		out[i] = CategoryStatResponse{
			Type:         s.Type,
			CategoryID:   s.CategoryID,
			Category:     s.CategoryName,
			CategoryIcon: s.CategoryIcon,
			Amount:       s.Amount,
		}
	}
	return out
}

// OverviewResponse is the body of GET /api/stats/overview.
type OverviewResponse struct {
	Balance    BalanceStatsResponse   `json:"balance"`
	Categories []CategoryStatResponse `json:"categories"`
}

// HistoryPeriodsResponse lists the years that have invoices.
type HistoryPeriodsResponse struct {
	Years []int `json:"years"`
}
