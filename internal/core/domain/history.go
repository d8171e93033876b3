package domain

import "github.com/shopspring/decimal"

// RollupDelta is the signed contribution of one invoice to a rollup row.
type RollupDelta struct {
	Expense    decimal.Decimal `json:"expense"`
	Income     decimal.Decimal `json:"income"`
	VatPaid    decimal.Decimal `json:"vatPaid"`
	VatOwed    decimal.Decimal `json:"vatOwed"`
	VatBalance decimal.Decimal `json:"vatBalance"`
}

// Add returns the field-wise sum of d and o.
func (d RollupDelta) Add(o RollupDelta) RollupDelta {
	return RollupDelta{
		Expense:    d.Expense.Add(o.Expense),
		Income:     d.Income.Add(o.Income),
		VatPaid:    d.VatPaid.Add(o.VatPaid),
		VatOwed:    d.VatOwed.Add(o.VatOwed),
		VatBalance: d.VatBalance.Add(o.VatBalance),
	}
}

// Neg returns the delta that undoes d.
func (d RollupDelta) Neg() RollupDelta {
	return RollupDelta{
		Expense:    d.Expense.Neg(),
		Income:     d.Income.Neg(),
		VatPaid:    d.VatPaid.Neg(),
		VatOwed:    d.VatOwed.Neg(),
		VatBalance: d.VatBalance.Neg(),
	}
}

// MonthHistory aggregates invoices issued on one calendar day.
// Month is 1..12.
type MonthHistory struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
	RollupDelta
}

// YearHistory aggregates invoices issued in one calendar month.
type YearHistory struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	RollupDelta
}

// HistoryTimeframe selects the granularity of a history series.
type HistoryTimeframe string

const (
	TimeframeMonth HistoryTimeframe = "month"
	TimeframeYear  HistoryTimeframe = "year"
)

// HistoryPoint is one bucket of a history series. Day is set for month
// series, Month for year series.
type HistoryPoint struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Day        *int            `json:"day,omitempty"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	VatBalance decimal.Decimal `json:"vatBalance"`
}
