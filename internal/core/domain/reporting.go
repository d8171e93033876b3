package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is an inclusive [From, To] filter on DateIssued, both
// normalized to the UTC start of day.
type DateRange struct {
	From time.Time
	To   time.Time
}

// TypeTotals is the sum of gross and VAT amounts of one invoice type.
type TypeTotals struct {
	Type  InvoiceType
	Gross decimal.Decimal
	Vat   decimal.Decimal
}

// BalanceStats summarises income, expense and VAT over a date range.
type BalanceStats struct {
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	VatPaid       decimal.Decimal `json:"vatPaid"`
	VatOwed       decimal.Decimal `json:"vatOwed"`
	AmountBalance decimal.Decimal `json:"amountBalance"`
	VatBalance    decimal.Decimal `json:"vatBalance"`
}

// NewBalanceStats derives balances from per-type totals. Missing types count as zero.
func NewBalanceStats(totals []TypeTotals) BalanceStats {
	stats := BalanceStats{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		VatPaid: decimal.Zero,
		VatOwed: decimal.Zero,
	}
	for _, t := range totals {
		switch t.Type {
		case Incoming:
			stats.Expense = stats.Expense.Add(t.Gross)
			stats.VatPaid = stats.VatPaid.Add(t.Vat)
		case Outgoing:
			stats.Income = stats.Income.Add(t.Gross)
			stats.VatOwed = stats.VatOwed.Add(t.Vat)
		}
	}
	stats.AmountBalance = stats.Income.Sub(stats.Expense)
	stats.VatBalance = stats.VatPaid.Sub(stats.VatOwed)
	return stats
}

// CategoryStat is the gross total of one (type, category) group.
type CategoryStat struct {
	Type         InvoiceType     `json:"type"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"category"`
	CategoryIcon string          `json:"categoryIcon"`
	Amount       decimal.Decimal `json:"amount"`
}

// Overview bundles the dashboard figures for one date range.
type Overview struct {
	Balance    BalanceStats   `json:"balance"`
	Categories []CategoryStat `json:"categories"`
}
