package accounting

import (
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateVAT returns net * rate / 100 rounded to cents.
func CalculateVAT(net, rate decimal.Decimal) decimal.Decimal {
	return net.Mul(rate).Div(hundred).Round(2)
}

// ComputeAmounts fills in the VAT and gross amounts of an invoice.
// A nil manualVat means the VAT is derived from the rate; otherwise the
// supplied value is kept. Gross is always net + VAT.
func ComputeAmounts(net, rate decimal.Decimal, manualVat *decimal.Decimal) (vat, gross decimal.Decimal) {
	if manualVat != nil {
		vat = manualVat.Round(2)
	} else {
		vat = CalculateVAT(net, rate)
	}
	return vat, net.Add(vat)
}

// CalculateContribution applies the sign convention of the rollup tables to an invoice.
// Incoming invoices add to expense, VAT paid and VAT balance.
// Outgoing invoices add to income and VAT owed and subtract from VAT balance.
func CalculateContribution(inv domain.Invoice) (domain.RollupDelta, error) {
	delta := domain.RollupDelta{
		Expense:    decimal.Zero,
		Income:     decimal.Zero,
		VatPaid:    decimal.Zero,
		VatOwed:    decimal.Zero,
		VatBalance: decimal.Zero,
	}
	switch inv.Type {
	case domain.Incoming:
		delta.Expense = inv.GrossAmount
		delta.VatPaid = inv.VatAmount
		delta.VatBalance = inv.VatAmount
	case domain.Outgoing:
		delta.Income = inv.GrossAmount
		delta.VatOwed = inv.VatAmount
		delta.VatBalance = inv.VatAmount.Neg()
	default:
		return delta, fmt.Errorf("unknown invoice type '%s' encountered for invoice %s", inv.Type, inv.InvoiceNumber)
	}
	return delta, nil
}

// MonthKey returns the (day, month, year) of the MonthHistory row an invoice belongs to.
func MonthKey(inv domain.Invoice) (day, month, year int) {
	d := domain.StartOfDayUTC(inv.DateIssued)
	return d.Day(), int(d.Month()), d.Year()
}

// ValidateVAT checks that a client supplied VAT amount matches the VAT derived from the rate.
func ValidateVAT(derived, supplied decimal.Decimal) error {
	if !derived.Equal(supplied) {
		return fmt.Errorf("VAT amount %s does not match the rate, expected %s; set manualVat to override", supplied.StringFixed(2), derived.StringFixed(2))
	}
	return nil
}

// ValidateGross checks that a client supplied gross amount matches net + VAT.
func ValidateGross(net, vat, gross decimal.Decimal) error {
	if !net.Add(vat).Equal(gross) {
		return fmt.Errorf("gross amount %s does not equal net %s plus VAT %s", gross.StringFixed(2), net.StringFixed(2), vat.StringFixed(2))
	}
	return nil
}
