package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType indicates the direction of an invoice.
type InvoiceType string

const (
	// Incoming is a received invoice, an expense.
	Incoming InvoiceType = "ULAZNI_RACUN"
	// Outgoing is an issued invoice, income.
	Outgoing InvoiceType = "IZLAZNI_RACUN"
)

// Valid reports whether t is one of the known invoice types.
func (t InvoiceType) Valid() bool {
	return t == Incoming || t == Outgoing
}

// InvoiceStatus is the payment status of an invoice.
type InvoiceStatus string

const (
	StatusUnpaid InvoiceStatus = "NEPLACENO"
	StatusPaid   InvoiceStatus = "PLACENO"
	StatusLate   InvoiceStatus = "KASNJENJE"
	StatusVoid   InvoiceStatus = "STORNIRANO"
)

// Valid reports whether s is one of the known statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusUnpaid, StatusPaid, StatusLate, StatusVoid:
		return true
	}
	return false
}

// Invoice is a single incoming or outgoing invoice.
type Invoice struct {
	InvoiceID     string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Type          InvoiceType     `json:"type"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	VatAmount     decimal.Decimal `json:"vatAmount"`
	VatRate       decimal.Decimal `json:"vatRate"`
	GrossAmount   decimal.Decimal `json:"grossAmount"`
	Status        InvoiceStatus   `json:"status"`
	DateIssued    time.Time       `json:"dateIssued"`
	DatePaid      *time.Time      `json:"datePaid,omitempty"`
	Description   *string         `json:"description,omitempty"`
	CategoryID    string          `json:"categoryId"`
	DepartmentID  *string         `json:"departmentId,omitempty"`
	CreatorFields
}

// Normalize truncates both dates to the UTC start of day and clears
// DatePaid for any status other than PLACENO.
func (i *Invoice) Normalize() {
	i.DateIssued = StartOfDayUTC(i.DateIssued)
	if i.Status != StatusPaid || i.DatePaid == nil {
		i.DatePaid = nil
		return
	}
	paid := StartOfDayUTC(*i.DatePaid)
	i.DatePaid = &paid
}

// InvoiceHistoryItem is an invoice joined with the display fields of its
// category, department and creator.
type InvoiceHistoryItem struct {
	Invoice
	CategoryName    string  `json:"category"`
	CategoryIcon    string  `json:"categoryIcon"`
	DepartmentName  *string `json:"department,omitempty"`
	FormattedAmount string  `json:"formattedAmount"`
}
