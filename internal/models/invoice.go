package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	Type          string          `db:"type"`
	NetAmount     decimal.Decimal `db:"net_amount"`
	VatAmount     decimal.Decimal `db:"vat_amount"`
	VatRate       decimal.Decimal `db:"vat_rate"`
	GrossAmount   decimal.Decimal `db:"gross_amount"`
	Status        string          `db:"status"`
	DateIssued    time.Time       `db:"date_issued"`
	DatePaid      sql.NullTime    `db:"date_paid"`
	Description   sql.NullString  `db:"description"`
	CategoryID    string          `db:"category_id"`
	DepartmentID  sql.NullString  `db:"department_id"`
	CreatorFields
}

// Token is a row of the verification_tokens or password_reset_tokens table.
type Token struct {
	TokenID string    `db:"token_id"`
	Email   string    `db:"email"`
	Token   string    `db:"token"`
	Expires time.Time `db:"expires"`
}
