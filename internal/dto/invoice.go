package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is the payload of POST /api/invoices.
// VatAmount is taken as is when ManualVat is set; otherwise it is
// derived from the rate and a supplied VatAmount must match it.
// GrossAmount is optional and, when present, must equal net + VAT.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" validate:"required,min=1,max=100"`
	Type          domain.InvoiceType   `json:"type" validate:"required,oneof=ULAZNI_RACUN IZLAZNI_RACUN"`
	NetAmount     decimal.Decimal      `json:"netAmount" validate:"money"`
	VatRate       decimal.Decimal      `json:"vatRate" validate:"vatrate"`
	VatAmount     *decimal.Decimal     `json:"vatAmount" validate:"omitempty,money_nonneg"`
	ManualVat     bool                 `json:"manualVat"`
	GrossAmount   *decimal.Decimal     `json:"grossAmount" validate:"omitempty,money"`
	Status        domain.InvoiceStatus `json:"status" validate:"required,oneof=NEPLACENO PLACENO KASNJENJE STORNIRANO"`
	DateIssued    time.Time            `json:"dateIssued" validate:"required"`
	DatePaid      *time.Time           `json:"datePaid"`
	Description   *string              `json:"description" validate:"omitempty,max=500"`
	CategoryID    string               `json:"categoryId" validate:"required,uuid"`
	DepartmentID  *string              `json:"departmentId" validate:"omitempty,uuid"`
}

// UpdateInvoiceStatusRequest is the payload of PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status   domain.InvoiceStatus `json:"status" validate:"required,oneof=NEPLACENO PLACENO KASNJENJE STORNIRANO"`
	DatePaid *time.Time           `json:"datePaid"`
}

// ListInvoicesParams are the query parameters of GET /api/invoice-history.
type ListInvoicesParams struct {
	From      string  `form:"from" binding:"required"`
	To        string  `form:"to" binding:"required"`
	Limit     int     `form:"limit,default=100"`
	NextToken *string `form:"nextToken"`
}

type InvoiceResponse struct {
	InvoiceID       string               `json:"id"`
	InvoiceNumber   string               `json:"invoiceNumber"`
	Type            domain.InvoiceType   `json:"type"`
	NetAmount       decimal.Decimal      `json:"netAmount"`
	VatAmount       decimal.Decimal      `json:"vatAmount"`
	VatRate         decimal.Decimal      `json:"vatRate"`
	GrossAmount     decimal.Decimal      `json:"grossAmount"`
	Status          domain.InvoiceStatus `json:"status"`
	DateIssued      time.Time            `json:"dateIssued"`
	DatePaid        *time.Time           `json:"datePaid,omitempty"`
	Description     *string              `json:"description,omitempty"`
	CategoryID      string               `json:"categoryId"`
	DepartmentID    *string              `json:"departmentId,omitempty"`
	UserID          string               `json:"userId"`
	UserOriginal    string               `json:"userOriginal"`
	CreatedAt       time.Time            `json:"createdAt"`
	Category        string               `json:"category,omitempty"`
	CategoryIcon    string               `json:"categoryIcon,omitempty"`
	Department      *string              `json:"department,omitempty"`
	FormattedAmount string               `json:"formattedAmount,omitempty"`
}

func ToInvoiceResponse(i *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     i.InvoiceID,
		InvoiceNumber: i.InvoiceNumber,
		Type:          i.Type,
		NetAmount:     i.NetAmount,
		VatAmount:     i.VatAmount,
		VatRate:       i.VatRate,
		GrossAmount:   i.GrossAmount,
		Status:        i.Status,
		DateIssued:    i.DateIssued,
		DatePaid:      i.DatePaid,
		Description:   i.Description,
		CategoryID:    i.CategoryID,
		DepartmentID:  i.DepartmentID,
		UserID:        i.CreatorUserID,
		UserOriginal:  i.CreatorDisplayName,
		CreatedAt:     i.CreatedAt,
	}
}

func ToInvoiceHistoryResponse(item *domain.InvoiceHistoryItem) InvoiceResponse {
	resp := ToInvoiceResponse(&item.Invoice)
	resp.Category = item.CategoryName
	resp.CategoryIcon = item.CategoryIcon
	resp.Department = item.DepartmentName
	resp.FormattedAmount = item.FormattedAmount
	return resp
}

// ListInvoicesResponse is one page of invoice history.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}
