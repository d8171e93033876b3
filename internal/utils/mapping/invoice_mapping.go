package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		Type:          string(d.Type),
		NetAmount:     d.NetAmount,
		VatAmount:     d.VatAmount,
		VatRate:       d.VatRate,
		GrossAmount:   d.GrossAmount,
		Status:        string(d.Status),
		DateIssued:    d.DateIssued,
		DatePaid:      nullTime(d.DatePaid),
		Description:   nullString(d.Description),
		CategoryID:    d.CategoryID,
		DepartmentID:  nullString(d.DepartmentID),
		CreatorFields: ToModelCreatorFields(d.CreatorFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		Type:          domain.InvoiceType(m.Type),
		NetAmount:     m.NetAmount,
		VatAmount:     m.VatAmount,
		VatRate:       m.VatRate,
		GrossAmount:   m.GrossAmount,
		Status:        domain.InvoiceStatus(m.Status),
		DateIssued:    m.DateIssued.UTC(),
		DatePaid:      timePtr(m.DatePaid),
		Description:   stringPtr(m.Description),
		CategoryID:    m.CategoryID,
		DepartmentID:  stringPtr(m.DepartmentID),
		CreatorFields: ToDomainCreatorFields(m.CreatorFields),
	}
}

func ToDomainToken(m models.Token) domain.Token {
	return domain.Token{TokenID: m.TokenID, Email: m.Email, Token: m.Token, Expires: m.Expires}
}

func ToModelToken(d domain.Token) models.Token {
	return models.Token{TokenID: d.TokenID, Email: d.Email, Token: d.Token, Expires: d.Expires}
}
