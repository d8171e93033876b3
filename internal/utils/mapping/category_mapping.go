package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:    d.CategoryID,
		Name:          d.Name,
		Icon:          d.Icon,
		Type:          string(d.Type),
		Description:   nullString(d.Description),
		InvoiceCount:  d.InvoiceCount,
		CreatorFields: ToModelCreatorFields(d.CreatorFields),
	}
}

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		Icon:          m.Icon,
		Type:          domain.InvoiceType(m.Type),
		Description:   stringPtr(m.Description),
		InvoiceCount:  m.InvoiceCount,
		CreatorFields: ToDomainCreatorFields(m.CreatorFields),
	}
}

func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID:  d.DepartmentID,
		Name:          d.Name,
		Description:   nullString(d.Description),
		InvoiceCount:  d.InvoiceCount,
		CreatorFields: ToModelCreatorFields(d.CreatorFields),
	}
}

func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID:  m.DepartmentID,
		Name:          m.Name,
		Description:   stringPtr(m.Description),
		InvoiceCount:  m.InvoiceCount,
		CreatorFields: ToDomainCreatorFields(m.CreatorFields),
	}
}
