package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, invoiceType *domain.InvoiceType) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories.
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, identity domain.Identity, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, identity domain.Identity, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	// DeleteCategory removes a category. When invoices reference it, they are
	// moved to replacementID, which must be another category of the same type.
	DeleteCategory(ctx context.Context, identity domain.Identity, categoryID string, replacementID *string) error
}

// CategorySvcFacade combines category reads and writes.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
