package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CategoryReader defines read operations for categories.
type CategoryReader interface {
	// FindCategoryByID returns the category with its invoice count.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryByNameAndType looks up the (name, type) unique pair.
	FindCategoryByNameAndType(ctx context.Context, name string, invoiceType domain.InvoiceType) (*domain.Category, error)

	// ListCategories returns categories ordered by name, optionally filtered by type.
	ListCategories(ctx context.Context, invoiceType *domain.InvoiceType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for categories.
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory moves every invoice of categoryID to replacementID (when
	// given) and deletes the category, in one transaction.
	DeleteCategory(ctx context.Context, categoryID string, replacementID *string) error
}

// CategoryRepositoryFacade combines category reads and writes.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
