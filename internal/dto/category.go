package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CreateCategoryRequest is the payload of POST /api/categories.
type CreateCategoryRequest struct {
	Name        string             `json:"name" validate:"required,min=3,max=20"`
	Icon        string             `json:"icon" validate:"required,max=20"`
	Type        domain.InvoiceType `json:"type" validate:"required,oneof=ULAZNI_RACUN IZLAZNI_RACUN"`
	Description *string            `json:"description" validate:"omitempty,max=200"`
}

// UpdateCategoryRequest replaces the editable fields of a category.
type UpdateCategoryRequest CreateCategoryRequest

// ListCategoriesParams are the query parameters of GET /api/categories.
type ListCategoriesParams struct {
	Type       string `form:"type"`
	CategoryID string `form:"categoryId"`
}

// DeleteParams names the replacement that takes over the invoices of a deleted row.
type DeleteParams struct {
	ReplacementID string `form:"replacementId"`
}

type CategoryResponse struct {
	CategoryID   string             `json:"id"`
	Name         string             `json:"name"`
	Icon         string             `json:"icon"`
	Type         domain.InvoiceType `json:"type"`
	Description  *string            `json:"description,omitempty"`
	InvoiceCount int                `json:"invoiceCount"`
	UserID       string             `json:"userId"`
	UserOriginal string             `json:"userOriginal"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		Name:         c.Name,
		Icon:         c.Icon,
		Type:         c.Type,
		Description:  c.Description,
		InvoiceCount: c.InvoiceCount,
		UserID:       c.CreatorUserID,
		UserOriginal: c.CreatorDisplayName,
		CreatedAt:    c.CreatedAt,
	}
}

func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
