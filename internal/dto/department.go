package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CreateDepartmentRequest is the payload of POST /api/departments.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=20"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type DepartmentResponse struct {
	DepartmentID string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	InvoiceCount int       `json:"invoiceCount"`
	UserID       string    `json:"userId"`
	UserOriginal string    `json:"userOriginal"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
		InvoiceCount: d.InvoiceCount,
		UserID:       d.CreatorUserID,
		UserOriginal: d.CreatorDisplayName,
		CreatedAt:    d.CreatedAt,
	}
}

func ToListDepartmentResponse(departments []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, len(departments))
	for i := range departments {
		out[i] = ToDepartmentResponse(&departments[i])
	}
	return out
}
