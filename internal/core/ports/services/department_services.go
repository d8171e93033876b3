package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// DepartmentSvcFacade manages departments.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, identity domain.Identity, req dto.CreateDepartmentRequest) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	DeleteDepartment(ctx context.Context, identity domain.Identity, departmentID string, replacementID *string) error
}
