package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// DepartmentReader defines read operations for departments.
type DepartmentReader interface {
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for departments.
type DepartmentWriter interface {
	SaveDepartment(ctx context.Context, department domain.Department) error

	// DeleteDepartment reassigns invoices to replacementID (when given) and
	// deletes the department, in one transaction.
	DeleteDepartment(ctx context.Context, departmentID string, replacementID *string) error
}

// DepartmentRepositoryFacade combines department reads and writes.
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
