package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/google/uuid"
)

type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(repo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: repo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, identity domain.Identity, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	req.Name = strings.TrimSpace(req.Name)
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	department := domain.Department{
		DepartmentID:  uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		CreatorFields: domain.StampedBy(identity, s.Now()),
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save department", slog.String("name", department.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Department created", slog.String("department_id", department.DepartmentID))
	return &department, nil
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, err
	}
	return departments, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, identity domain.Identity, departmentID string, replacementID *string) error {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return err
	}

	if replacementID == nil {
		if department.InvoiceCount > 0 {
			return fmt.Errorf("%w: department %s has %d invoices, a replacement department is required",
				apperrors.ErrInUse, department.Name, department.InvoiceCount)
		}
	} else {
		if *replacementID == departmentID {
			return validation.Field("replacementId", "must differ from the deleted department")
		}
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *replacementID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return validation.Field("replacementId", "department does not exist")
			}
			return err
		}
	}

	if err := s.departmentRepo.DeleteDepartment(ctx, departmentID, replacementID); err != nil {
		s.LogError(ctx, err, "Failed to delete department", slog.String("department_id", departmentID))
		return err
	}

	s.LogInfo(ctx, "Department deleted",
		slog.String("department_id", departmentID),
		slog.String("user_id", identity.UserID))
	return nil
}
