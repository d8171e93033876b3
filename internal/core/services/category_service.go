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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, invoiceType *domain.InvoiceType) ([]domain.Category, error) {
	if invoiceType != nil && !invoiceType.Valid() {
		return nil, validation.Field("type", "must be one of: ULAZNI_RACUN IZLAZNI_RACUN")
	}
	categories, err := s.categoryRepo.ListCategories(ctx, invoiceType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

// ensureUniqueName fails when another category already uses (name, type).
func (s *categoryService) ensureUniqueName(ctx context.Context, name string, invoiceType domain.InvoiceType, selfID string) error {
	existing, err := s.categoryRepo.FindCategoryByNameAndType(ctx, name, invoiceType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.CategoryID == selfID {
		return nil
	}
	return fmt.Errorf("%w: category %s of type %s already exists", apperrors.ErrDuplicate, name, invoiceType)
}

func (s *categoryService) CreateCategory(ctx context.Context, identity domain.Identity, req dto.CreateCategoryRequest) (*domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	if err := s.ensureUniqueName(ctx, req.Name, req.Type, ""); err != nil {
		return nil, err
	}

	category := domain.Category{
		CategoryID:    uuid.NewString(),
		Name:          req.Name,
		Icon:          req.Icon,
		Type:          req.Type,
		Description:   req.Description,
		CreatorFields: domain.StampedBy(identity, s.Now()),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", category.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("type", string(category.Type)))
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, identity domain.Identity, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if res := validation.Validate(req); !res.OK() {
		return nil, res.Err()
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	// Invoices must keep the type of their category.
	if category.Type != req.Type && category.InvoiceCount > 0 {
		return nil, validation.Field("type", "cannot change while the category has invoices")
	}

	if err := s.ensureUniqueName(ctx, req.Name, req.Type, categoryID); err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Icon = req.Icon
	category.Type = req.Type
	category.Description = req.Description

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated",
		slog.String("category_id", categoryID),
		slog.String("user_id", identity.UserID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, identity domain.Identity, categoryID string, replacementID *string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}

	if replacementID == nil {
		if category.InvoiceCount > 0 {
			return fmt.Errorf("%w: category %s has %d invoices, a replacement category is required",
				apperrors.ErrInUse, category.Name, category.InvoiceCount)
		}
	} else {
		if *replacementID == categoryID {
			return validation.Field("replacementId", "must differ from the deleted category")
		}
		replacement, err := s.categoryRepo.FindCategoryByID(ctx, *replacementID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return validation.Field("replacementId", "category does not exist")
			}
			return err
		}
		if replacement.Type != category.Type {
			return validation.Field("replacementId", "must have the same type as the deleted category")
		}
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID, replacementID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	attrs := []any{slog.String("category_id", categoryID), slog.String("user_id", identity.UserID)}
	if replacementID != nil {
		attrs = append(attrs, slog.String("replacement_id", *replacementID))
	}
	s.LogInfo(ctx, "Category deleted", attrs...)
	return nil
}
