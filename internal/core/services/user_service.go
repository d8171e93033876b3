package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/validation"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
}

func (s *userService) ListUserHistory(ctx context.Context) ([]domain.UserHistoryItem, error) {
	items, err := s.userRepo.ListUserHistory(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user history")
		return nil, err
	}
	return items, nil
}

func (s *userService) PromoteUser(ctx context.Context, email string, role domain.UserRole) error {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return validation.Field("role", "must be one of: USER ADMIN")
	}
	if err := s.userRepo.UpdateRole(ctx, normalizeEmail(email), role); err != nil {
		return err
	}
	s.LogInfo(ctx, "User role changed", slog.String("role", string(role)))
	return nil
}
