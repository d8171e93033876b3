package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUserHistory lists users newest first with their invoice counts.
	ListUserHistory(ctx context.Context) ([]domain.UserHistoryItem, error)
}

// UserAdminSvc defines operations reserved for administrators.
type UserAdminSvc interface {
	// PromoteUser sets the role of the user with the given email.
	PromoteUser(ctx context.Context, email string, role domain.UserRole) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAdminSvc
}
