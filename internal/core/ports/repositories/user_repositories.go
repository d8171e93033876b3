package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, compared case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUserHistory returns all users, newest first, with their invoice counts.
	ListUserHistory(ctx context.Context) ([]domain.UserHistoryItem, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// SetPassword stores a password hash. A non-nil verifiedAt also marks an
	// unverified email as verified; nil leaves the verification state alone.
	SetPassword(ctx context.Context, userID string, passwordHash string, verifiedAt *time.Time) error

	// UpdateRole changes the role of the user with the given email.
	UpdateRole(ctx context.Context, email string, role domain.UserRole) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
