package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, name, last_name, password_hash, email_verified, role, created_at`

func scanUser(row pgx.Row, m *models.User) error {
	return row.Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.LastName,
		&m.PasswordHash,
		&m.EmailVerified,
		&m.Role,
		&m.CreatedAt,
	)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, email, name, last_name, password_hash, email_verified, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.Name,
		m.LastName,
		m.PasswordHash,
		m.EmailVerified,
		m.Role,
		m.CreatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	var m models.User
	if err := scanUser(r.Pool.QueryRow(ctx, query, userID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1);`

	var m models.User
	if err := scanUser(r.Pool.QueryRow(ctx, query, email), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	u := mapping.ToDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) ListUserHistory(ctx context.Context) ([]domain.UserHistoryItem, error) {
	query := `
		SELECT u.user_id, u.email, u.name, u.last_name, u.password_hash, u.email_verified, u.role, u.created_at,
			(SELECT COUNT(*) FROM invoices i WHERE i.user_id = u.user_id) AS invoice_count
		FROM users u
		ORDER BY u.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query user history: %w", err)
	}
	defer rows.Close()

	items := []domain.UserHistoryItem{}
	for rows.Next() {
		var m models.User
		var count int
		if err := rows.Scan(
			&m.UserID,
			&m.Email,
			&m.Name,
			&m.LastName,
			&m.PasswordHash,
			&m.EmailVerified,
			&m.Role,
			&m.CreatedAt,
			&count,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user history row: %w", err)
		}
		items = append(items, domain.UserHistoryItem{User: mapping.ToDomainUser(m), InvoiceCount: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user history rows: %w", err)
	}
	return items, nil
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, userID string, passwordHash string, verifiedAt *time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $2,
			email_verified = COALESCE(email_verified, $3)
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, passwordHash, verifiedAt)
	if err != nil {
		return fmt.Errorf("failed to set password for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRole(ctx context.Context, email string, role domain.UserRole) error {
	query := `UPDATE users SET role = $2 WHERE lower(email) = lower($1);`
	cmdTag, err := r.Pool.Exec(ctx, query, email, string(role))
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
