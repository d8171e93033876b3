package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

const categorySelect = `
	SELECT c.category_id, c.name, c.icon, c.type, c.description, c.user_id, c.user_original, c.created_at,
		(SELECT COUNT(*) FROM invoices i WHERE i.category_id = c.category_id) AS invoice_count
	FROM categories c
`

func scanCategory(row pgx.Row, m *models.Category) error {
	return row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Icon,
		&m.Type,
		&m.Description,
		&m.UserID,
		&m.UserOriginal,
		&m.CreatedAt,
		&m.InvoiceCount,
	)
}

func (r *PgxCategoryRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Category, error) {
	var m models.Category
	if err := scanCategory(r.Pool.QueryRow(ctx, categorySelect+where, args...), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return r.findOne(ctx, `WHERE c.category_id = $1`, categoryID)
}

func (r *PgxCategoryRepository) FindCategoryByNameAndType(ctx context.Context, name string, invoiceType domain.InvoiceType) (*domain.Category, error) {
	return r.findOne(ctx, `WHERE c.name = $1 AND c.type = $2`, name, string(invoiceType))
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, invoiceType *domain.InvoiceType) ([]domain.Category, error) {
	var typeFilter *string
	if invoiceType != nil {
		t := string(*invoiceType)
		typeFilter = &t
	}

	rows, err := r.Pool.Query(ctx, categorySelect+`WHERE ($1::text IS NULL OR c.type = $1) ORDER BY c.name;`, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var m models.Category
		if err := scanCategory(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		INSERT INTO categories (category_id, name, icon, type, description, user_id, user_original, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Icon,
		m.Type,
		m.Description,
		m.UserID,
		m.UserOriginal,
		m.CreatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return fmt.Errorf("%w: category %s of type %s already exists", apperrors.ErrDuplicate, m.Name, m.Type)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, icon = $3, type = $4, description = $5
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.Icon, m.Type, m.Description)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return fmt.Errorf("%w: category %s of type %s already exists", apperrors.ErrDuplicate, m.Name, m.Type)
		}
		return fmt.Errorf("failed to update category %s: %w", m.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string, replacementID *string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if replacementID != nil {
		if _, err := tx.Exec(ctx, `UPDATE invoices SET category_id = $2 WHERE category_id = $1;`, categoryID, *replacementID); err != nil {
			if pgErrorCode(err) == uniqueViolation {
				return fmt.Errorf("%w: invoice numbers collide in the replacement category", apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to reassign invoices of category %s: %w", categoryID, err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return fmt.Errorf("%w: category %s still has invoices", apperrors.ErrInUse, categoryID)
		}
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
