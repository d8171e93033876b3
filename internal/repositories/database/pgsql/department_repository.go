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

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(db *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

const departmentSelect = `
	SELECT d.department_id, d.name, d.description, d.user_id, d.user_original, d.created_at,
		(SELECT COUNT(*) FROM invoices i WHERE i.department_id = d.department_id) AS invoice_count
	FROM departments d
`

func scanDepartment(row pgx.Row, m *models.Department) error {
	return row.Scan(
		&m.DepartmentID,
		&m.Name,
		&m.Description,
		&m.UserID,
		&m.UserOriginal,
		&m.CreatedAt,
		&m.InvoiceCount,
	)
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	var m models.Department
	if err := scanDepartment(r.Pool.QueryRow(ctx, departmentSelect+`WHERE d.department_id = $1;`, departmentID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID %s: %w", departmentID, err)
	}
	d := mapping.ToDomainDepartment(m)
	return &d, nil
}

func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.Pool.Query(ctx, departmentSelect+`ORDER BY d.name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var m models.Department
		if err := scanDepartment(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, mapping.ToDomainDepartment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	query := `
		INSERT INTO departments (department_id, name, description, user_id, user_original, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.DepartmentID, m.Name, m.Description, m.UserID, m.UserOriginal, m.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return fmt.Errorf("%w: department %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save department: %w", err)
	}
	return nil
}

func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string, replacementID *string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if replacementID != nil {
		if _, err := tx.Exec(ctx, `UPDATE invoices SET department_id = $2 WHERE department_id = $1;`, departmentID, *replacementID); err != nil {
			if pgErrorCode(err) == uniqueViolation {
				return fmt.Errorf("%w: invoice numbers collide in the replacement department", apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to reassign invoices of department %s: %w", departmentID, err)
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return fmt.Errorf("%w: department %s still has invoices", apperrors.ErrInUse, departmentID)
		}
		return fmt.Errorf("failed to delete department %s: %w", departmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
