package pgsql

import (
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(dbPool),
		CategoryRepo:   newPgxCategoryRepository(dbPool),
		DepartmentRepo: newPgxDepartmentRepository(dbPool),
		InvoiceRepo:    newPgxInvoiceRepository(dbPool),
		HistoryRepo:    newPgxHistoryRepository(dbPool),
		ReportingRepo:  newReportingRepository(dbPool),
		TokenRepo:      newPgxTokenRepository(dbPool),
	}
}
