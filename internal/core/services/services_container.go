package services

import (
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(
			repos.UserRepo,
			repos.TokenRepo,
			mailer,
			WithAccountTokenTTL(cfg.AccountTokenTTL),
		),
		User:               NewUserService(repos.UserRepo),
		Category:           NewCategoryService(repos.CategoryRepo),
		Department:         NewDepartmentService(repos.DepartmentRepo),
		Invoice:            NewInvoiceService(repos.InvoiceRepo, repos.CategoryRepo, repos.DepartmentRepo),
		Reporting:          NewReportingService(repos.ReportingRepo, repos.HistoryRepo),
		TokenService:       NewTokenService(cfg),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}
