package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoicing_app/cmd/docs"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultAuthRateLimit = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	// Public authentication routes
	registerAuthRoutes(api, cfg, services, authRateLimit(cfg))

	setupProtectedRoutes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// authRateLimit limits the public auth routes per client IP.
func authRateLimit(cfg *config.Config) gin.HandlerFunc {
	l, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid AUTH_RATE_LIMIT, using default",
			slog.String("value", cfg.AuthRateLimit),
			slog.String("default", defaultAuthRateLimit))
		l, _ = middleware.NewMemoryLimiter(defaultAuthRateLimit)
	}
	return middleware.RateLimit(l)
}

// setupProtectedRoutes applies AuthMiddleware and delegates to the entity route registrations.
func setupProtectedRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.SessionCookieName))

	registerUserRoutes(protected, services.User, services.Account)
	registerCategoryRoutes(protected, services.Category)
	registerDepartmentRoutes(protected, services.Department)
	registerInvoiceRoutes(protected, services.Invoice)
	registerReportingRoutes(protected, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
