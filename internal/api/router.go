package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/partnerhub/admin-api/internal/api/handler"
	"github.com/partnerhub/admin-api/internal/api/middleware"
	"github.com/partnerhub/admin-api/internal/core/service"
	"github.com/partnerhub/admin-api/internal/infrastructure/config"
	"github.com/partnerhub/admin-api/internal/infrastructure/db/postgres"
)

// adminRoute is one entry of the declarative route table. Registering
// handlers and generating the gate's allow-list from the same table
// keeps the two from drifting apart.
type adminRoute struct {
	method  string
	path    string
	handler echo.HandlerFunc
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(db *postgres.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("partnerhub"))

	// --- Dependencies ---
	userRepo := postgres.NewUserAdminRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	associationRepo := postgres.NewAssociationRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	loginService := service.NewLoginService(userRepo, tokens, log)
	userService := service.NewUserAdminService(userRepo, auditRepo, db, log)
	companyService := service.NewCompanyService(companyRepo, auditRepo, db, log)
	categoryService := service.NewCategoryService(categoryRepo, auditRepo, db, log)
	associationService := service.NewAssociationService(
		associationRepo, companyRepo, categoryRepo, companyService, auditRepo, db, log)
	auditService := service.NewAuditReadService(auditRepo)

	loginHandler := handler.NewLoginHandler(loginService)
	userHandler := handler.NewUserAdminHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	associationHandler := handler.NewAssociationHandler(associationService)
	logsHandler := handler.NewLogsHandler(auditService)
	healthHandler := handler.NewHealthHandler(db)

	// --- Open routes ---
	e.POST("/login", loginHandler.Login)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Admin route table ---
	routes := []adminRoute{
		{http.MethodPost, "/useradmin/create", userHandler.Create},
		{http.MethodGet, "/useradmin/searchall", userHandler.SearchAll},
		{http.MethodGet, "/useradmin/searchbyid/:id", userHandler.SearchByID},
		{http.MethodGet, "/useradmin/searchbyusername/:username", userHandler.SearchByUsername},
		{http.MethodPut, "/useradmin/update", userHandler.Update},
		{http.MethodPut, "/useradmin/alterpassword", userHandler.AlterPassword},
		{http.MethodDelete, "/useradmin/delete/:id", userHandler.Delete},

		{http.MethodPost, "/company/create", companyHandler.Create},
		{http.MethodGet, "/company/searchall", companyHandler.SearchAll},
		{http.MethodGet, "/company/searchbyid/:id", companyHandler.SearchByID},
		{http.MethodGet, "/company/searchbyname/:name", companyHandler.SearchByName},
		{http.MethodPut, "/company/update", companyHandler.Update},
		{http.MethodDelete, "/company/changestatus/:id", companyHandler.ChangeStatus},

		{http.MethodPost, "/category/create", categoryHandler.Create},
		{http.MethodGet, "/category/searchall", categoryHandler.SearchAll},
		{http.MethodGet, "/category/searchbyid/:id", categoryHandler.SearchByID},
		{http.MethodGet, "/category/searchbyname/:name", categoryHandler.SearchByName},
		{http.MethodPut, "/category/update", categoryHandler.Update},
		{http.MethodDelete, "/category/changestatus/:id", categoryHandler.ChangeStatus},

		{http.MethodPost, "/associate/create", associationHandler.Create},
		{http.MethodGet, "/associate/searchall", associationHandler.SearchAll},
		{http.MethodGet, "/associate/searchbyidcategory/:id", associationHandler.SearchByCategory},
		{http.MethodGet, "/associate/searchbyidcompany/:id", associationHandler.SearchByCompany},
		{http.MethodDelete, "/associate/delete", associationHandler.Delete},

		{http.MethodGet, "/logs/useradmin", logsHandler.UserAdminLogs},
		{http.MethodGet, "/logs/useradmin/:id", logsHandler.UserAdminLogsByID},
		{http.MethodGet, "/logs/company", logsHandler.CompanyLogs},
		{http.MethodGet, "/logs/company/:id", logsHandler.CompanyLogsByID},
		{http.MethodGet, "/logs/category", logsHandler.CategoryLogs},
		{http.MethodGet, "/logs/category/:id", logsHandler.CategoryLogsByID},
		{http.MethodGet, "/logs/associate", logsHandler.AssociationLogs},
		{http.MethodGet, "/logs/associate/bycompany/:id", logsHandler.AssociationLogsByCompany},
		{http.MethodGet, "/logs/associate/bycategory/:id", logsHandler.AssociationLogsByCategory},
	}

	gate := middleware.AdminGate(tokens, allowlist(routes))
	for _, r := range routes {
		e.Add(r.method, r.path, r.handler, gate)
	}

	return e
}

// allowlist derives the gate's route patterns from the route table.
func allowlist(routes []adminRoute) []string {
	patterns := make([]string, len(routes))
	for i, r := range routes {
		patterns[i] = r.path
	}
	return patterns
}
