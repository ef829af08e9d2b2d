package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/auth"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/export"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OpportunityUC *usecase.OpportunityUseCase
	ObservationUC *usecase.ObservationUseCase
	AccountUC     *usecase.AccountUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	CatalogUC     *usecase.CatalogUseCase
	ExportUC      *export.ExportUseCase
	AuthUC        *auth.AuthUseCase
	HealthRepo    repository.HealthRepository
}

// Router registra las rutas de la API. Ninguna ruta exige token todavía; el
// login solo emite el JWT declarativo del perfil.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Oportunidades
	opps := api.Group("/opportunities")
	oppHandler := NewOpportunityHandler(deps.OpportunityUC)
	opps.Get("/", oppHandler.List)
	opps.Get("/facets", oppHandler.Facets)
	opps.Get("/max-id", oppHandler.MaxID)
	opps.Post("/", oppHandler.Create)
	opps.Post("/move-to-history", oppHandler.MoveToHistory)
	opps.Get("/:id", oppHandler.GetByID)
	opps.Put("/:id", oppHandler.Update)
	opps.Delete("/:id", oppHandler.SoftDelete)
	opps.Post("/:id/restore", oppHandler.Restore)
	opps.Delete("/:id/permanent", oppHandler.HardDelete)

	// Bitácora de observaciones (anidada bajo la oportunidad)
	obsHandler := NewObservationHandler(deps.ObservationUC)
	opps.Get("/:id/observations", obsHandler.List)
	opps.Post("/:id/observations", obsHandler.Create)
	opps.Put("/:id/observations/:obsId", obsHandler.Update)
	opps.Delete("/:id/observations/:obsId", obsHandler.Delete)

	// Cuentas
	accounts := api.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Empleados y puestos
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := api.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	roles := api.Group("/job-roles")
	roles.Get("/", employeeHandler.ListRoles)
	roles.Post("/", employeeHandler.CreateRole)
	roles.Put("/:id", employeeHandler.UpdateRole)
	roles.Delete("/:id", employeeHandler.DeleteRole)

	// Catálogos de solo nombre
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogHandler.Register(api.Group("/statuses"), catalogHandler.statusOps())
	catalogHandler.Register(api.Group("/opportunity-types"), catalogHandler.typeOps())
	catalogHandler.Register(api.Group("/motives"), catalogHandler.motiveOps())

	// Planillas
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/exports/:audience", exportHandler.Download)

	// Salud
	healthHandler := NewHealthHandler(deps.HealthRepo)
	app.Get("/health", healthHandler.Check)
}
