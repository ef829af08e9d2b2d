package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/auth"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/export"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
	"github.com/tu-usuario/gestor-oportunidades/internal/infrastructure/excel"
	"github.com/tu-usuario/gestor-oportunidades/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestor-oportunidades/internal/interfaces/http"
	"github.com/tu-usuario/gestor-oportunidades/pkg/config"
	"github.com/tu-usuario/gestor-oportunidades/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	opportunityRepo := postgres.NewOpportunityRepository(pool)
	observationRepo := postgres.NewObservationRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	jobRoleRepo := postgres.NewJobRoleRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	typeRepo := postgres.NewOpportunityTypeRepository(pool)
	motiveRepo := postgres.NewMotiveRepository(pool)
	healthRepo := postgres.NewHealthRepository(pool)

	opportunityUC := usecase.NewOpportunityUseCase(opportunityRepo, accountRepo, employeeRepo)
	observationUC := usecase.NewObservationUseCase(observationRepo, opportunityRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, jobRoleRepo)
	catalogUC := usecase.NewCatalogUseCase(statusRepo, typeRepo, motiveRepo)
	exportUC := export.NewExportUseCase(opportunityRepo, excel.NewGenerator())
	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor de Oportunidades API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		OpportunityUC: opportunityUC,
		ObservationUC: observationUC,
		AccountUC:     accountUC,
		EmployeeUC:    employeeUC,
		CatalogUC:     catalogUC,
		ExportUC:      exportUC,
		AuthUC:        authUC,
		HealthRepo:    healthRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
