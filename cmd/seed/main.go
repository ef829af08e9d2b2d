// Comando seed: carga los catálogos base (estados, puestos, tipos, motivos)
// en una base recién migrada. Es idempotente: los nombres ya existentes se
// dejan como están.
package main

import (
	"context"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/infrastructure/postgres"
	"github.com/tu-usuario/gestor-oportunidades/pkg/config"
	"github.com/tu-usuario/gestor-oportunidades/pkg/logger"
)

var statuses = []string{
	"EVALUACIÓN",
	"EN DESARROLLO DE PROPUESTA",
	"PRESENTADA",
	"EN NEGOCIACIÓN",
	"REASIGNADO A CAPACITY",
	"STAND BY",
	"GANADA",
	"PERDIDA",
}

var jobRoles = []entity.JobRole{
	{Name: "Gerente Comercial", Kind: entity.RoleKindManager},
	{Name: "Director de Consultoría", Kind: entity.RoleKindApprover},
	{Name: "Analista de Negocio", Kind: entity.RoleKindAnalyst},
	{Name: "Responsable Técnico", Kind: entity.RoleKindTechnical},
	{Name: "Jefe de Proyecto", Kind: entity.RoleKindOther},
}

var opportunityTypes = []string{
	"DESARROLLO",
	"CONSULTORÍA",
	"SOPORTE EVOLUTIVO",
	"LICENCIAMIENTO",
}

var motives = []string{
	"PRECIO",
	"PLAZO",
	"COMPETENCIA",
	"PRESUPUESTO CONGELADO",
	"SIN RESPUESTA DEL CLIENTE",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, name := range statuses {
		if _, err := pool.Exec(ctx,
			`INSERT INTO opportunity_statuses (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("sembrar estado")
		}
	}
	for _, role := range jobRoles {
		if _, err := pool.Exec(ctx,
			`INSERT INTO job_roles (name, kind) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, role.Name, role.Kind); err != nil {
			log.Fatal().Err(err).Str("name", role.Name).Msg("sembrar puesto")
		}
	}
	for _, name := range opportunityTypes {
		if _, err := pool.Exec(ctx,
			`INSERT INTO opportunity_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("sembrar tipo")
		}
	}
	for _, name := range motives {
		if _, err := pool.Exec(ctx,
			`INSERT INTO motives (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("sembrar motivo")
		}
	}

	log.Info().Msg("catálogos base sembrados")
}
