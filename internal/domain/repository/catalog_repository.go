package repository

import (
	"context"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// Los tres catálogos de nombre único comparten forma; cada puerto conserva su
// tipo propio para que los casos de uso no puedan cruzarlos.

// StatusRepository puerto de persistencia de estados de oportunidad.
type StatusRepository interface {
	List(ctx context.Context) ([]*entity.OpportunityStatus, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	// Delete elimina el estado solo si ninguna oportunidad lo referencia.
	Delete(ctx context.Context, id int64) error
}

// OpportunityTypeRepository puerto de persistencia de tipos de oportunidad.
type OpportunityTypeRepository interface {
	List(ctx context.Context) ([]*entity.OpportunityType, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// MotiveRepository puerto de persistencia de motivos.
type MotiveRepository interface {
	List(ctx context.Context) ([]*entity.Motive, error)
	Create(ctx context.Context, name string) (int64, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// HealthRepository sonda de conectividad contra la base.
type HealthRepository interface {
	// Ping ejecuta una consulta trivial y devuelve la hora del servidor.
	Ping(ctx context.Context) (serverTime string, err error)
}
