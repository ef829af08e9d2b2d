package repository

import (
	"context"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// ObservationRepository puerto de persistencia de observaciones.
type ObservationRepository interface {
	// ListByOpportunity devuelve las observaciones más recientes primero.
	ListByOpportunity(ctx context.Context, opportunityID int64) ([]*entity.Observation, error)
	GetByID(ctx context.Context, id int64) (*entity.Observation, error)
	Create(ctx context.Context, obs *entity.Observation) (int64, error)
	Update(ctx context.Context, obs *entity.Observation) error
	Delete(ctx context.Context, id int64) error
}
