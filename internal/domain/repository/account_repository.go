package repository

import (
	"context"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// AccountRepository puerto de persistencia de cuentas.
type AccountRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*entity.Account, error)
	GetByID(ctx context.Context, id int64) (*entity.Account, error)
	Create(ctx context.Context, a *entity.Account) (int64, error)
	Update(ctx context.Context, a *entity.Account) error

	// CountActiveOpportunities cuenta oportunidades activas (no archivadas,
	// no borradas) de la cuenta; guarda de desactivación.
	CountActiveOpportunities(ctx context.Context, accountID int64) (int, error)

	// Delete elimina la cuenta solo si ninguna oportunidad la referencia.
	// El conteo y el borrado ocurren en una misma transacción; si hay
	// referencias devuelve *domain.ReferencedError con el conteo.
	Delete(ctx context.Context, id int64) error
}
