package repository

import (
	"context"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// View selecciona el corte de ciclo de vida en los listados.
type View string

const (
	ViewActive  View = "ON"     // activas: sin borrar, no archivadas
	ViewHistory View = "ON-OUT" // históricos: sin borrar, archivadas
	ViewAll     View = "ALL"    // activas + históricos, sin papelera
	ViewTrash   View = "TRASH"  // papelera: deleted_at no nulo
)

// ParseView interpreta el query param `view`; cualquier otro valor cae en ALL.
func ParseView(s string) View {
	switch View(s) {
	case ViewActive, ViewHistory, ViewTrash:
		return View(s)
	}
	return ViewAll
}

// OpportunityRepository puerto de persistencia de oportunidades.
// Los listados y GetByID devuelven los nombres denormalizados (cuenta,
// estado, responsables) y la última observación.
type OpportunityRepository interface {
	List(ctx context.Context, view View) ([]*entity.Opportunity, error)
	GetByID(ctx context.Context, id int64) (*entity.Opportunity, error)

	// MaxID sonda heredada del cliente original; los ids los emite el
	// servidor, esto queda solo como lectura informativa.
	MaxID(ctx context.Context) (int64, error)

	// Create persiste la oportunidad y devuelve el id generado por la base.
	Create(ctx context.Context, o *entity.Opportunity) (int64, error)
	Update(ctx context.Context, o *entity.Opportunity) error

	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
	SetArchived(ctx context.Context, id int64, archived bool) error
}
