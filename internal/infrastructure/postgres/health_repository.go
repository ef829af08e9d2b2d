package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

var _ repository.HealthRepository = (*HealthRepo)(nil)

// HealthRepo sonda de conectividad contra la base.
type HealthRepo struct {
	q Querier
}

// NewHealthRepository construye la sonda de salud.
func NewHealthRepository(q Querier) *HealthRepo {
	return &HealthRepo{q: q}
}

// Ping ejecuta una consulta trivial y devuelve la hora del servidor.
func (r *HealthRepo) Ping(ctx context.Context) (string, error) {
	var now time.Time
	if err := r.q.QueryRow(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return "", fmt.Errorf("ping db: %w", err)
	}
	return now.Format(time.RFC3339), nil
}
