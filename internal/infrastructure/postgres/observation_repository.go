package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

var _ repository.ObservationRepository = (*ObservationRepo)(nil)

// ObservationRepo implementación del puerto ObservationRepository sobre PostgreSQL.
type ObservationRepo struct {
	q Querier
}

// NewObservationRepository construye el adaptador de persistencia para observaciones.
func NewObservationRepository(q Querier) *ObservationRepo {
	return &ObservationRepo{q: q}
}

// ListByOpportunity devuelve la bitácora, la más reciente primero.
func (r *ObservationRepo) ListByOpportunity(ctx context.Context, opportunityID int64) ([]*entity.Observation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, opportunity_id, text, created_at, updated_at
		FROM observations WHERE opportunity_id = $1
		ORDER BY created_at DESC, id DESC`, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Observation
	for rows.Next() {
		var ob entity.Observation
		if err := rows.Scan(&ob.ID, &ob.OpportunityID, &ob.Text, &ob.CreatedAt, &ob.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		out = append(out, &ob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	return out, nil
}

// GetByID obtiene una observación por ID.
func (r *ObservationRepo) GetByID(ctx context.Context, id int64) (*entity.Observation, error) {
	var ob entity.Observation
	err := r.q.QueryRow(ctx, `
		SELECT id, opportunity_id, text, created_at, updated_at
		FROM observations WHERE id = $1`, id).
		Scan(&ob.ID, &ob.OpportunityID, &ob.Text, &ob.CreatedAt, &ob.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get observation: %w", err)
	}
	return &ob, nil
}

// Create persiste una observación y devuelve el id emitido por la base.
func (r *ObservationRepo) Create(ctx context.Context, obs *entity.Observation) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO observations (opportunity_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		obs.OpportunityID, obs.Text, obs.CreatedAt, obs.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: la oportunidad %d no existe", domain.ErrInvalidInput, obs.OpportunityID)
		}
		return 0, fmt.Errorf("insert observation: %w", err)
	}
	return id, nil
}

// Update reemplaza el texto de una observación.
func (r *ObservationRepo) Update(ctx context.Context, obs *entity.Observation) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE observations SET text = $2, updated_at = $3 WHERE id = $1`,
		obs.ID, obs.Text, obs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update observation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una observación.
func (r *ObservationRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM observations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete observation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
