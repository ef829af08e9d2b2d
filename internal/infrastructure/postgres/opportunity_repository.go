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

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

// OpportunityRepo implementación del puerto OpportunityRepository sobre PostgreSQL (usable con pool o tx).
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador de persistencia para oportunidades. Pasar pool o tx (Querier).
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

// selectOpportunity proyección completa con nombres denormalizados y la
// última observación. Los listados y GetByID comparten este SELECT.
const selectOpportunity = `
	SELECT o.id, o.name, o.account_id, o.status_id, o.opportunity_type_id, o.manager_id,
	       o.responsible_dc_id, o.responsible_business_id, o.responsible_tech_id,
	       o.percentage, o.color_code,
	       o.has_ia_proposal, o.has_prototype, o.has_rfp, o.has_anteproyecto,
	       o.reason_motive, o.motive_id, o.k_red_index,
	       o.start_date, o.understanding_date, o.scope_date, o.coe_date,
	       o.delivery_date, o.commitment_date, o.engagement_date, o.real_delivery_date,
	       o.estimated_hours, o.estimated_term_months, o.work_plan_link, o.order_index,
	       o.is_archived, o.deleted_at, o.updated_at,
	       a.name AS account_name, s.name AS status_name, m.name AS motive_name,
	       ger.full_name AS manager_name, dc.full_name AS dc_name,
	       neg.full_name AS neg_name, tec.full_name AS tec_name,
	       (SELECT ob.text FROM observations ob
	         WHERE ob.opportunity_id = o.id
	         ORDER BY ob.created_at DESC, ob.id DESC LIMIT 1) AS last_observation
	FROM opportunities o
	LEFT JOIN accounts a ON a.id = o.account_id
	LEFT JOIN opportunity_statuses s ON s.id = o.status_id
	LEFT JOIN motives m ON m.id = o.motive_id
	LEFT JOIN employees ger ON ger.id = o.manager_id
	LEFT JOIN employees dc ON dc.id = o.responsible_dc_id
	LEFT JOIN employees neg ON neg.id = o.responsible_business_id
	LEFT JOIN employees tec ON tec.id = o.responsible_tech_id`

func scanOpportunity(row pgx.Row) (*entity.Opportunity, error) {
	var o entity.Opportunity
	err := row.Scan(
		&o.ID, &o.Name, &o.AccountID, &o.StatusID, &o.OpportunityTypeID, &o.ManagerID,
		&o.ResponsibleDCID, &o.ResponsibleBusinessID, &o.ResponsibleTechID,
		&o.Percentage, &o.ColorCode,
		&o.HasIAProposal, &o.HasPrototype, &o.HasRFP, &o.HasAnteproyecto,
		&o.ReasonMotive, &o.MotiveID, &o.KRedIndex,
		&o.StartDate, &o.UnderstandingDate, &o.ScopeDate, &o.CoeDate,
		&o.DeliveryDate, &o.CommitmentDate, &o.EngagementDate, &o.RealDeliveryDate,
		&o.EstimatedHours, &o.EstimatedTermMonths, &o.WorkPlanLink, &o.OrderIndex,
		&o.IsArchived, &o.DeletedAt, &o.UpdatedAt,
		&o.AccountName, &o.StatusName, &o.MotiveName,
		&o.ManagerName, &o.DCName, &o.NegName, &o.TecName,
		&o.LastObservation,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// viewClause traduce el corte de ciclo de vida a su WHERE.
func viewClause(view repository.View) string {
	switch view {
	case repository.ViewActive:
		return "o.deleted_at IS NULL AND NOT o.is_archived"
	case repository.ViewHistory:
		return "o.deleted_at IS NULL AND o.is_archived"
	case repository.ViewTrash:
		return "o.deleted_at IS NOT NULL"
	default: // ALL: todo menos la papelera
		return "o.deleted_at IS NULL"
	}
}

// List devuelve el corte pedido ordenado por id descendente; el orden
// operativo de la vista activa lo aplica la capa de aplicación.
func (r *OpportunityRepo) List(ctx context.Context, view repository.View) ([]*entity.Opportunity, error) {
	query := fmt.Sprintf("%s WHERE %s ORDER BY o.id DESC", selectOpportunity, viewClause(view))
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()

	var out []*entity.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return out, nil
}

// GetByID obtiene una oportunidad por ID, incluida la papelera.
func (r *OpportunityRepo) GetByID(ctx context.Context, id int64) (*entity.Opportunity, error) {
	o, err := scanOpportunity(r.q.QueryRow(ctx, selectOpportunity+" WHERE o.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return o, nil
}

// MaxID devuelve el mayor id existente (0 si la tabla está vacía).
func (r *OpportunityRepo) MaxID(ctx context.Context) (int64, error) {
	var max int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM opportunities`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max opportunity id: %w", err)
	}
	return max, nil
}

// Create persiste una nueva oportunidad y devuelve el id emitido por la base.
func (r *OpportunityRepo) Create(ctx context.Context, o *entity.Opportunity) (int64, error) {
	query := `
		INSERT INTO opportunities (
			name, account_id, status_id, opportunity_type_id, manager_id,
			responsible_dc_id, responsible_business_id, responsible_tech_id,
			percentage, color_code,
			has_ia_proposal, has_prototype, has_rfp, has_anteproyecto,
			reason_motive, motive_id, k_red_index,
			start_date, understanding_date, scope_date, coe_date,
			delivery_date, commitment_date, engagement_date, real_delivery_date,
			estimated_hours, estimated_term_months, work_plan_link, order_index,
			is_archived, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25,
			$26, $27, $28, $29, $30, $31
		) RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		o.Name, o.AccountID, o.StatusID, o.OpportunityTypeID, o.ManagerID,
		o.ResponsibleDCID, o.ResponsibleBusinessID, o.ResponsibleTechID,
		o.Percentage, o.ColorCode,
		o.HasIAProposal, o.HasPrototype, o.HasRFP, o.HasAnteproyecto,
		o.ReasonMotive, o.MotiveID, o.KRedIndex,
		o.StartDate, o.UnderstandingDate, o.ScopeDate, o.CoeDate,
		o.DeliveryDate, o.CommitmentDate, o.EngagementDate, o.RealDeliveryDate,
		o.EstimatedHours, o.EstimatedTermMonths, o.WorkPlanLink, o.OrderIndex,
		o.IsArchived, o.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
		}
		return 0, fmt.Errorf("insert opportunity: %w", err)
	}
	return id, nil
}

// Update guarda la fila completa. Los campos de ciclo de vida deleted_at e
// is_archived tienen sus propias operaciones.
func (r *OpportunityRepo) Update(ctx context.Context, o *entity.Opportunity) error {
	query := `
		UPDATE opportunities SET
			name = $2, account_id = $3, status_id = $4, opportunity_type_id = $5,
			manager_id = $6, responsible_dc_id = $7, responsible_business_id = $8,
			responsible_tech_id = $9, percentage = $10, color_code = $11,
			has_ia_proposal = $12, has_prototype = $13, has_rfp = $14, has_anteproyecto = $15,
			reason_motive = $16, motive_id = $17, k_red_index = $18,
			start_date = $19, understanding_date = $20, scope_date = $21, coe_date = $22,
			delivery_date = $23, commitment_date = $24, engagement_date = $25, real_delivery_date = $26,
			estimated_hours = $27, estimated_term_months = $28, work_plan_link = $29,
			order_index = $30, is_archived = $31, updated_at = $32
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.Name, o.AccountID, o.StatusID, o.OpportunityTypeID,
		o.ManagerID, o.ResponsibleDCID, o.ResponsibleBusinessID,
		o.ResponsibleTechID, o.Percentage, o.ColorCode,
		o.HasIAProposal, o.HasPrototype, o.HasRFP, o.HasAnteproyecto,
		o.ReasonMotive, o.MotiveID, o.KRedIndex,
		o.StartDate, o.UnderstandingDate, o.ScopeDate, o.CoeDate,
		o.DeliveryDate, o.CommitmentDate, o.EngagementDate, o.RealDeliveryDate,
		o.EstimatedHours, o.EstimatedTermMonths, o.WorkPlanLink,
		o.OrderIndex, o.IsArchived, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update opportunity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete manda la fila a la papelera; idempotente sobre filas ya borradas.
func (r *OpportunityRepo) SoftDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE opportunities SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete opportunity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore saca la fila de la papelera sin tocar is_archived.
func (r *OpportunityRepo) Restore(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE opportunities SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("restore opportunity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina la fila; las observaciones caen por ON DELETE CASCADE.
func (r *OpportunityRepo) HardDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("hard delete opportunity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetArchived mueve la fila entre activas e históricos.
func (r *OpportunityRepo) SetArchived(ctx context.Context, id int64, archived bool) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE opportunities SET is_archived = $2, updated_at = NOW() WHERE id = $1`, id, archived)
	if err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
