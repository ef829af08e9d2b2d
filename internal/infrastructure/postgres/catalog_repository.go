package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// nameCatalog operaciones comunes de los catálogos de solo nombre. Cada
// catálogo declara su tabla y la columna de opportunities que lo referencia.
type nameCatalog struct {
	q      Querier
	table  string
	refCol string
}

func (c nameCatalog) list(ctx context.Context) ([]int64, []string, error) {
	rows, err := c.q.Query(ctx, fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, c.table))
	if err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	defer rows.Close()

	var ids []int64
	var names []string
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", c.table, err)
		}
		ids = append(ids, id)
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	return ids, names, nil
}

func (c nameCatalog) create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := c.q.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, c.table), name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert %s: %w", c.table, err)
	}
	return id, nil
}

func (c nameCatalog) update(ctx context.Context, id int64, name string) error {
	cmd, err := c.q.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET name = $2 WHERE id = $1`, c.table), id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", c.table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// delete elimina la fila solo si ninguna oportunidad la referencia; la
// verificación va en el mismo DELETE.
func (c nameCatalog) delete(ctx context.Context, id int64) error {
	cmd, err := c.q.Exec(ctx, fmt.Sprintf(`
		DELETE FROM %s t WHERE t.id = $1
		AND NOT EXISTS (SELECT 1 FROM opportunities o WHERE o.%s = t.id)`, c.table, c.refCol), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", c.table, err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var n int
	if err := c.q.QueryRow(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM opportunities WHERE %s = $1`, c.refCol), id).Scan(&n); err != nil {
		return fmt.Errorf("count %s references: %w", c.table, err)
	}
	if n > 0 {
		return &domain.ReferencedError{Count: n}
	}
	return domain.ErrNotFound
}

var _ repository.StatusRepository = (*StatusRepo)(nil)

// StatusRepo implementación del puerto StatusRepository sobre PostgreSQL.
type StatusRepo struct {
	nameCatalog
}

// NewStatusRepository construye el adaptador de persistencia para estados.
func NewStatusRepository(q Querier) *StatusRepo {
	return &StatusRepo{nameCatalog{q: q, table: "opportunity_statuses", refCol: "status_id"}}
}

func (r *StatusRepo) List(ctx context.Context) ([]*entity.OpportunityStatus, error) {
	ids, names, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.OpportunityStatus, 0, len(ids))
	for i := range ids {
		out = append(out, &entity.OpportunityStatus{ID: ids[i], Name: names[i]})
	}
	return out, nil
}

func (r *StatusRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.create(ctx, name)
}

func (r *StatusRepo) Update(ctx context.Context, id int64, name string) error {
	return r.update(ctx, id, name)
}

func (r *StatusRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

var _ repository.OpportunityTypeRepository = (*OpportunityTypeRepo)(nil)

// OpportunityTypeRepo implementación del puerto OpportunityTypeRepository sobre PostgreSQL.
type OpportunityTypeRepo struct {
	nameCatalog
}

// NewOpportunityTypeRepository construye el adaptador de persistencia para tipos.
func NewOpportunityTypeRepository(q Querier) *OpportunityTypeRepo {
	return &OpportunityTypeRepo{nameCatalog{q: q, table: "opportunity_types", refCol: "opportunity_type_id"}}
}

func (r *OpportunityTypeRepo) List(ctx context.Context) ([]*entity.OpportunityType, error) {
	ids, names, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.OpportunityType, 0, len(ids))
	for i := range ids {
		out = append(out, &entity.OpportunityType{ID: ids[i], Name: names[i]})
	}
	return out, nil
}

func (r *OpportunityTypeRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.create(ctx, name)
}

func (r *OpportunityTypeRepo) Update(ctx context.Context, id int64, name string) error {
	return r.update(ctx, id, name)
}

func (r *OpportunityTypeRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

var _ repository.MotiveRepository = (*MotiveRepo)(nil)

// MotiveRepo implementación del puerto MotiveRepository sobre PostgreSQL.
type MotiveRepo struct {
	nameCatalog
}

// NewMotiveRepository construye el adaptador de persistencia para motivos.
func NewMotiveRepository(q Querier) *MotiveRepo {
	return &MotiveRepo{nameCatalog{q: q, table: "motives", refCol: "motive_id"}}
}

func (r *MotiveRepo) List(ctx context.Context) ([]*entity.Motive, error) {
	ids, names, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Motive, 0, len(ids))
	for i := range ids {
		out = append(out, &entity.Motive{ID: ids[i], Name: names[i]})
	}
	return out, nil
}

func (r *MotiveRepo) Create(ctx context.Context, name string) (int64, error) {
	return r.create(ctx, name)
}

func (r *MotiveRepo) Update(ctx context.Context, id int64, name string) error {
	return r.update(ctx, id, name)
}

func (r *MotiveRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}
