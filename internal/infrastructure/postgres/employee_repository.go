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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const selectEmployee = `
	SELECT e.id, e.full_name, e.role_id, e.is_active, r.name AS role_name, r.kind AS role_kind
	FROM employees e
	LEFT JOIN job_roles r ON r.id = e.role_id`

// List devuelve los empleados con nombre y clasificación del puesto.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, selectEmployee+` ORDER BY e.full_name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var kind *string
		if err := rows.Scan(&e.ID, &e.FullName, &e.RoleID, &e.IsActive, &e.RoleName, &kind); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if kind != nil {
			e.RoleKind = entity.RoleKind(*kind)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

// GetByID obtiene un empleado por ID con su puesto.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var e entity.Employee
	var kind *string
	err := r.q.QueryRow(ctx, selectEmployee+` WHERE e.id = $1`, id).
		Scan(&e.ID, &e.FullName, &e.RoleID, &e.IsActive, &e.RoleName, &kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	if kind != nil {
		e.RoleKind = entity.RoleKind(*kind)
	}
	return &e, nil
}

// Create persiste un empleado nuevo.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO employees (full_name, role_id, is_active)
		VALUES ($1, $2, $3) RETURNING id`,
		e.FullName, e.RoleID, e.IsActive,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: el puesto %d no existe", domain.ErrInvalidInput, e.RoleID)
		}
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// Update guarda el empleado.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE employees SET full_name = $2, role_id = $3, is_active = $4 WHERE id = $1`,
		e.ID, e.FullName, e.RoleID, e.IsActive)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el puesto %d no existe", domain.ErrInvalidInput, e.RoleID)
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el empleado solo si ninguna oportunidad lo referencia como
// gerente ni como responsable; la verificación va en el mismo DELETE.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `
		DELETE FROM employees e WHERE e.id = $1
		AND NOT EXISTS (
			SELECT 1 FROM opportunities o
			WHERE o.manager_id = e.id
			   OR o.responsible_dc_id = e.id
			   OR o.responsible_business_id = e.id
			   OR o.responsible_tech_id = e.id
		)`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var n int
	if err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM opportunities
		WHERE manager_id = $1 OR responsible_dc_id = $1
		   OR responsible_business_id = $1 OR responsible_tech_id = $1`, id).Scan(&n); err != nil {
		return fmt.Errorf("count employee references: %w", err)
	}
	if n > 0 {
		return &domain.ReferencedError{Count: n}
	}
	return domain.ErrNotFound
}

var _ repository.JobRoleRepository = (*JobRoleRepo)(nil)

// JobRoleRepo implementación del puerto JobRoleRepository sobre PostgreSQL.
type JobRoleRepo struct {
	q Querier
}

// NewJobRoleRepository construye el adaptador de persistencia para puestos.
func NewJobRoleRepository(q Querier) *JobRoleRepo {
	return &JobRoleRepo{q: q}
}

// List devuelve los puestos de trabajo.
func (r *JobRoleRepo) List(ctx context.Context) ([]*entity.JobRole, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, kind FROM job_roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list job roles: %w", err)
	}
	defer rows.Close()

	var out []*entity.JobRole
	for rows.Next() {
		var jr entity.JobRole
		if err := rows.Scan(&jr.ID, &jr.Name, &jr.Kind); err != nil {
			return nil, fmt.Errorf("scan job role: %w", err)
		}
		out = append(out, &jr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list job roles: %w", err)
	}
	return out, nil
}

// GetByID obtiene un puesto por ID.
func (r *JobRoleRepo) GetByID(ctx context.Context, id int64) (*entity.JobRole, error) {
	var jr entity.JobRole
	err := r.q.QueryRow(ctx, `SELECT id, name, kind FROM job_roles WHERE id = $1`, id).
		Scan(&jr.ID, &jr.Name, &jr.Kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job role: %w", err)
	}
	return &jr, nil
}

// Create persiste un puesto nuevo; el nombre es único.
func (r *JobRoleRepo) Create(ctx context.Context, jr *entity.JobRole) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO job_roles (name, kind) VALUES ($1, $2) RETURNING id`,
		jr.Name, jr.Kind,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert job role: %w", err)
	}
	return id, nil
}

// Update guarda el puesto.
func (r *JobRoleRepo) Update(ctx context.Context, jr *entity.JobRole) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE job_roles SET name = $2, kind = $3 WHERE id = $1`, jr.ID, jr.Name, jr.Kind)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update job role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el puesto solo si ningún empleado lo usa.
func (r *JobRoleRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `
		DELETE FROM job_roles r WHERE r.id = $1
		AND NOT EXISTS (SELECT 1 FROM employees e WHERE e.role_id = r.id)`, id)
	if err != nil {
		return fmt.Errorf("delete job role: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var n int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE role_id = $1`, id).Scan(&n); err != nil {
		return fmt.Errorf("count job role references: %w", err)
	}
	if n > 0 {
		return &domain.ReferencedError{Count: n}
	}
	return domain.ErrNotFound
}
