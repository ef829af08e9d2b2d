package repository

import (
	"context"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia de empleados (incluye nombre y
// clasificación del puesto en las lecturas).
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	Create(ctx context.Context, e *entity.Employee) (int64, error)
	Update(ctx context.Context, e *entity.Employee) error

	// Delete elimina el empleado solo si no figura como gerente ni como
	// responsable en ninguna oportunidad (conteo y borrado transaccionales).
	Delete(ctx context.Context, id int64) error
}

// JobRoleRepository puerto de persistencia de puestos de trabajo.
type JobRoleRepository interface {
	List(ctx context.Context) ([]*entity.JobRole, error)
	GetByID(ctx context.Context, id int64) (*entity.JobRole, error)
	Create(ctx context.Context, r *entity.JobRole) (int64, error)
	Update(ctx context.Context, r *entity.JobRole) error

	// Delete elimina el puesto solo si ningún empleado lo usa.
	Delete(ctx context.Context, id int64) error
}
