package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// EmployeeUseCase casos de uso de empleados y puestos de trabajo.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	roleRepo repository.JobRoleRepository
}

func NewEmployeeUseCase(repo repository.EmployeeRepository, roleRepo repository.JobRoleRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, roleRepo: roleRepo}
}

// List devuelve los empleados con nombre y clasificación de su puesto.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Create da de alta un empleado; el puesto debe existir.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del empleado es obligatorio", domain.ErrInvalidInput)
	}
	role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: el puesto %d no existe", domain.ErrInvalidInput, in.RoleID)
	}
	e := &entity.Employee{
		FullName: name,
		RoleID:   in.RoleID,
		IsActive: true,
		RoleName: &role.Name,
		RoleKind: role.Kind,
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	id, err := uc.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Update edita nombre, puesto o estado de un empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.FullName); name != "" {
		e.FullName = name
	}
	if in.RoleID != 0 && in.RoleID != e.RoleID {
		role, err := uc.roleRepo.GetByID(ctx, in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, fmt.Errorf("%w: el puesto %d no existe", domain.ErrInvalidInput, in.RoleID)
		}
		e.RoleID = in.RoleID
		e.RoleName = &role.Name
		e.RoleKind = role.Kind
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(e)
	return &resp, nil
}

// Delete elimina un empleado que ninguna oportunidad referencia como gerente
// ni como responsable. La guarda corre en la transacción del repositorio.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ListRoles devuelve los puestos de trabajo.
func (uc *EmployeeUseCase) ListRoles(ctx context.Context) ([]dto.JobRoleResponse, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobRoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.JobRoleResponse{ID: r.ID, Name: r.Name, Kind: string(r.Kind)})
	}
	return out, nil
}

// CreateRole da de alta un puesto; sin clasificación explícita queda OTHER.
func (uc *EmployeeUseCase) CreateRole(ctx context.Context, in dto.JobRoleRequest) (*dto.JobRoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del puesto es obligatorio", domain.ErrInvalidInput)
	}
	kind, err := parseRoleKind(in.Kind)
	if err != nil {
		return nil, err
	}
	r := &entity.JobRole{Name: name, Kind: kind}
	id, err := uc.roleRepo.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto.JobRoleResponse{ID: id, Name: r.Name, Kind: string(r.Kind)}, nil
}

// UpdateRole edita nombre o clasificación de un puesto.
func (uc *EmployeeUseCase) UpdateRole(ctx context.Context, id int64, in dto.JobRoleRequest) (*dto.JobRoleResponse, error) {
	r, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		r.Name = name
	}
	if in.Kind != "" {
		kind, err := parseRoleKind(in.Kind)
		if err != nil {
			return nil, err
		}
		r.Kind = kind
	}
	if err := uc.roleRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return &dto.JobRoleResponse{ID: r.ID, Name: r.Name, Kind: string(r.Kind)}, nil
}

// DeleteRole elimina un puesto que ningún empleado usa.
func (uc *EmployeeUseCase) DeleteRole(ctx context.Context, id int64) error {
	return uc.roleRepo.Delete(ctx, id)
}

func parseRoleKind(raw string) (entity.RoleKind, error) {
	if raw == "" {
		return entity.RoleKindOther, nil
	}
	kind := entity.RoleKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: clasificación de puesto desconocida '%s'", domain.ErrInvalidInput, raw)
	}
	return kind, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:       e.ID,
		FullName: e.FullName,
		RoleID:   e.RoleID,
		RoleName: e.RoleName,
		RoleKind: string(e.RoleKind),
		IsActive: e.IsActive,
	}
}
