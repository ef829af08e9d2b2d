package entity

// RoleKind clasificación tipada del puesto. Reemplaza la convención anterior
// de deducir el perfil por coincidencia de texto sobre el nombre del puesto.
type RoleKind string

const (
	RoleKindManager   RoleKind = "MANAGER"   // gerente comercial
	RoleKindApprover  RoleKind = "APPROVER"  // aprobador / DC
	RoleKindAnalyst   RoleKind = "ANALYST"   // analista de negocio
	RoleKindTechnical RoleKind = "TECHNICAL" // responsable técnico
	RoleKindOther     RoleKind = "OTHER"
)

// Valid indica si el valor es una clasificación conocida.
func (k RoleKind) Valid() bool {
	switch k {
	case RoleKindManager, RoleKindApprover, RoleKindAnalyst, RoleKindTechnical, RoleKindOther:
		return true
	}
	return false
}

// JobRole puesto de trabajo. Name es etiqueta de presentación; Kind es la
// clasificación que usa la lógica de negocio.
type JobRole struct {
	ID   int64
	Name string
	Kind RoleKind
}

// Employee empleado asignable a oportunidades según su puesto.
type Employee struct {
	ID       int64
	FullName string
	RoleID   int64
	IsActive bool

	// Denormalizados en lecturas de listado
	RoleName *string
	RoleKind RoleKind
}

// IsManager indica si el empleado puede figurar como gerente comercial.
func (e *Employee) IsManager() bool { return e.RoleKind == RoleKindManager }
