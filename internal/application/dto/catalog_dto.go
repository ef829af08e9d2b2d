package dto

// AccountRequest alta o edición de cuenta. IsActive nil = sin cambio (alta:
// activa por defecto).
type AccountRequest struct {
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	IsActive     *bool   `json:"is_active"`
}

// AccountResponse cuenta tal como la consume el cliente.
type AccountResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	IsActive     bool    `json:"is_active"`
}

// EmployeeRequest alta o edición de empleado.
type EmployeeRequest struct {
	FullName string `json:"full_name"`
	RoleID   int64  `json:"role_id"`
	IsActive *bool  `json:"is_active"`
}

// EmployeeResponse empleado con el nombre y la clasificación de su puesto.
type EmployeeResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	RoleID   int64   `json:"role_id"`
	RoleName *string `json:"role_name,omitempty"`
	RoleKind string  `json:"role_kind"`
	IsActive bool    `json:"is_active"`
}

// JobRoleRequest alta o edición de puesto. Kind vacío se clasifica como OTHER.
type JobRoleRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// JobRoleResponse puesto de trabajo.
type JobRoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// NameRequest alta o edición de catálogos de solo nombre (estados, tipos,
// motivos).
type NameRequest struct {
	Name string `json:"name"`
}

// NameResponse fila de un catálogo de solo nombre.
type NameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
