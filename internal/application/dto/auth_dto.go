package dto

// LoginRequest credenciales de la pantalla de login. El token resultante no
// protege ninguna ruta; queda para cuando se habilite el control de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // "supervisor" | "assistant"
}

// LoginResponse token emitido y perfil declarado.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
