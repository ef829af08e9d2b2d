// Package auth emite los tokens de la pantalla de login. Ninguna ruta los
// exige todavía; el control de acceso por perfil queda para una fase
// posterior y el token solo declara el rol elegido.
package auth

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Perfiles heredados del cliente original: dos cuentas fijas, una por rol.
var profiles = map[string]struct {
	password string
	name     string
}{
	"supervisor": {password: "supervisor2024", name: "Supervisión Comercial"},
	"assistant":  {password: "assistant2024", name: "Asistente Comercial"},
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg}
}

// Login verifica las credenciales del perfil y genera el JWT declarativo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = strings.ToLower(strings.TrimSpace(in.Username))
	}
	p, ok := profiles[role]
	if !ok {
		return nil, fmt.Errorf("%w: perfil desconocido", domain.ErrUnauthorized)
	}
	if in.Password != p.password {
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, p.name, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Name: p.name, Role: role}, nil
}
