package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/auth"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	apphttp "github.com/tu-usuario/gestor-oportunidades/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/gestor-oportunidades/pkg/jwt"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func buildAuthApp() *fiber.App {
	app := fiber.New()
	uc := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "gestor-test",
	})
	handler := apphttp.NewAuthHandler(uc)
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf
}

func TestLogin_PerfilSupervisor(t *testing.T) {
	app := buildAuthApp()

	status, body := postLogin(t, app, `{"role":"supervisor","password":"supervisor2024"}`)
	require.Equal(t, fiber.StatusOK, status)

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "supervisor", out.Role)
	require.NotEmpty(t, out.Token)

	// El token declara nombre y rol del perfil.
	name, role, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Name, name)
	assert.Equal(t, "supervisor", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	app := buildAuthApp()

	status, body := postLogin(t, app, `{"role":"assistant","password":"nope"}`)
	require.Equal(t, fiber.StatusUnauthorized, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeUnauthorized, out.Code)
}

func TestLogin_PerfilDesconocido(t *testing.T) {
	app := buildAuthApp()

	status, _ := postLogin(t, app, `{"role":"gerente","password":"x"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
