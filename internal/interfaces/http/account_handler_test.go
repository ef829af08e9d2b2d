package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	apphttp "github.com/tu-usuario/gestor-oportunidades/internal/interfaces/http"
)

// stubAccountRepo devuelve el error configurado en Create; el resto no se usa
// en estos tests.
type stubAccountRepo struct {
	createErr error
}

func (s *stubAccountRepo) List(_ context.Context, _ bool) ([]*entity.Account, error) {
	return nil, nil
}
func (s *stubAccountRepo) GetByID(_ context.Context, _ int64) (*entity.Account, error) {
	return nil, nil
}
func (s *stubAccountRepo) Create(_ context.Context, _ *entity.Account) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	return 1, nil
}
func (s *stubAccountRepo) Update(_ context.Context, _ *entity.Account) error { return nil }
func (s *stubAccountRepo) CountActiveOpportunities(_ context.Context, _ int64) (int, error) {
	return 0, nil
}
func (s *stubAccountRepo) Delete(_ context.Context, _ int64) error { return nil }

func buildAccountApp(repo *stubAccountRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewAccountHandler(usecase.NewAccountUseCase(repo))
	app.Post("/api/accounts", handler.Create)
	return app
}

func postAccount(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/accounts", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf
}

func TestCrearCuenta_NombreDuplicado(t *testing.T) {
	repo := &stubAccountRepo{createErr: domain.ErrDuplicate}
	app := buildAccountApp(repo)

	status, body := postAccount(t, app, `{"name":"Acme"}`)
	require.Equal(t, fiber.StatusConflict, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeDuplicate, out.Code)
}

func TestCrearCuenta_FallaDeInfraestructura(t *testing.T) {
	repo := &stubAccountRepo{createErr: context.DeadlineExceeded}
	app := buildAccountApp(repo)

	status, body := postAccount(t, app, `{"name":"Acme"}`)
	require.Equal(t, fiber.StatusInternalServerError, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, dto.CodeInternal, out.Code)
	// Al cliente no se le filtra el detalle del error interno.
	assert.Equal(t, "error interno del servidor", out.Message)
	assert.NotContains(t, string(body), "deadline")
}
