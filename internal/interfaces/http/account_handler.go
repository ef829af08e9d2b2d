package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
)

// AccountHandler maneja las peticiones HTTP de cuentas.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         accounts
// @Produce      json
// @Param        only_active  query  bool  false  "Solo cuentas activas"
// @Success      200  {array}  dto.AccountResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryBool("only_active"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cuenta
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AccountRequest  true  "Datos de la cuenta"
// @Success      201  {object}  dto.AccountResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar cuenta (desactivarla exige no tener oportunidades activas)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID de la cuenta"
// @Param        body  body  dto.AccountRequest  true  "Datos de la cuenta"
// @Success      200  {object}  dto.AccountResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.AccountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cuenta sin oportunidades asociadas
// @Tags         accounts
// @Param        id  path  int  true  "ID de la cuenta"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
