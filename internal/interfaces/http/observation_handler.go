package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
)

// ObservationHandler maneja la bitácora de una oportunidad.
type ObservationHandler struct {
	uc *usecase.ObservationUseCase
}

func NewObservationHandler(uc *usecase.ObservationUseCase) *ObservationHandler {
	return &ObservationHandler{uc: uc}
}

// List devuelve la bitácora de la oportunidad, la más reciente primero.
func (h *ObservationHandler) List(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByOpportunity(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create agrega una observación a la bitácora.
func (h *ObservationHandler) Create(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ObservationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza el texto de una observación.
func (h *ObservationHandler) Update(c *fiber.Ctx) error {
	obsID, err := c.ParamsInt("obsId")
	if err != nil || obsID <= 0 {
		return invalidBody(c)
	}
	var in dto.ObservationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), int64(obsID), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una observación.
func (h *ObservationHandler) Delete(c *fiber.Ctx) error {
	obsID, err := c.ParamsInt("obsId")
	if err != nil || obsID <= 0 {
		return invalidBody(c)
	}
	if err := h.uc.Delete(c.Context(), int64(obsID)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
