package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
)

// writeError traduce los errores de dominio al contrato HTTP. Todo lo no
// reconocido cae en 500 con código INTERNAL.
func writeError(c *fiber.Ctx, err error) error {
	var refErr *domain.ReferencedError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: dto.CodeNotFound, Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrSemaphoreRule), errors.Is(err, domain.ErrPercentageRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: dto.CodeSemaphore, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: dto.CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: dto.CodeDuplicate, Message: "ya existe un registro con ese nombre"})
	case errors.As(err, &refErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    dto.CodeReferenced,
			Message: fmt.Sprintf("el registro está referenciado por %d oportunidad(es)", refErr.Count),
		})
	case errors.Is(err, domain.ErrReferenced), errors.Is(err, domain.ErrAccountHasActive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: dto.CodeReferenced, Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: dto.CodeUnauthorized, Message: err.Error()})
	default:
		// El detalle queda en el log; al cliente solo le llega un genérico.
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no mapeado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: dto.CodeInternal, Message: "error interno del servidor"})
	}
}

// invalidBody respuesta estándar para bodies que no parsean.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: dto.CodeInvalidBody, Message: "cuerpo inválido"})
}

// parseID lee el parámetro de ruta :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id inválido", domain.ErrInvalidInput)
	}
	return int64(id), nil
}
