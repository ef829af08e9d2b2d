package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// HealthHandler sonda de vida del servicio y de la base.
type HealthHandler struct {
	repo repository.HealthRepository
}

func NewHealthHandler(repo repository.HealthRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// Check responde ok con la hora del servidor de base de datos.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	serverTime, err := h.repo.Ping(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":      "ok",
		"server_time": serverTime,
	})
}
