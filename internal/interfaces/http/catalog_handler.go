package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
)

// CatalogHandler maneja los catálogos de solo nombre (estados, tipos,
// motivos). Las tres rutas comparten los mismos verbos y contratos.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// catalogOps operaciones de un catálogo concreto.
type catalogOps struct {
	list   func(context.Context) ([]dto.NameResponse, error)
	create func(context.Context, dto.NameRequest) (*dto.NameResponse, error)
	update func(context.Context, int64, dto.NameRequest) (*dto.NameResponse, error)
	delete func(context.Context, int64) error
}

func (h *CatalogHandler) statusOps() catalogOps {
	return catalogOps{h.uc.ListStatuses, h.uc.CreateStatus, h.uc.UpdateStatus, h.uc.DeleteStatus}
}

func (h *CatalogHandler) typeOps() catalogOps {
	return catalogOps{h.uc.ListTypes, h.uc.CreateType, h.uc.UpdateType, h.uc.DeleteType}
}

func (h *CatalogHandler) motiveOps() catalogOps {
	return catalogOps{h.uc.ListMotives, h.uc.CreateMotive, h.uc.UpdateMotive, h.uc.DeleteMotive}
}

// Register registra las cuatro rutas del catálogo en su grupo.
func (h *CatalogHandler) Register(group fiber.Router, ops catalogOps) {
	group.Get("/", func(c *fiber.Ctx) error {
		out, err := ops.list(c.Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	})
	group.Post("/", func(c *fiber.Ctx) error {
		var in dto.NameRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		out, err := ops.create(c.Context(), in)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	})
	group.Put("/:id", func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, err)
		}
		var in dto.NameRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		out, err := ops.update(c.Context(), id, in)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	})
	group.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, err)
		}
		if err := ops.delete(c.Context(), id); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
