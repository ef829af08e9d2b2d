package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/export"
)

// ExportHandler descarga de planillas por audiencia.
type ExportHandler struct {
	uc *export.ExportUseCase
}

func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar planilla de seguimiento
// @Tags         exports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        audience  path  string  true  "dc | pablo | jp"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/exports/{audience} [get]
func (h *ExportHandler) Download(c *fiber.Ctx) error {
	audience, err := export.ParseAudience(c.Params("audience"))
	if err != nil {
		return writeError(c, err)
	}
	file, err := h.uc.Export(c.Context(), audience)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Content)
}
