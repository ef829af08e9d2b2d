package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/application/usecase"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// OpportunityHandler maneja las peticiones HTTP de oportunidades.
type OpportunityHandler struct {
	uc *usecase.OpportunityUseCase
}

// NewOpportunityHandler construye el handler.
func NewOpportunityHandler(uc *usecase.OpportunityUseCase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

// parseCriteria lee los filtros de la grilla desde el query string. Los
// selectores ausentes o en cero no filtran.
func parseCriteria(c *fiber.Ctx) pipeline.Criteria {
	var cr pipeline.Criteria
	if v := int64(c.QueryInt("account_id")); v > 0 {
		cr.AccountID = &v
	}
	if v := int64(c.QueryInt("status_id")); v > 0 {
		cr.StatusID = &v
	}
	if v := int64(c.QueryInt("manager_id")); v > 0 {
		cr.ManagerID = &v
	}
	if v := int64(c.QueryInt("approver_id")); v > 0 {
		cr.ApproverID = &v
	}
	if v := int64(c.QueryInt("business_id")); v > 0 {
		cr.BusinessID = &v
	}
	if v := c.QueryInt("k_red_index", -1); v >= 0 {
		cr.KRedIndex = &v
	}
	cr.Search = c.Query("search")
	return cr
}

// List godoc
// @Summary      Listar oportunidades
// @Tags         opportunities
// @Produce      json
// @Param        view        query  string  false  "ON | ON-OUT | ALL | TRASH"
// @Param        account_id  query  int     false  "Filtro por cuenta"
// @Param        status_id   query  int     false  "Filtro por estado"
// @Param        manager_id  query  int     false  "Filtro por gerente"
// @Param        search      query  string  false  "Búsqueda libre"
// @Success      200  {array}  dto.OpportunityResponse
// @Router       /api/opportunities [get]
func (h *OpportunityHandler) List(c *fiber.Ctx) error {
	view := repository.ParseView(c.Query("view"))
	out, err := h.uc.List(c.Context(), view, parseCriteria(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Facets godoc
// @Summary      Opciones alcanzables de cada selector de filtro
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  dto.FacetsResponse
// @Router       /api/opportunities/facets [get]
func (h *OpportunityHandler) Facets(c *fiber.Ctx) error {
	view := repository.ParseView(c.Query("view"))
	out, err := h.uc.Facets(c.Context(), view, parseCriteria(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MaxID godoc
// @Summary      Mayor id existente (sonda heredada del cliente)
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  dto.MaxIDResponse
// @Router       /api/opportunities/max-id [get]
func (h *OpportunityHandler) MaxID(c *fiber.Ctx) error {
	max, err := h.uc.MaxID(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MaxIDResponse{MaxID: max})
}

// GetByID godoc
// @Summary      Obtener oportunidad por ID
// @Tags         opportunities
// @Produce      json
// @Param        id  path  int  true  "ID de la oportunidad"
// @Success      200  {object}  dto.OpportunityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [get]
func (h *OpportunityHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear oportunidad (el id lo emite el servidor)
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOpportunityRequest  true  "Datos de la oportunidad"
// @Success      201  {object}  dto.OpportunityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/opportunities [post]
func (h *OpportunityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOpportunityRequest
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
// @Summary      Edición parcial de una oportunidad
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID de la oportunidad"
// @Param        body  body  dto.OpportunityPatch  true  "Campos a modificar"
// @Success      200  {object}  dto.OpportunityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [put]
func (h *OpportunityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	var patch dto.OpportunityPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SoftDelete godoc
// @Summary      Mandar la oportunidad a la papelera
// @Tags         opportunities
// @Param        id  path  int  true  "ID de la oportunidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id} [delete]
func (h *OpportunityHandler) SoftDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.SoftDelete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Restaurar desde la papelera (conserva el corte previo)
// @Tags         opportunities
// @Param        id  path  int  true  "ID de la oportunidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id}/restore [post]
func (h *OpportunityHandler) Restore(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Restore(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HardDelete godoc
// @Summary      Borrado definitivo desde la papelera
// @Tags         opportunities
// @Param        id  path  int  true  "ID de la oportunidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/opportunities/{id}/permanent [delete]
func (h *OpportunityHandler) HardDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.HardDelete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MoveToHistory godoc
// @Summary      Pase por lote de activas que cumplen la regla a históricos
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  dto.MoveToHistoryResponse
// @Router       /api/opportunities/move-to-history [post]
func (h *OpportunityHandler) MoveToHistory(c *fiber.Ctx) error {
	out, err := h.uc.MoveToHistory(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
