package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
)

// TrayHandler maneja las peticiones HTTP para Tray y sus lotes anidados.
type TrayHandler struct {
	core *packing.ContainmentUseCase
}

// NewTrayHandler construye el handler.
func NewTrayHandler(core *packing.ContainmentUseCase) *TrayHandler {
	return &TrayHandler{core: core}
}

// GetByID godoc
// @Summary      Obtener bandeja por uid
// @Tags         trays
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID de la bandeja"
// @Success      200  {object}  dto.TrayResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trays/{uid} [get]
func (h *TrayHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.core.GetTray(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bandeja (incondicional, con cascada)
// @Tags         trays
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID de la bandeja"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trays/{uid} [delete]
func (h *TrayHandler) Delete(c *fiber.Ctx) error {
	if err := h.core.DeleteTray(c.UserContext(), c.Params("uid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "bandeja eliminada"})
}

// CreateLot godoc
// @Summary      Crear lote bajo la bandeja
// @Description  Rechazado si la caja está despachada o la cantidad supera la capacidad de la bandeja.
// @Tags         trays
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID de la bandeja"
// @Param        body  body  dto.CreateLotRequest  true  "Lot id y cantidad"
// @Success      201   {object}  dto.LotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/trays/{uid}/lots [post]
func (h *TrayHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.CreateLot(c.UserContext(), c.Params("uid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLots godoc
// @Summary      Listar lotes de la bandeja
// @Tags         trays
// @Security     Bearer
// @Produce      json
// @Param        uid             path   string  true   "UID de la bandeja"
// @Param        items_per_page  query  int     false  "Tamaño de página"
// @Param        current_page    query  int     false  "Página (base 1)"
// @Param        q               query  string  false  "Filtro por lot id"
// @Success      200  {object}  dto.LotListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trays/{uid}/lots [get]
func (h *TrayHandler) ListLots(c *fiber.Ctx) error {
	out, err := h.core.ListLots(c.UserContext(), c.Params("uid"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
