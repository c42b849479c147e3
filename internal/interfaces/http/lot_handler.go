package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
)

// LotHandler maneja las peticiones HTTP para Lot.
type LotHandler struct {
	core *packing.ContainmentUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(core *packing.ContainmentUseCase) *LotHandler {
	return &LotHandler{core: core}
}

// GetByID godoc
// @Summary      Obtener lote por uid
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{uid} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.core.GetLot(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cantidad del lote
// @Description  Rechazado si la caja ancestro está despachada.
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID del lote"
// @Param        body  body  dto.UpdateLotRequest  true  "Nueva cantidad"
// @Success      200   {object}  dto.LotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lots/{uid} [put]
func (h *LotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.UpdateLot(c.UserContext(), c.Params("uid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Description  Rechazado si la caja ancestro está despachada.
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del lote"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lots/{uid} [delete]
func (h *LotHandler) Delete(c *fiber.Ctx) error {
	if err := h.core.DeleteLot(c.UserContext(), c.Params("uid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "lote eliminado"})
}
