package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/usecase"
)

// BoxTypeHandler maneja las peticiones HTTP para BoxType (protegido).
type BoxTypeHandler struct {
	uc *usecase.BoxTypeUseCase
}

// NewBoxTypeHandler construye el handler.
func NewBoxTypeHandler(uc *usecase.BoxTypeUseCase) *BoxTypeHandler {
	return &BoxTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tipo de caja
// @Tags         box-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBoxTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.BoxTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/box-types [post]
func (h *BoxTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBoxTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de caja por uid
// @Tags         box-types
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del tipo"
// @Success      200  {object}  dto.BoxTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/box-types/{uid} [get]
func (h *BoxTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de caja no encontrado"})
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver tipo de caja por part number
// @Tags         box-types
// @Security     Bearer
// @Produce      json
// @Param        part_number  query  string  true  "Part number"
// @Success      200  {object}  dto.BoxTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/box-types/resolve [get]
func (h *BoxTypeHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Query("part_number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de caja
// @Tags         box-types
// @Security     Bearer
// @Produce      json
// @Param        items_per_page  query  int     false  "Tamaño de página"
// @Param        current_page    query  int     false  "Página (base 1)"
// @Param        q               query  string  false  "Filtro por part number"
// @Success      200  {object}  dto.BoxTypeListResponse
// @Router       /api/box-types [get]
func (h *BoxTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de caja
// @Tags         box-types
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del tipo"
// @Success      200  {object}  dto.MutationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/box-types/{uid} [delete]
func (h *BoxTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("uid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "tipo de caja eliminado"})
}
