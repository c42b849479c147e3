package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/usecase"
)

// TrayTypeHandler maneja las peticiones HTTP para TrayType (protegido).
type TrayTypeHandler struct {
	uc *usecase.TrayTypeUseCase
}

// NewTrayTypeHandler construye el handler.
func NewTrayTypeHandler(uc *usecase.TrayTypeUseCase) *TrayTypeHandler {
	return &TrayTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tipo de bandeja
// @Tags         tray-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrayTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.TrayTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tray-types [post]
func (h *TrayTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrayTypeRequest
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
// @Summary      Obtener tipo de bandeja por uid
// @Tags         tray-types
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del tipo"
// @Success      200  {object}  dto.TrayTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tray-types/{uid} [get]
func (h *TrayTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de bandeja no encontrado"})
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver tipo de bandeja por part number
// @Tags         tray-types
// @Security     Bearer
// @Produce      json
// @Param        part_number  query  string  true  "Part number"
// @Success      200  {object}  dto.TrayTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tray-types/resolve [get]
func (h *TrayTypeHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Query("part_number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateMaxDrive godoc
// @Summary      Actualizar capacidad del tipo de bandeja
// @Tags         tray-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID del tipo"
// @Param        body  body  dto.UpdateTrayTypeRequest  true  "Nueva capacidad"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tray-types/{uid} [put]
func (h *TrayTypeHandler) UpdateMaxDrive(c *fiber.Ctx) error {
	var in dto.UpdateTrayTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateMaxDrive(c.Params("uid"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "capacidad actualizada"})
}

// List godoc
// @Summary      Listar tipos de bandeja
// @Tags         tray-types
// @Security     Bearer
// @Produce      json
// @Param        items_per_page  query  int     false  "Tamaño de página"
// @Param        current_page    query  int     false  "Página (base 1)"
// @Param        q               query  string  false  "Filtro por part number"
// @Success      200  {object}  dto.TrayTypeListResponse
// @Router       /api/tray-types [get]
func (h *TrayTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de bandeja
// @Tags         tray-types
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del tipo"
// @Success      200  {object}  dto.MutationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tray-types/{uid} [delete]
func (h *TrayTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("uid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "tipo de bandeja eliminado"})
}
