package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/usecase"
)

// ShipdocHandler maneja las peticiones HTTP para Shipdoc (protegido).
type ShipdocHandler struct {
	uc *usecase.ShipdocUseCase
}

// NewShipdocHandler construye el handler.
func NewShipdocHandler(uc *usecase.ShipdocUseCase) *ShipdocHandler {
	return &ShipdocHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar documento de despacho
// @Tags         shipdocs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipdocRequest  true  "Datos del shipdoc"
// @Success      201   {object}  dto.ShipdocResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipdocs [post]
func (h *ShipdocHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipdocRequest
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
// @Summary      Obtener shipdoc por uid
// @Tags         shipdocs
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del shipdoc"
// @Success      200  {object}  dto.ShipdocResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipdocs/{uid} [get]
func (h *ShipdocHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "shipdoc no encontrado"})
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Resolver shipdoc por número
// @Tags         shipdocs
// @Security     Bearer
// @Produce      json
// @Param        number  query  string  true  "Número del shipdoc"
// @Success      200  {object}  dto.ShipdocResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipdocs/resolve [get]
func (h *ShipdocHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Query("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateContact godoc
// @Summary      Actualizar contacto del shipdoc
// @Tags         shipdocs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID del shipdoc"
// @Param        body  body  dto.UpdateShipdocRequest  true  "Nuevo contacto"
// @Success      200   {object}  dto.MutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shipdocs/{uid} [put]
func (h *ShipdocHandler) UpdateContact(c *fiber.Ctx) error {
	var in dto.UpdateShipdocRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateContact(c.Params("uid"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "contacto actualizado"})
}

// List godoc
// @Summary      Listar documentos de despacho
// @Tags         shipdocs
// @Security     Bearer
// @Produce      json
// @Param        items_per_page  query  int     false  "Tamaño de página"
// @Param        current_page    query  int     false  "Página (base 1)"
// @Param        q               query  string  false  "Filtro por número"
// @Success      200  {object}  dto.ShipdocListResponse
// @Router       /api/shipdocs [get]
func (h *ShipdocHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar shipdoc
// @Tags         shipdocs
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID del shipdoc"
// @Success      200  {object}  dto.MutationResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shipdocs/{uid} [delete]
func (h *ShipdocHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("uid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "shipdoc eliminado"})
}
