package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
)

// BoxHandler maneja las peticiones HTTP para Box: ciclo de vida, bandejas
// anidadas, despacho y exportación.
type BoxHandler struct {
	core   *packing.ContainmentUseCase
	export *packing.ExportUseCase
}

// NewBoxHandler construye el handler.
func NewBoxHandler(core *packing.ContainmentUseCase, export *packing.ExportUseCase) *BoxHandler {
	return &BoxHandler{core: core, export: export}
}

// Create godoc
// @Summary      Crear caja
// @Tags         boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBoxRequest  true  "Claves de negocio: tipo de caja y shipdoc"
// @Success      201   {object}  dto.BoxResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/boxes [post]
func (h *BoxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBoxRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.CreateBox(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cajas
// @Description  status filtra el scope: vacío = todas, active = en armado, shipped = historial de despachos.
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        status          query  string  false  "Scope de estado"  Enums(active, shipped)
// @Param        items_per_page  query  int     false  "Tamaño de página"
// @Param        current_page    query  int     false  "Página (base 1)"
// @Param        q               query  string  false  "Filtro por part number o shipdoc"
// @Success      200  {object}  dto.BoxListResponse
// @Router       /api/boxes [get]
func (h *BoxHandler) List(c *fiber.Ctx) error {
	out, err := h.core.ListBoxes(c.UserContext(), pageFromQuery(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener caja por uid
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID de la caja"
// @Success      200  {object}  dto.BoxResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid} [get]
func (h *BoxHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.core.GetBox(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar caja (incondicional, con cascada)
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID de la caja"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid} [delete]
func (h *BoxHandler) Delete(c *fiber.Ctx) error {
	if err := h.core.DeleteBox(c.UserContext(), c.Params("uid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "caja eliminada"})
}

// Ship godoc
// @Summary      Despachar caja
// @Description  Falla con el texto de la guarda si la caja no tiene bandejas o no tiene drives.
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID de la caja"
// @Success      200  {object}  dto.BoxStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid}/ship [post]
func (h *BoxHandler) Ship(c *fiber.Ctx) error {
	out, err := h.core.ShipBox(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UndoShip godoc
// @Summary      Deshacer despacho
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        uid  path  string  true  "UID de la caja"
// @Success      200  {object}  dto.BoxStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid}/unship [post]
func (h *BoxHandler) UndoShip(c *fiber.Ctx) error {
	out, err := h.core.UndoShipBox(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateTray godoc
// @Summary      Crear bandeja bajo la caja
// @Tags         boxes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        uid   path  string  true  "UID de la caja"
// @Param        body  body  dto.CreateTrayRequest  true  "Part number del tipo de bandeja"
// @Success      201   {object}  dto.TrayResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid}/trays [post]
func (h *BoxHandler) CreateTray(c *fiber.Ctx) error {
	var in dto.CreateTrayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.core.CreateTray(c.UserContext(), c.Params("uid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTrays godoc
// @Summary      Listar bandejas de la caja
// @Tags         boxes
// @Security     Bearer
// @Produce      json
// @Param        uid             path   string  true   "UID de la caja"
// @Param        items_per_page  query  int     false  "Tamaño de página"
// @Param        current_page    query  int     false  "Página (base 1)"
// @Param        q               query  string  false  "Filtro por part number"
// @Success      200  {object}  dto.TrayListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid}/trays [get]
func (h *BoxHandler) ListTrays(c *fiber.Ctx) error {
	out, err := h.core.ListTrays(c.UserContext(), c.Params("uid"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PackingList godoc
// @Summary      Packing list PDF de la caja
// @Tags         boxes
// @Security     Bearer
// @Produce      application/pdf
// @Param        uid  path  string  true  "UID de la caja"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid}/packing-list [get]
func (h *BoxHandler) PackingList(c *fiber.Ctx) error {
	out, err := h.export.ExportPackingList(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="packing-list.pdf"`)
	return c.Send(out)
}

// Manifest godoc
// @Summary      Manifiesto XML de despacho
// @Description  Solo disponible para cajas despachadas.
// @Tags         boxes
// @Security     Bearer
// @Produce      application/xml
// @Param        uid  path  string  true  "UID de la caja"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/boxes/{uid}/manifest [get]
func (h *BoxHandler) Manifest(c *fiber.Ctx) error {
	out, err := h.export.ExportManifest(c.UserContext(), c.Params("uid"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="manifest.xml"`)
	return c.Send(out)
}
