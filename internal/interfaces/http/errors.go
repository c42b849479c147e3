package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/domain"
)

// respondError traduce los errores del dominio al cuerpo de error HTTP.
// El contrato con los clientes: éxito o fallo se decide por el status y la
// presencia de "errors", nunca parseando el texto del mensaje.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Errors:  verr.Fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la clave de negocio ya existe"})
	case errors.Is(err, domain.ErrBoxShipped):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BOX_SHIPPED", Message: "la caja está despachada; su contenido es de solo lectura"})
	case errors.Is(err, domain.ErrBoxNotShipped):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BOX_NOT_SHIPPED", Message: "la caja no está despachada"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrTrayCapacity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "TRAY_CAPACITY", Message: "la cantidad supera la capacidad de la bandeja"})
	case errors.Is(err, domain.ErrBoxCapacity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BOX_CAPACITY", Message: "la caja no admite más bandejas"})
	case errors.Is(err, domain.ErrShipNoTrays), errors.Is(err, domain.ErrShipNoDrives):
		// Texto contractual de la guarda, va literal al operador.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SHIP_GUARD", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para el rol"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// pageFromQuery arma el PageRequest desde los query params.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		ItemsPerPage: c.QueryInt("items_per_page", 0),
		CurrentPage:  c.QueryInt("current_page", 0),
		Query:        c.Query("q"),
	}
}
