package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrBoxShipped: la caja ya fue despachada; sus bandejas y lotes quedan congelados.
	ErrBoxShipped = errors.New("la caja ya fue despachada")
	// ErrBoxNotShipped: la operación requiere una caja despachada (p.ej. manifiesto).
	ErrBoxNotShipped = errors.New("la caja no ha sido despachada")
	// ErrTrayCapacity: la cantidad excedería tray_max_drive de la bandeja.
	ErrTrayCapacity = errors.New("capacidad de la bandeja excedida")
	// ErrBoxCapacity: la caja ya alcanzó box_max_tray (solo con enforcement activo).
	ErrBoxCapacity = errors.New("capacidad de la caja excedida")
)

// Mensajes de la guarda de despacho. Se conservan textuales del sistema de
// planta anterior porque los operadores y sus instructivos los referencian.
var (
	ErrShipNoTrays  = errors.New("Box current tray count is zero.")
	ErrShipNoDrives = errors.New("Box current drive count is zero.")
)

// FieldErrors acumula mensajes de validación por campo.
type FieldErrors map[string][]string

// Add agrega un mensaje a un campo.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// ValidationError reporta entrada malformada campo por campo, antes de tocar
// el estado persistente. Envuelve ErrInvalidInput para errors.Is.
type ValidationError struct {
	Fields FieldErrors
}

// NewValidationError construye el error con el mapa de campos dado.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return "validación: " + strings.Join(parts, ", ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
