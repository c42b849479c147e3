package entity

import "time"

// Shipdoc es el documento de despacho asociado a una caja.
// Solo el contacto es mutable después de creado.
type Shipdoc struct {
	UID       string
	Number    string // clave de negocio, única
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
