package entity

import "time"

// TrayType es un registro de referencia: el modelo de bandeja y cuántas
// unidades (drives) admite. Solo MaxDrive es actualizable.
type TrayType struct {
	UID        string
	PartNumber string // clave de negocio, única
	MaxDrive   int    // capacidad: drives por bandeja, > 0
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
