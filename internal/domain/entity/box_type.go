package entity

import "time"

// BoxType es un registro de referencia inmutable: el modelo de caja y cuántas
// bandejas admite. Se identifica hacia el usuario por el part number.
type BoxType struct {
	UID        string
	PartNumber string // clave de negocio, única
	MaxTray    int    // capacidad: bandejas por caja, > 0
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
