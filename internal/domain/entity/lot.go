package entity

import "time"

// Lot es la unidad hoja del inventario: un lote de drives dentro de una
// bandeja. Su cantidad es la que se acumula hacia los totales de bandeja y caja.
type Lot struct {
	UID       string
	TrayUID   string
	LotID     string // identificador de negocio, lo aporta el operador
	Qty       int    // > 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
