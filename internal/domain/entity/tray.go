package entity

import "time"

// Tray es el contenedor intermedio dentro de una caja: referencia un TrayType
// (que fija su capacidad de drives) y pertenece a una Box. El total de drives
// se deriva sumando lot_qty de sus lotes.
type Tray struct {
	UID         string
	TrayTypeUID string
	BoxUID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TraySummary es el modelo de lectura para listados de bandejas de una caja.
type TraySummary struct {
	UID          string
	PartNumber   string // del TrayType
	BoxUID       string
	CurrentDrive int // derivado: sum(lot_qty) de sus lotes
	MaxDrive     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
